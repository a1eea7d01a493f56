package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/database"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/helper"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/uploads"
)

var marketplaceCollection *mongo.Collection = database.OpenCollection(database.Client, "marketplace")

var marketplaceUploads = uploads.Policy{
	Dir:      "uploads/marketplace",
	MaxFiles: 5,
	MaxSize:  5000000,
	Exts:     []string{".jpeg", ".jpg", ".png", ".gif"},
	Mimes:    []string{"image/jpeg", "image/png", "image/gif"},
}

func GetItems(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := marketplaceCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	defer cursor.Close(ctx)

	items := []models.MarketplaceItem{}
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		userIDs = append(userIDs, item.User)
	}
	users, err := fetchUserSummaries(ctx, userIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "users": users})
}

func GetItem(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Marketplace item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var item models.MarketplaceItem
	if err := marketplaceCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Marketplace item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateItem(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	files := form.File["images"]
	if err := marketplaceUploads.Check(files); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	category := c.PostForm("category")
	priceStr := c.PostForm("price")
	condition := c.PostForm("condition")

	if title == "" || description == "" || category == "" || priceStr == "" || condition == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "All fields are required"})
		return
	}
	if !models.ItemCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid category"})
		return
	}
	if !models.ItemConditions[condition] {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid condition"})
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid price"})
		return
	}

	paths, err := marketplaceUploads.Stage(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	if paths == nil {
		paths = []string{}
	}

	item := models.MarketplaceItem{
		ID:          primitive.NewObjectID(),
		User:        user.ID,
		Title:       title,
		Description: description,
		Category:    category,
		Price:       price,
		Condition:   condition,
		Images:      paths,
		Status:      models.StatusAvailable,
		Date:        time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := marketplaceCollection.InsertOne(ctx, item); err != nil {
		uploads.Release(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem applies a partial update. Only fields present in the
// body are written; existing images are never touched here.
func UpdateItem(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Item not found"})
		return
	}

	var patch models.MarketplaceItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var item models.MarketplaceItem
	if err := marketplaceCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, item.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	if err := patch.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	if set := patch.SetFields(); len(set) > 0 {
		if _, err := marketplaceCollection.UpdateOne(ctx, bson.M{"_id": itemID}, bson.M{"$set": set}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
			return
		}
	}

	var updated models.MarketplaceItem
	if err := marketplaceCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteItem removes the listing and all of its images.
func DeleteItem(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var item models.MarketplaceItem
	if err := marketplaceCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, item.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	uploads.Release(item.Images)

	if _, err := marketplaceCollection.DeleteOne(ctx, bson.M{"_id": itemID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Item removed"})
}
