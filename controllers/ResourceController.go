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

var resourceCollection *mongo.Collection = database.OpenCollection(database.Client, "resources")

var resourceUploads = uploads.Policy{
	Dir:      "uploads/resources",
	MaxFiles: 1,
	MaxSize:  25000000,
	Exts:     []string{".pdf", ".doc", ".docx", ".ppt", ".pptx", ".xls", ".xlsx", ".txt", ".zip"},
	Required: true,
}

func GetResources(c *gin.Context) {
	listResources(c, bson.M{})
}

// FilterResources narrows the listing by any combination of subject,
// department, semester and resourceType.
func FilterResources(c *gin.Context) {
	filter, err := helper.BuildResourceFilter(
		c.Query("subject"),
		c.Query("department"),
		c.Query("semester"),
		c.Query("resourceType"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	listResources(c, filter)
}

func listResources(c *gin.Context, filter bson.M) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := resourceCollection.Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	if err := cursor.All(ctx, &resources); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(resources))
	for _, resource := range resources {
		userIDs = append(userIDs, resource.User)
	}
	users, err := fetchUserSummaries(ctx, userIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"resources": resources, "users": users})
}

func GetResource(c *gin.Context) {
	resourceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var resource models.Resource
	if err := resourceCollection.FindOne(ctx, bson.M{"_id": resourceID}).Decode(&resource); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, resource)
}

func CreateResource(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	files := form.File["file"]
	if err := resourceUploads.Check(files); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	subject := c.PostForm("subject")
	department := c.PostForm("department")
	semesterStr := c.PostForm("semester")
	resourceType := c.PostForm("resourceType")

	if title == "" || description == "" || subject == "" || department == "" || semesterStr == "" || resourceType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "All fields are required"})
		return
	}
	semester, err := strconv.Atoi(semesterStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid semester"})
		return
	}
	if !models.ResourceTypes[resourceType] {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid resource type"})
		return
	}

	paths, err := resourceUploads.Stage(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	resource := models.Resource{
		ID:           primitive.NewObjectID(),
		User:         user.ID,
		Title:        title,
		Description:  description,
		FileUrl:      paths[0],
		Subject:      subject,
		Department:   department,
		Semester:     semester,
		ResourceType: resourceType,
		Downloads:    0,
		Date:         time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := resourceCollection.InsertOne(ctx, resource); err != nil {
		uploads.Release(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DownloadResource records one download and returns the updated
// resource. The counter only ever moves up, by one per call.
func DownloadResource(c *gin.Context) {
	resourceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var resource models.Resource
	if err := resourceCollection.FindOne(ctx, bson.M{"_id": resourceID}).Decode(&resource); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	resource.RecordDownload()
	if _, err := resourceCollection.UpdateOne(ctx, bson.M{"_id": resourceID}, bson.M{"$set": bson.M{"downloads": resource.Downloads}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// DeleteResource removes the resource and its stored file.
func DeleteResource(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	resourceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var resource models.Resource
	if err := resourceCollection.FindOne(ctx, bson.M{"_id": resourceID}).Decode(&resource); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Resource not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, resource.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	uploads.Release([]string{resource.FileUrl})

	if _, err := resourceCollection.DeleteOne(ctx, bson.M{"_id": resourceID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Resource removed"})
}
