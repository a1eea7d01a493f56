package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/database"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/helper"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

var postCollection *mongo.Collection = database.OpenCollection(database.Client, "posts")

type createPostRequest struct {
	Title    string   `json:"title"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

func CreatePost(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	var fieldErrors []gin.H
	if req.Title == "" {
		fieldErrors = append(fieldErrors, gin.H{"msg": "Title is required", "param": "title"})
	}
	if req.Text == "" {
		fieldErrors = append(fieldErrors, gin.H{"msg": "Text is required", "param": "text"})
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
		return
	}

	if req.Category == "" {
		req.Category = "discussion"
	}
	if !models.PostCategories[req.Category] {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid category"})
		return
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	post := models.Post{
		ID:       primitive.NewObjectID(),
		User:     user.ID,
		Title:    req.Title,
		Text:     req.Text,
		Category: req.Category,
		Likes:    []models.UserRef{},
		Comments: []primitive.ObjectID{},
		Tags:     req.Tags,
		Date:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := postCollection.InsertOne(ctx, post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func GetPosts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := postCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(posts))
	for _, post := range posts {
		userIDs = append(userIDs, post.User)
	}
	users, err := fetchUserSummaries(ctx, userIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "users": users})
}

func GetPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var post models.Post
	if err := postCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// LikePost adds the caller to the post's likes. Liking an already
// liked post changes nothing.
func LikePost(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var post models.Post
	if err := postCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	post.Likes = helper.AddUserRef(post.Likes, user.ID)
	if _, err := postCollection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": bson.M{"likes": post.Likes}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, post.Likes)
}

// UnlikePost removes the caller from the post's likes. Unliking a
// post that was never liked changes nothing.
func UnlikePost(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var post models.Post
	if err := postCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	post.Likes = helper.RemoveUserRef(post.Likes, user.ID)
	if _, err := postCollection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": bson.M{"likes": post.Likes}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, post.Likes)
}

// DeletePost removes the post document. Its comments are left in
// place and still reference the deleted post.
func DeletePost(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var post models.Post
	if err := postCollection.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Post not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, post.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	if _, err := postCollection.DeleteOne(ctx, bson.M{"_id": postID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Post removed"})
}
