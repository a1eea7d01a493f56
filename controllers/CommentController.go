package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/database"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/helper"
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/models"
)

var commentCollection *mongo.Collection = database.OpenCollection(database.Client, "comments")

type addCommentRequest struct {
	Text string `json:"text"`
}

// AddComment creates a comment bound to a post, then appends its id
// to the post's comment list. The two writes are sequential; a crash
// between them leaves an unlinked comment rather than corrupt data.
func AddComment(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"msg": "Text is required", "param": "text"}}})
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("post_id"))
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

	comment := models.Comment{
		ID:      primitive.NewObjectID(),
		User:    user.ID,
		Post:    postID,
		Text:    req.Text,
		Upvotes: []models.UserRef{},
		Date:    time.Now(),
	}

	if _, err := commentCollection.InsertOne(ctx, comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	if _, err := postCollection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": comment.ID}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

// UpvoteComment flips the caller's membership in the comment's
// upvotes: present removes, absent inserts.
func UpvoteComment(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var comment models.Comment
	if err := commentCollection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	comment.Upvotes = helper.ToggleUserRefFront(comment.Upvotes, user.ID)
	if _, err := commentCollection.UpdateOne(ctx, bson.M{"_id": commentID}, bson.M{"$set": bson.M{"upvotes": comment.Upvotes}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, comment.Upvotes)
}

// DeleteComment removes the comment after unlinking it from its
// parent post. A missing parent is tolerated: the comment still gets
// deleted.
func DeleteComment(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	commentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var comment models.Comment
	if err := commentCollection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Comment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, comment.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	var post models.Post
	err = postCollection.FindOne(ctx, bson.M{"_id": comment.Post}).Decode(&post)
	switch {
	case err == nil:
		if _, err := postCollection.UpdateOne(ctx, bson.M{"_id": comment.Post}, bson.M{"$pull": bson.M{"comments": commentID}}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
			return
		}
	case helper.IsNotFound(err):
		// the parent is already gone, the comment still gets deleted
		log.Warn().Str("comment", commentID.Hex()).Str("post", comment.Post.Hex()).Msg("parent post missing while deleting comment")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	if _, err := commentCollection.DeleteOne(ctx, bson.M{"_id": commentID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Comment removed"})
}
