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
	"github.com/Roshan-Dewangan/Collegia-Student-Utility-Platform/uploads"
)

var eventCollection *mongo.Collection = database.OpenCollection(database.Client, "events")

var eventUploads = uploads.Policy{
	Dir:      "uploads/events",
	MaxFiles: 1,
	MaxSize:  5000000,
	Exts:     []string{".jpeg", ".jpg", ".png", ".gif"},
	Mimes:    []string{"image/jpeg", "image/png", "image/gif"},
}

func GetEvents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// soonest first
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := eventCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	userIDs := make([]primitive.ObjectID, 0, len(events))
	for _, event := range events {
		userIDs = append(userIDs, event.User)
		for _, attendee := range event.Attendees {
			userIDs = append(userIDs, attendee.User)
		}
	}
	users, err := fetchUserSummaries(ctx, userIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events, "users": users})
}

func GetEvent(c *gin.Context) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var event models.Event
	if err := eventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	userIDs := []primitive.ObjectID{event.User}
	for _, attendee := range event.Attendees {
		userIDs = append(userIDs, attendee.User)
	}
	users, err := fetchUserSummaries(ctx, userIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event, "users": users})
}

func CreateEvent(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	files := form.File["image"]
	if err := eventUploads.Check(files); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	dateStr := c.PostForm("date")
	location := c.PostForm("location")
	organizer := c.PostForm("organizer")

	if title == "" || description == "" || dateStr == "" || location == "" || organizer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "All fields are required"})
		return
	}

	date, err := parseEventDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid date format"})
		return
	}

	paths, err := eventUploads.Stage(files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	event := models.Event{
		ID:          primitive.NewObjectID(),
		User:        user.ID,
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		Organizer:   organizer,
		Attendees:   []models.UserRef{},
		CreatedAt:   time.Now(),
	}
	if len(paths) > 0 {
		event.Image = &paths[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := eventCollection.InsertOne(ctx, event); err != nil {
		uploads.Release(paths)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, event)
}

// AttendEvent toggles the caller's attendance. The organizer cannot
// attend their own event.
func AttendEvent(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var event models.Event
	if err := eventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if event.User == user.ID {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Organizers cannot attend their own event"})
		return
	}

	event.Attendees = helper.ToggleUserRef(event.Attendees, user.ID)
	if _, err := eventCollection.UpdateOne(ctx, bson.M{"_id": eventID}, bson.M{"$set": bson.M{"attendees": event.Attendees}}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, event.Attendees)
}

// DeleteEvent removes the event and its image. A missing image file
// is logged by the release and never blocks the deletion.
func DeleteEvent(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var event models.Event
	if err := eventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
		if helper.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Event not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		}
		return
	}

	if !helper.CanModify(user, event.User) {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "User not authorized"})
		return
	}

	if event.Image != nil {
		uploads.Release([]string{*event.Image})
	}

	if _, err := eventCollection.DeleteOne(ctx, bson.M{"_id": eventID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Event removed"})
}

func parseEventDate(s string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
