package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Event struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Date        time.Time          `json:"date" bson:"date"`
	Location    string             `json:"location" bson:"location"`
	Organizer   string             `json:"organizer" bson:"organizer"`
	Image       *string            `json:"image" bson:"image,omitempty"`
	Attendees   []UserRef          `json:"attendees" bson:"attendees"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
