package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRef is a single membership entry in a reaction set
// (post likes, comment upvotes, event attendees).
type UserRef struct {
	User primitive.ObjectID `json:"user" bson:"user"`
}
