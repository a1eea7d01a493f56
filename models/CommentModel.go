package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Comment struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	User    primitive.ObjectID `json:"user" bson:"user"`
	Post    primitive.ObjectID `json:"post" bson:"post"`
	Text    string             `json:"text" bson:"text"`
	Upvotes []UserRef          `json:"upvotes" bson:"upvotes"`
	Date    time.Time          `json:"date" bson:"date"`
}
