package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Post struct {
	ID       primitive.ObjectID   `json:"_id" bson:"_id"`
	User     primitive.ObjectID   `json:"user" bson:"user"`
	Title    string               `json:"title" bson:"title"`
	Text     string               `json:"text" bson:"text"`
	Category string               `json:"category" bson:"category"`
	Likes    []UserRef            `json:"likes" bson:"likes"`
	Comments []primitive.ObjectID `json:"comments" bson:"comments"`
	Tags     []string             `json:"tags" bson:"tags"`
	Date     time.Time            `json:"date" bson:"date"`
}

var PostCategories = map[string]bool{
	"question":     true,
	"discussion":   true,
	"announcement": true,
}
