package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Name       string             `json:"name" bson:"name" validate:"required"`
	Email      string             `json:"email" bson:"email" validate:"required,email"`
	Password   string             `json:"-" bson:"password"`
	Role       string             `json:"role" bson:"role"`
	Department string             `json:"department" bson:"department"`
	Semester   int                `json:"semester" bson:"semester"`
	Skills     []string           `json:"skills" bson:"skills"`
	CreatedAt  time.Time          `json:"date" bson:"date"`
}

// UserSummary is the denormalized read-model attached to content
// responses so clients can show uploader details without a second call.
type UserSummary struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
}
