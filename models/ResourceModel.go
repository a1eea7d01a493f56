package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Resource struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	FileUrl      string             `json:"fileUrl" bson:"fileUrl"`
	Subject      string             `json:"subject" bson:"subject"`
	Department   string             `json:"department" bson:"department"`
	Semester     int                `json:"semester" bson:"semester"`
	ResourceType string             `json:"resourceType" bson:"resourceType"`
	Downloads    int                `json:"downloads" bson:"downloads"`
	Date         time.Time          `json:"date" bson:"date"`
}

// RecordDownload counts one download event. The counter only ever
// moves up, by exactly one per call.
func (r *Resource) RecordDownload() {
	r.Downloads++
}

var ResourceTypes = map[string]bool{
	"notes":      true,
	"paper":      true,
	"assignment": true,
	"other":      true,
}
