package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusReserved  = "reserved"
)

type MarketplaceItem struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Condition   string             `json:"condition" bson:"condition"`
	Images      []string           `json:"images" bson:"images"`
	Status      string             `json:"status" bson:"status"`
	Date        time.Time          `json:"date" bson:"date"`
}

var ItemCategories = map[string]bool{
	"book":      true,
	"equipment": true,
	"others":    true,
}

var ItemConditions = map[string]bool{
	"new":      true,
	"like new": true,
	"good":     true,
	"fair":     true,
	"poor":     true,
}

var ItemStatuses = map[string]bool{
	StatusAvailable: true,
	StatusSold:      true,
	StatusReserved:  true,
}

// MarketplaceItemPatch is a partial update of an item. A field is
// applied when it is present in the request body, so a zero price
// is a real update and not a skipped field.
type MarketplaceItemPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Condition   *string  `json:"condition"`
	Status      *string  `json:"status"`
}

func (p MarketplaceItemPatch) Validate() error {
	if p.Category != nil && !ItemCategories[*p.Category] {
		return errors.New("invalid category")
	}
	if p.Condition != nil && !ItemConditions[*p.Condition] {
		return errors.New("invalid condition")
	}
	if p.Status != nil && !ItemStatuses[*p.Status] {
		return errors.New("invalid status")
	}
	if p.Price != nil && *p.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// SetFields builds the $set document from the supplied fields.
func (p MarketplaceItemPatch) SetFields() bson.M {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Category != nil {
		set["category"] = *p.Category
	}
	if p.Price != nil {
		set["price"] = *p.Price
	}
	if p.Condition != nil {
		set["condition"] = *p.Condition
	}
	if p.Status != nil {
		set["status"] = *p.Status
	}
	return set
}
