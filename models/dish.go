package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dish is a catalog entry. Removal is a soft delete; deleted dishes stay
// referenced by historical order snapshots but are hidden from reads.
type Dish struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Slug         string             `json:"slug" bson:"slug"`
	Image        string             `json:"image" bson:"image"`
	Price        float64            `json:"price" bson:"price"`
	Category     string             `json:"category" bson:"category"`
	Cuisine      string             `json:"cuisine" bson:"cuisine"`
	CountInStock int                `json:"countInStock" bson:"countInStock"`
	Description  string             `json:"description" bson:"description"`
	Rating       float64            `json:"rating" bson:"rating"`
	NumReviews   int                `json:"numReviews" bson:"numReviews"`
	CreatedAt    time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updated_at"`
	DeletedAt    *time.Time         `json:"-" bson:"deleted_at,omitempty"`
}

// UpdateDishRequest carries the admin-editable fields of a dish.
type UpdateDishRequest struct {
	Name         string  `json:"name" binding:"required"`
	Slug         string  `json:"slug" binding:"required"`
	Image        string  `json:"image"`
	Price        float64 `json:"price" binding:"min=0"`
	Category     string  `json:"category"`
	Cuisine      string  `json:"cuisine"`
	CountInStock int     `json:"countInStock" binding:"min=0"`
	Description  string  `json:"description"`
}
