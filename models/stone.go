package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoneType is a product master. CurrentStock is a running balance:
// openingStock plus produced minus dispatched/sold quantities, maintained
// by the production and sales handlers.
type StoneType struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Unit         string             `bson:"unit" json:"unit"` // Units, Tons, Kg, Litres
	DefaultPrice float64            `bson:"defaultPrice" json:"defaultPrice"`
	OpeningStock float64            `bson:"openingStock" json:"openingStock"`
	CurrentStock float64            `bson:"currentStock" json:"currentStock"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ExplosiveMaterial struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Unit         string             `bson:"unit" json:"unit"` // Nos, Box, Kg, Meters, Units
	DefaultPrice float64            `bson:"defaultPrice" json:"defaultPrice"`
	OpeningStock float64            `bson:"openingStock" json:"openingStock"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
