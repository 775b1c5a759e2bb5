package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Customer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" binding:"required"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	GstNumber      string             `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	CreditLimit    float64            `bson:"creditLimit" json:"creditLimit"`
	OpeningBalance float64            `bson:"openingBalance" json:"openingBalance"`
	Status         string             `bson:"status" json:"status"` // "active" or "inactive"
	CreatedAt      time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CustomerSummary is the sales side-channel returned with a customer detail.
type CustomerSummary struct {
	TotalSales    float64 `json:"totalSales"`
	TotalPaid     float64 `json:"totalPaid"`
	TotalBalance  float64 `json:"totalBalance"`
	TotalInvoices int     `json:"totalInvoices"`
}
