package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is a haulage record. Saving one re-derives its cost fields and,
// for contract-owned vehicles, feeds the transport vendor's outstanding
// balance.
type Trip struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date              time.Time          `bson:"date" json:"date"`
	VehicleID         primitive.ObjectID `bson:"vehicleId" json:"vehicleId" binding:"required"`
	DriverID          primitive.ObjectID `bson:"driverId,omitempty" json:"driverId,omitempty"`
	CustomerID        primitive.ObjectID `bson:"customerId,omitempty" json:"customerId,omitempty"`
	StoneTypeID       primitive.ObjectID `bson:"stoneTypeId" json:"stoneTypeId" binding:"required"`
	SaleID            primitive.ObjectID `bson:"saleId,omitempty" json:"saleId,omitempty"`
	FromLocation      string             `bson:"fromLocation" json:"fromLocation" binding:"required"`
	ToLocation        string             `bson:"toLocation" json:"toLocation" binding:"required"`
	LoadQuantity      float64            `bson:"loadQuantity" json:"loadQuantity"`
	LoadUnit          string             `bson:"loadUnit" json:"loadUnit"` // Tons, Units, Loads
	TripRate          float64            `bson:"tripRate" json:"tripRate"`
	Status            string             `bson:"status" json:"status"` // Completed, Pending, Cancelled
	IsConvertedToSale bool               `bson:"isConvertedToSale" json:"isConvertedToSale"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`

	DieselQuantity float64 `bson:"dieselQuantity" json:"dieselQuantity"`
	DieselRate     float64 `bson:"dieselRate" json:"dieselRate"`
	DieselTotal    float64 `bson:"dieselTotal" json:"dieselTotal"`
	DriverAmount   float64 `bson:"driverAmount" json:"driverAmount"`
	DriverBata     float64 `bson:"driverBata" json:"driverBata"`
	OtherExpenses  float64 `bson:"otherExpenses" json:"otherExpenses"`
	TotalExpense   float64 `bson:"totalExpense" json:"totalExpense"`
	NetProfit      float64 `bson:"netProfit" json:"netProfit"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ApplyCosts re-derives dieselTotal, totalExpense and netProfit from the
// cost inputs. Idempotent.
func (t *Trip) ApplyCosts() {
	t.DieselTotal = t.DieselQuantity * t.DieselRate
	t.TotalExpense = t.DieselTotal + t.DriverAmount + t.DriverBata + t.OtherExpenses
	t.NetProfit = t.TripRate - t.TotalExpense
}
