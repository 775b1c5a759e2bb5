package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle covers both road vehicles and quarry machines. Contract-owned
// entries reference the transport vendor that bills for them; CurrentHmr
// is the hour-meter reading incremented by production machine usage.
type Vehicle struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name" binding:"required"`
	Type               string             `bson:"type" json:"type" binding:"required"` // "Vehicle" or "Machine"
	OwnershipType      string             `bson:"ownershipType" json:"ownershipType"`  // "Own" or "Contract"
	Contractor         primitive.ObjectID `bson:"contractor,omitempty" json:"contractor,omitempty"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	ModelNumber        string             `bson:"modelNumber,omitempty" json:"modelNumber,omitempty"`
	RegistrationNumber string             `bson:"registrationNumber,omitempty" json:"registrationNumber,omitempty"`
	PurchaseDate       *time.Time         `bson:"purchaseDate,omitempty" json:"purchaseDate,omitempty"`
	PurchaseCost       float64            `bson:"purchaseCost,omitempty" json:"purchaseCost,omitempty"`
	CurrentCondition   string             `bson:"currentCondition,omitempty" json:"currentCondition,omitempty"`
	CurrentHmr         float64            `bson:"currentHmr" json:"currentHmr"`

	// Machine specific
	OperatorName string `bson:"operatorName,omitempty" json:"operatorName,omitempty"`

	// Vehicle specific
	VehicleNumber      string     `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	OwnerName          string     `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	DriverName         string     `bson:"driverName,omitempty" json:"driverName,omitempty"`
	RcInsuranceDetails string     `bson:"rcInsuranceDetails,omitempty" json:"rcInsuranceDetails,omitempty"`
	PermitExpiryDate   *time.Time `bson:"permitExpiryDate,omitempty" json:"permitExpiryDate,omitempty"`
	MileageDetails     string     `bson:"mileageDetails,omitempty" json:"mileageDetails,omitempty"`

	Status    string    `bson:"status" json:"status"` // active, inactive, maintenance
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DisplayName is the label legacy expense rows stored in their free-text
// vehicleOrMachine field, e.g. "JCB (TN 38 AB 1234)".
func (v Vehicle) DisplayName() string {
	plate := v.VehicleNumber
	if plate == "" {
		plate = v.RegistrationNumber
	}
	switch {
	case v.Category != "" && plate != "":
		return v.Category + " (" + plate + ")"
	case plate != "":
		return v.Name + " (" + plate + ")"
	default:
		return v.Name
	}
}

// PlateNumber returns whichever of the two registration fields is set.
func (v Vehicle) PlateNumber() string {
	if v.VehicleNumber != "" {
		return v.VehicleNumber
	}
	return v.RegistrationNumber
}
