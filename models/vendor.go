package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor kinds used by VendorPayment dispatch.
const (
	VendorKindTransport = "TransportVendor"
	VendorKindLabour    = "LabourContractor"
	VendorKindExplosive = "ExplosiveSupplier"
)

type VendorVehicle struct {
	VehicleType   string  `bson:"vehicleType" json:"vehicleType"` // Lorry, JCB, Hitachi, Tractor, Tipper, Other
	VehicleName   string  `bson:"vehicleName,omitempty" json:"vehicleName,omitempty"`
	VehicleNumber string  `bson:"vehicleNumber" json:"vehicleNumber"`
	DriverName    string  `bson:"driverName,omitempty" json:"driverName,omitempty"`
	DriverMobile  string  `bson:"driverMobile,omitempty" json:"driverMobile,omitempty"`
	Capacity      string  `bson:"capacity,omitempty" json:"capacity,omitempty"`
	RatePerTrip   float64 `bson:"ratePerTrip" json:"ratePerTrip"`
	PadiKasu      float64 `bson:"padiKasu" json:"padiKasu"`
}

// TransportVendor is a haulage contractor. OutstandingBalance follows its
// contract trips: trip saves add/remove tripRate, vendor payments settle it,
// and the nightly reconciliation job corrects any drift.
type TransportVendor struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name" binding:"required"`
	CompanyName        string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	MobileNumber       string             `bson:"mobileNumber" json:"mobileNumber" binding:"required"`
	Address            string             `bson:"address,omitempty" json:"address,omitempty"`
	GstNumber          string             `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	PanNumber          string             `bson:"panNumber,omitempty" json:"panNumber,omitempty"`
	Vehicles           []VendorVehicle    `bson:"vehicles" json:"vehicles"`
	PaymentMode        string             `bson:"paymentMode" json:"paymentMode"`
	CreditTerms        string             `bson:"creditTerms" json:"creditTerms"`
	AdvancePaid        float64            `bson:"advancePaid" json:"advancePaid"`
	OutstandingBalance float64            `bson:"outstandingBalance" json:"outstandingBalance"`
	Notes              string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ContractorContract struct {
	WorkType    string  `bson:"workType" json:"workType"` // Quarry loading, Drilling, Crusher labour, Blasting support, Transporter, Other
	RateType    string  `bson:"rateType" json:"rateType"` // Per Day, Per Ton, Per Load, Monthly Contract
	AgreedRate  float64 `bson:"agreedRate" json:"agreedRate"`
	LabourCount int     `bson:"labourCount" json:"labourCount"`
}

type LabourContractor struct {
	ID                 primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string               `bson:"name" json:"name" binding:"required"`
	CompanyName        string               `bson:"companyName,omitempty" json:"companyName,omitempty"`
	MobileNumber       string               `bson:"mobileNumber" json:"mobileNumber" binding:"required"`
	Address            string               `bson:"address,omitempty" json:"address,omitempty"`
	GstNumber          string               `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	PanNumber          string               `bson:"panNumber,omitempty" json:"panNumber,omitempty"`
	Contracts          []ContractorContract `bson:"contracts" json:"contracts"`
	NoOfWorkers        int                  `bson:"noOfWorkers" json:"noOfWorkers"`
	SupervisorName     string               `bson:"supervisorName,omitempty" json:"supervisorName,omitempty"`
	Shift              string               `bson:"shift" json:"shift"` // Day, Night, Both
	PaymentMode        string               `bson:"paymentMode" json:"paymentMode"`
	CreditTerms        string               `bson:"creditTerms" json:"creditTerms"`
	AdvancePaid        float64              `bson:"advancePaid" json:"advancePaid"`
	OutstandingBalance float64              `bson:"outstandingBalance" json:"outstandingBalance"`
	Status             string               `bson:"status" json:"status"`
	CreatedAt          time.Time            `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time            `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ExplosiveSupplier struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name                   string             `bson:"name" json:"name" binding:"required"`
	CompanyName            string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	ContactPerson          string             `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	ContactNumber          string             `bson:"contactNumber" json:"contactNumber" binding:"required"`
	Email                  string             `bson:"email,omitempty" json:"email,omitempty"`
	Address                string             `bson:"address,omitempty" json:"address,omitempty"`
	ExplosiveLicenseNumber string             `bson:"explosiveLicenseNumber" json:"explosiveLicenseNumber" binding:"required"`
	LicenseValidityDate    *time.Time         `bson:"licenseValidityDate,omitempty" json:"licenseValidityDate,omitempty"`
	GstNumber              string             `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
	PanNumber              string             `bson:"panNumber,omitempty" json:"panNumber,omitempty"`
	AuthorizedDealerID     string             `bson:"authorizedDealerId,omitempty" json:"authorizedDealerId,omitempty"`
	SupplyItems            []string           `bson:"supplyItems,omitempty" json:"supplyItems,omitempty"`
	RatePerUnit            float64            `bson:"ratePerUnit" json:"ratePerUnit"`
	PaymentTerms           string             `bson:"paymentTerms,omitempty" json:"paymentTerms,omitempty"`
	CreditLimit            float64            `bson:"creditLimit" json:"creditLimit"`
	OutstandingBalance     float64            `bson:"outstandingBalance" json:"outstandingBalance"`
	Notes                  string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt              time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt              time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// VendorPayment settles part of a vendor's outstanding balance. VendorType
// picks the collection the balance adjustment dispatches to.
type VendorPayment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
	VendorID        primitive.ObjectID `bson:"vendorId" json:"vendorId" binding:"required"`
	VendorType      string             `bson:"vendorType" json:"vendorType" binding:"required"`
	VendorName      string             `bson:"vendorName,omitempty" json:"vendorName,omitempty"`
	InvoiceAmount   float64            `bson:"invoiceAmount" json:"invoiceAmount"`
	PaidAmount      float64            `bson:"paidAmount" json:"paidAmount"`
	PaymentMode     string             `bson:"paymentMode" json:"paymentMode"`
	ReferenceNumber string             `bson:"referenceNumber,omitempty" json:"referenceNumber,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// BalanceDelta is the payment's net effect on the vendor's outstanding
// balance: invoicing raises the liability, paying lowers it. Both the
// payment handlers and the nightly reconciliation use this figure.
func (p VendorPayment) BalanceDelta() float64 {
	return p.InvoiceAmount - p.PaidAmount
}

// DriverPayment optionally links to a trip; linking overwrites the trip's
// driverAmount/driverBata with this payment's figures, unlinking resets
// them. Only the latest applied payment survives on the trip.
type DriverPayment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Date        time.Time          `bson:"date" json:"date"`
	DriverName  string             `bson:"driverName" json:"driverName" binding:"required"`
	PaymentType string             `bson:"paymentType" json:"paymentType" binding:"required"` // Per Trip, Monthly Salary, Bata, Allowance, Advance
	Amount      float64            `bson:"amount" json:"amount"`
	PadiKasu    float64            `bson:"padiKasu" json:"padiKasu"`
	TripID      primitive.ObjectID `bson:"tripId,omitempty" json:"tripId,omitempty"`
	PaymentMode string             `bson:"paymentMode" json:"paymentMode"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
