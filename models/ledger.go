package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense categories.
const (
	CategoryDiesel      = "Diesel"
	CategoryMaintenance = "Machine Maintenance"
	CategoryLabourWages = "Labour Wages"
	CategoryExplosive   = "Explosive Cost"
	CategoryTransport   = "Transport Charges"
	CategoryOfficeMisc  = "Office & Misc"
)

// Source kinds for derived expense rows.
const (
	SourceManual     = "manual"
	SourceProduction = "production"
	SourceTrip       = "trip"
)

// SourceRef ties a derived expense row to the document that generated it.
// Manual rows carry kind "manual" and a zero id; derived rows are deleted
// and recreated whenever their source is saved.
type SourceRef struct {
	Kind string             `bson:"kind" json:"kind"`
	ID   primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
}

type ExpenseMaterial struct {
	Name     string  `bson:"name" json:"name"`
	Unit     string  `bson:"unit,omitempty" json:"unit,omitempty"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Rate     float64 `bson:"rate" json:"rate"`
	Amount   float64 `bson:"amount" json:"amount"`
}

type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Category    string             `bson:"category" json:"category" binding:"required"`
	Amount      float64            `bson:"amount" json:"amount"`
	Date        time.Time          `bson:"date" json:"date"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// Vehicle attribution: VehicleID is the join key; VehicleOrMachine is
	// the display label kept for rows that predate the typed reference.
	VehicleID        primitive.ObjectID `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`
	VehicleOrMachine string             `bson:"vehicleOrMachine,omitempty" json:"vehicleOrMachine,omitempty"`

	Quantity     float64 `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Rate         float64 `bson:"rate,omitempty" json:"rate,omitempty"`
	PaymentMode  string  `bson:"paymentMode" json:"paymentMode"` // Cash, Credit, Bank Transfer, UPI, G-Pay
	BillUrl      string  `bson:"billUrl,omitempty" json:"billUrl,omitempty"`
	MeterReading string  `bson:"meterReading,omitempty" json:"meterReading,omitempty"`

	// Machine maintenance detail
	MaintenanceType string     `bson:"maintenanceType,omitempty" json:"maintenanceType,omitempty"`
	SparePartsCost  float64    `bson:"sparePartsCost,omitempty" json:"sparePartsCost,omitempty"`
	LabourCharge    float64    `bson:"labourCharge,omitempty" json:"labourCharge,omitempty"`
	VendorName      string     `bson:"vendorName,omitempty" json:"vendorName,omitempty"`
	NextServiceDate *time.Time `bson:"nextServiceDate,omitempty" json:"nextServiceDate,omitempty"`

	// Labour wages detail
	LabourID         primitive.ObjectID `bson:"labourId,omitempty" json:"labourId,omitempty"`
	LabourName       string             `bson:"labourName,omitempty" json:"labourName,omitempty"`
	WorkType         string             `bson:"workType,omitempty" json:"workType,omitempty"`
	WageType         string             `bson:"wageType,omitempty" json:"wageType,omitempty"`
	AdvanceDeduction float64            `bson:"advanceDeduction,omitempty" json:"advanceDeduction,omitempty"`
	NetPay           float64            `bson:"netPay,omitempty" json:"netPay,omitempty"`
	SiteAssigned     string             `bson:"siteAssigned,omitempty" json:"siteAssigned,omitempty"`

	// Explosive cost detail
	Site           string            `bson:"site,omitempty" json:"site,omitempty"`
	ExplosiveType  string            `bson:"explosiveType,omitempty" json:"explosiveType,omitempty"`
	Unit           string            `bson:"unit,omitempty" json:"unit,omitempty"`
	Materials      []ExpenseMaterial `bson:"materials,omitempty" json:"materials,omitempty"`
	SupplierName   string            `bson:"supplierName,omitempty" json:"supplierName,omitempty"`
	LicenseNumber  string            `bson:"licenseNumber,omitempty" json:"licenseNumber,omitempty"`
	SupervisorName string            `bson:"supervisorName,omitempty" json:"supervisorName,omitempty"`

	// Transport charges detail
	TransportType string `bson:"transportType,omitempty" json:"transportType,omitempty"`
	FromLocation  string `bson:"fromLocation,omitempty" json:"fromLocation,omitempty"`
	ToLocation    string `bson:"toLocation,omitempty" json:"toLocation,omitempty"`
	DriverName    string `bson:"driverName,omitempty" json:"driverName,omitempty"`
	LoadDetails   string `bson:"loadDetails,omitempty" json:"loadDetails,omitempty"`

	// Office & misc detail
	OfficeExpenseType string `bson:"officeExpenseType,omitempty" json:"officeExpenseType,omitempty"`
	PaidTo            string `bson:"paidTo,omitempty" json:"paidTo,omitempty"`
	BillNumber        string `bson:"billNumber,omitempty" json:"billNumber,omitempty"`

	Source      SourceRef `bson:"source" json:"source"`
	ReferenceID string    `bson:"referenceId,omitempty" json:"referenceId,omitempty"` // human readable, e.g. "Production Shift: Shift 1"

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Income struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Source        string             `bson:"source" json:"source" binding:"required"` // Stone Sales, Transport Charges, Other Service
	Amount        float64            `bson:"amount" json:"amount"`
	Date          time.Time          `bson:"date" json:"date"`
	CustomerName  string             `bson:"customerName,omitempty" json:"customerName,omitempty"`
	VehicleNumber string             `bson:"vehicleNumber,omitempty" json:"vehicleNumber,omitempty"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"` // Paid, Pending, Partial
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ExpenseCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type IncomeSource struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
