package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Labour struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Mobile      string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	WorkType    string             `bson:"workType,omitempty" json:"workType,omitempty"` // Helper, Operator, Driver...
	Wage        float64            `bson:"wage" json:"wage"`
	WageType    string             `bson:"wageType" json:"wageType"`     // "Daily" or "Monthly"
	LabourType  string             `bson:"labourType" json:"labourType"` // "Direct" or "Vendor"
	Contractor  primitive.ObjectID `bson:"contractor,omitempty" json:"contractor,omitempty"`
	JoiningDate time.Time          `bson:"joiningDate,omitempty" json:"joiningDate,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Attendance holds one record per (labour, date); the collection carries a
// unique index on the pair and writes go through upserts.
type Attendance struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Labour        primitive.ObjectID `bson:"labour" json:"labour" binding:"required"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status" binding:"required"` // Present, Absent, Half Day
	OvertimeHours float64            `bson:"overtimeHours" json:"overtimeHours"`
	IsPaid        bool               `bson:"isPaid" json:"isPaid"`
	Remarks       string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Advance struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Labour      primitive.ObjectID `bson:"labour" json:"labour" binding:"required"`
	Date        time.Time          `bson:"date" json:"date"`
	Amount      float64            `bson:"amount" json:"amount" binding:"required"`
	PaymentMode string             `bson:"paymentMode" json:"paymentMode"` // Cash, Bank Transfer, UPI, G-Pay
	Remarks     string             `bson:"remarks,omitempty" json:"remarks,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// WageFigures is one labour's computed payroll for a month.
type WageFigures struct {
	TotalWorkDays float64
	DailyRate     float64
	TotalWages    float64
	HourlyRate    float64
	OtAmount      float64
	TotalAdvance  float64
	NetPayable    float64
}

// CalcWages reduces a month of attendance to payable figures. Monthly wages
// are prorated over the days in the month; overtime is paid at one eighth of
// the daily rate per hour; advances come off the net.
func CalcWages(wage float64, wageType string, presentDays, halfDays int, otHours float64, daysInMonth int, totalAdvance float64) WageFigures {
	f := WageFigures{TotalAdvance: totalAdvance}
	f.TotalWorkDays = float64(presentDays) + 0.5*float64(halfDays)

	if wageType == "Monthly" && daysInMonth > 0 {
		f.DailyRate = wage / float64(daysInMonth)
	} else {
		f.DailyRate = wage
	}

	f.TotalWages = f.TotalWorkDays * f.DailyRate
	f.HourlyRate = f.DailyRate / 8
	f.OtAmount = otHours * f.HourlyRate
	f.NetPayable = f.TotalWages + f.OtAmount - totalAdvance
	return f
}
