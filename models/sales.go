package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SalesItem struct {
	Item      string             `bson:"item" json:"item" binding:"required"`
	StoneType primitive.ObjectID `bson:"stoneType,omitempty" json:"stoneType,omitempty"`
	Quantity  float64            `bson:"quantity" json:"quantity"`
	Unit      string             `bson:"unit" json:"unit"` // Tons, Units, Kg, CFT, Loads
	Rate      float64            `bson:"rate" json:"rate"`
	Amount    float64            `bson:"amount" json:"amount"`
}

type Sales struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	InvoiceNumber string             `bson:"invoiceNumber" json:"invoiceNumber"`
	InvoiceDate   time.Time          `bson:"invoiceDate" json:"invoiceDate"`
	Customer      primitive.ObjectID `bson:"customer" json:"customer" binding:"required"`
	Items         []SalesItem        `bson:"items" json:"items"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	GstPercentage float64            `bson:"gstPercentage" json:"gstPercentage"`
	GstAmount     float64            `bson:"gstAmount" json:"gstAmount"`
	GrandTotal    float64            `bson:"grandTotal" json:"grandTotal"`
	PaymentType   string             `bson:"paymentType" json:"paymentType"` // "Cash" or "Credit"
	AmountPaid    float64            `bson:"amountPaid" json:"amountPaid"`
	BalanceAmount float64            `bson:"balanceAmount" json:"balanceAmount"`
	DueDate       *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	PaymentStatus string             `bson:"paymentStatus" json:"paymentStatus"` // Paid, Partial, Unpaid
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status        string             `bson:"status" json:"status"` // "active" or "cancelled"
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ApplyItemAmounts recomputes each line's amount from quantity and rate.
// Runs before ApplyTotals on every save path.
func (s *Sales) ApplyItemAmounts() {
	for i := range s.Items {
		s.Items[i].Amount = s.Items[i].Quantity * s.Items[i].Rate
	}
}

// ApplyTotals re-derives subtotal, GST, grand total, balance and payment
// status from items and amountPaid. Cash invoices are always fully paid.
// Idempotent: applying it to an already consistent document changes nothing.
func (s *Sales) ApplyTotals() {
	s.Subtotal = 0
	for _, it := range s.Items {
		s.Subtotal += it.Amount
	}
	s.GstAmount = s.Subtotal * s.GstPercentage / 100
	s.GrandTotal = s.Subtotal + s.GstAmount
	s.BalanceAmount = s.GrandTotal - s.AmountPaid

	if s.BalanceAmount <= 0 {
		s.PaymentStatus = "Paid"
		s.BalanceAmount = 0
	} else if s.AmountPaid > 0 {
		s.PaymentStatus = "Partial"
	} else {
		s.PaymentStatus = "Unpaid"
	}

	if s.PaymentType == "Cash" {
		s.AmountPaid = s.GrandTotal
		s.BalanceAmount = 0
		s.PaymentStatus = "Paid"
	}
}

// FormatInvoiceNumber builds the INV-YYMMDD-NNNN invoice number from the
// running invoice count.
func FormatInvoiceNumber(t time.Time, count int64) string {
	return fmt.Sprintf("INV-%s-%04d", t.Format("060102"), count+1)
}

type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Sales           primitive.ObjectID `bson:"sales" json:"sales"`
	Customer        primitive.ObjectID `bson:"customer" json:"customer"`
	Amount          float64            `bson:"amount" json:"amount" binding:"required"`
	PaymentDate     time.Time          `bson:"paymentDate" json:"paymentDate"`
	PaymentMode     string             `bson:"paymentMode" json:"paymentMode"` // Cash, Bank Transfer, UPI, Cheque
	ReferenceNumber string             `bson:"referenceNumber,omitempty" json:"referenceNumber,omitempty"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
