package models

import (
	"reflect"
	"testing"
	"time"
)

func TestApplyTotalsCreditPartial(t *testing.T) {
	s := Sales{
		Items: []SalesItem{
			{Quantity: 10, Rate: 500},
			{Quantity: 2, Rate: 250},
		},
		GstPercentage: 5,
		PaymentType:   "Credit",
		AmountPaid:    2000,
	}
	s.ApplyItemAmounts()
	s.ApplyTotals()

	if s.Items[0].Amount != 5000 || s.Items[1].Amount != 500 {
		t.Fatalf("item amounts = %v, %v", s.Items[0].Amount, s.Items[1].Amount)
	}
	if s.Subtotal != 5500 {
		t.Errorf("subtotal = %v, want 5500", s.Subtotal)
	}
	if s.GstAmount != 275 {
		t.Errorf("gstAmount = %v, want 275", s.GstAmount)
	}
	if s.GrandTotal != 5775 {
		t.Errorf("grandTotal = %v, want 5775", s.GrandTotal)
	}
	if s.BalanceAmount != 3775 {
		t.Errorf("balanceAmount = %v, want 3775", s.BalanceAmount)
	}
	if s.PaymentStatus != "Partial" {
		t.Errorf("paymentStatus = %q, want Partial", s.PaymentStatus)
	}
}

func TestApplyTotalsUnpaidAndPaid(t *testing.T) {
	s := Sales{
		Items:       []SalesItem{{Quantity: 4, Rate: 100}},
		PaymentType: "Credit",
	}
	s.ApplyItemAmounts()
	s.ApplyTotals()
	if s.PaymentStatus != "Unpaid" {
		t.Errorf("paymentStatus = %q, want Unpaid", s.PaymentStatus)
	}

	s.AmountPaid = 400
	s.ApplyTotals()
	if s.PaymentStatus != "Paid" || s.BalanceAmount != 0 {
		t.Errorf("paymentStatus = %q balance = %v, want Paid and 0", s.PaymentStatus, s.BalanceAmount)
	}
}

func TestApplyTotalsCashForcesFullPayment(t *testing.T) {
	s := Sales{
		Items:       []SalesItem{{Quantity: 3, Rate: 1000}},
		PaymentType: "Cash",
		AmountPaid:  0,
	}
	s.ApplyItemAmounts()
	s.ApplyTotals()

	if s.AmountPaid != s.GrandTotal {
		t.Errorf("amountPaid = %v, want grand total %v", s.AmountPaid, s.GrandTotal)
	}
	if s.BalanceAmount != 0 {
		t.Errorf("balanceAmount = %v, want 0", s.BalanceAmount)
	}
	if s.PaymentStatus != "Paid" {
		t.Errorf("paymentStatus = %q, want Paid", s.PaymentStatus)
	}
}

func TestApplyTotalsIdempotent(t *testing.T) {
	s := Sales{
		Items:         []SalesItem{{Quantity: 7, Rate: 120}},
		GstPercentage: 18,
		PaymentType:   "Credit",
		AmountPaid:    300,
	}
	s.ApplyItemAmounts()
	s.ApplyTotals()
	first := s
	s.ApplyTotals()

	if !reflect.DeepEqual(s, first) {
		t.Errorf("second ApplyTotals changed the document: %+v vs %+v", s, first)
	}
}

func TestFormatInvoiceNumber(t *testing.T) {
	day := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	got := FormatInvoiceNumber(day, 41)
	want := "INV-240307-0042"
	if got != want {
		t.Errorf("FormatInvoiceNumber = %q, want %q", got, want)
	}
}
