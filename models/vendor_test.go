package models

import "testing"

func TestVendorPaymentBalanceDelta(t *testing.T) {
	tests := []struct {
		name    string
		invoice float64
		paid    float64
		want    float64
	}{
		{"invoice above payment raises balance", 2000, 500, 1500},
		{"full settlement leaves balance alone", 1200, 1200, 0},
		{"payment only lowers balance", 0, 800, -800},
	}
	for _, tt := range tests {
		p := VendorPayment{InvoiceAmount: tt.invoice, PaidAmount: tt.paid}
		if got := p.BalanceDelta(); got != tt.want {
			t.Errorf("%s: BalanceDelta() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
