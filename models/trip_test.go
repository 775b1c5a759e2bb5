package models

import "testing"

func TestApplyCosts(t *testing.T) {
	trip := Trip{
		TripRate:       8000,
		DieselQuantity: 40,
		DieselRate:     95,
		DriverAmount:   600,
		DriverBata:     150,
		OtherExpenses:  250,
	}
	trip.ApplyCosts()

	if trip.DieselTotal != 3800 {
		t.Errorf("dieselTotal = %v, want 3800", trip.DieselTotal)
	}
	if trip.TotalExpense != 4800 {
		t.Errorf("totalExpense = %v, want 4800", trip.TotalExpense)
	}
	if trip.NetProfit != 3200 {
		t.Errorf("netProfit = %v, want 3200", trip.NetProfit)
	}
}

func TestApplyCostsZeroInputs(t *testing.T) {
	trip := Trip{TripRate: 1500}
	trip.ApplyCosts()

	if trip.TotalExpense != 0 {
		t.Errorf("totalExpense = %v, want 0", trip.TotalExpense)
	}
	if trip.NetProfit != 1500 {
		t.Errorf("netProfit = %v, want 1500", trip.NetProfit)
	}
}

func TestApplyCostsIdempotent(t *testing.T) {
	trip := Trip{
		TripRate:       5000,
		DieselQuantity: 20,
		DieselRate:     90,
		DriverAmount:   500,
	}
	trip.ApplyCosts()
	first := trip
	trip.ApplyCosts()

	if trip != first {
		t.Errorf("second ApplyCosts changed the trip: %+v vs %+v", trip, first)
	}
}
