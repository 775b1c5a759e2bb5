package models

import "testing"

func TestCalcWagesDaily(t *testing.T) {
	f := CalcWages(500, "Daily", 20, 2, 0, 31, 200)

	if f.TotalWorkDays != 21 {
		t.Errorf("totalWorkDays = %v, want 21", f.TotalWorkDays)
	}
	if f.DailyRate != 500 {
		t.Errorf("dailyRate = %v, want 500", f.DailyRate)
	}
	if f.TotalWages != 10500 {
		t.Errorf("totalWages = %v, want 10500", f.TotalWages)
	}
	if f.NetPayable != 10300 {
		t.Errorf("netPayable = %v, want 10300", f.NetPayable)
	}
}

func TestCalcWagesMonthlyProrated(t *testing.T) {
	f := CalcWages(30000, "Monthly", 30, 0, 0, 30, 0)

	if f.DailyRate != 1000 {
		t.Errorf("dailyRate = %v, want 1000", f.DailyRate)
	}
	if f.TotalWages != 30000 {
		t.Errorf("totalWages = %v, want 30000", f.TotalWages)
	}
	if f.HourlyRate != 125 {
		t.Errorf("hourlyRate = %v, want 125", f.HourlyRate)
	}
}

func TestCalcWagesOvertime(t *testing.T) {
	f := CalcWages(800, "Daily", 10, 0, 4, 30, 0)

	// hourly rate 100, 4 OT hours
	if f.OtAmount != 400 {
		t.Errorf("otAmount = %v, want 400", f.OtAmount)
	}
	if f.NetPayable != 8400 {
		t.Errorf("netPayable = %v, want 8400", f.NetPayable)
	}
}

func TestCalcWagesAdvanceCanExceedWages(t *testing.T) {
	f := CalcWages(500, "Daily", 2, 0, 0, 30, 2000)

	if f.NetPayable != -1000 {
		t.Errorf("netPayable = %v, want -1000", f.NetPayable)
	}
}
