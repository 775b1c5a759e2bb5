package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		vehicle Vehicle
		want    string
	}{
		{
			name:    "category with vehicle number",
			vehicle: Vehicle{Name: "Tipper 1", Category: "Tipper", VehicleNumber: "TN 38 AB 1234"},
			want:    "Tipper (TN 38 AB 1234)",
		},
		{
			name:    "registration number fallback",
			vehicle: Vehicle{Name: "JCB", Category: "JCB", RegistrationNumber: "TN 40 XY 9876"},
			want:    "JCB (TN 40 XY 9876)",
		},
		{
			name:    "plate without category",
			vehicle: Vehicle{Name: "Hitachi EX200", VehicleNumber: "TN 41 CD 5555"},
			want:    "Hitachi EX200 (TN 41 CD 5555)",
		},
		{
			name:    "name only",
			vehicle: Vehicle{Name: "Compressor"},
			want:    "Compressor",
		},
	}

	for _, tt := range tests {
		if got := tt.vehicle.DisplayName(); got != tt.want {
			t.Errorf("%s: DisplayName = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPlateNumber(t *testing.T) {
	v := Vehicle{VehicleNumber: "TN 38 AB 1234", RegistrationNumber: "IGNORED"}
	if got := v.PlateNumber(); got != "TN 38 AB 1234" {
		t.Errorf("PlateNumber = %q, want vehicle number", got)
	}

	v = Vehicle{RegistrationNumber: "TN 40 XY 9876"}
	if got := v.PlateNumber(); got != "TN 40 XY 9876" {
		t.Errorf("PlateNumber = %q, want registration number", got)
	}
}
