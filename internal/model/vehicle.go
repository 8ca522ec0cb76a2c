package model

// VehicleSpec is read-only EV reference data.
type VehicleSpec struct {
	ID                       int      `json:"id"`
	Manufacturer             string   `json:"manufacturer"`
	Model                    string   `json:"model"`
	DriveType                string   `json:"drive_type,omitempty"`
	BatteryType              string   `json:"battery_type,omitempty"`
	BatteryCapacity          *int     `json:"battery_capacity,omitempty"`
	RangeKM                  *int     `json:"range_km,omitempty"`
	Acceleration             *float64 `json:"acceleration,omitempty"` // 0-100 km/h seconds
	WeightKG                 *int     `json:"weight_kg,omitempty"`
	StorageL                 *int     `json:"storage_l,omitempty"`
	WheelSize                string   `json:"wheel_size,omitempty"`
	SeatingCapacity          *int     `json:"seating_capacity,omitempty"`
	DisplayInch              *float64 `json:"display_inch,omitempty"`
	MinimumGroundClearanceMM *int     `json:"minimum_ground_clearance_mm,omitempty"`
	WidthMM                  *int     `json:"width_mm,omitempty"`
	HeightMM                 *int     `json:"height_mm,omitempty"`
	LengthMM                 *int     `json:"length_mm,omitempty"`
}

// SearchFields exposes manufacturer and model for client-side filtering.
func (v VehicleSpec) SearchFields() []string {
	return []string{v.Manufacturer, v.Model}
}
