// internal/models/vehicle.go
package models

// Vehicle is the decoded year/make/model for a VIN, shaped to drop straight
// into a generation job context.
type Vehicle struct {
	VIN   string `json:"vin"`
	Year  string `json:"vehicleYear"`
	Make  string `json:"vehicleMake"`
	Model string `json:"vehicleModel"`
}
