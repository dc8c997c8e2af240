// internal/workers/vehicle/decode-vin/models.go
package decodevin

type Input struct {
	JobID string `json:"jobId,omitempty"`
	VIN   string `json:"vin"`
}

type Output struct {
	VIN          string `json:"vin"`
	VehicleYear  string `json:"vehicleYear"`
	VehicleMake  string `json:"vehicleMake"`
	VehicleModel string `json:"vehicleModel"`
	FromCache    bool   `json:"fromCache"`
}

// vpicResponse is the shape of the NHTSA vPIC DecodeVinValues payload. Only
// the fields the workflow needs are decoded.
type vpicResponse struct {
	Count   int    `json:"Count"`
	Message string `json:"Message"`
	Results []struct {
		Make      string `json:"Make"`
		Model     string `json:"Model"`
		ModelYear string `json:"ModelYear"`
		ErrorCode string `json:"ErrorCode"`
		ErrorText string `json:"ErrorText"`
	} `json:"Results"`
}
