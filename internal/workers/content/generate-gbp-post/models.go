// internal/workers/content/generate-gbp-post/models.go
package generategbppost

import "carkeypro-workers/internal/gbp"

// Input carries the completed-job context from the workflow. ServiceType is
// normalized before generation, so "Automotive" and "automotive" both work.
type Input struct {
	JobID             string `json:"jobId"`
	ServiceType       string `json:"serviceType"`
	JobDescription    string `json:"jobDescription"`
	Location          string `json:"location"`
	TechName          string `json:"techName"`
	Notes             string `json:"notes,omitempty"`
	VehicleYear       string `json:"vehicleYear,omitempty"`
	VehicleMake       string `json:"vehicleMake,omitempty"`
	VehicleModel      string `json:"vehicleModel,omitempty"`
	PhotoURL          string `json:"photoUrl,omitempty"`
	FranchiseePhone   string `json:"franchiseePhone,omitempty"`
	FranchiseeEmail   string `json:"franchiseeEmail,omitempty"`
	FranchiseeWebsite string `json:"franchiseeWebsite,omitempty"`
	FranchiseeName    string `json:"franchiseeName,omitempty"`
}

// Output hands the generated bundle back to the workflow.
type Output struct {
	JobID   string          `json:"jobId"`
	GBPPost *gbp.PostBundle `json:"gbpPost"`
}

func (in *Input) toJobContext(category gbp.ServiceCategory) gbp.JobContext {
	return gbp.JobContext{
		ServiceType:       category,
		JobDescription:    in.JobDescription,
		Location:          in.Location,
		TechName:          in.TechName,
		Notes:             in.Notes,
		VehicleYear:       in.VehicleYear,
		VehicleMake:       in.VehicleMake,
		VehicleModel:      in.VehicleModel,
		PhotoURL:          in.PhotoURL,
		FranchiseePhone:   in.FranchiseePhone,
		FranchiseeEmail:   in.FranchiseeEmail,
		FranchiseeWebsite: in.FranchiseeWebsite,
		FranchiseeName:    in.FranchiseeName,
	}
}
