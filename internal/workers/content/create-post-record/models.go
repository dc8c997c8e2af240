// internal/workers/content/create-post-record/models.go
package createpostrecord

import "carkeypro-workers/internal/gbp"

type Input struct {
	JobID           string          `json:"jobId"`
	FranchiseeID    string          `json:"franchiseeId"`
	ServiceType     string          `json:"serviceType"`
	Location        string          `json:"location"`
	GBPPost         *gbp.PostBundle `json:"gbpPost"`
	ComplianceIssue []string        `json:"complianceIssues,omitempty"`
}

type Output struct {
	PostDraftID string `json:"postDraftId"`
	DraftStatus string `json:"draftStatus"`
	CreatedAt   string `json:"createdAt"` // ISO 8601
	Indexed     bool   `json:"indexed"`
}
