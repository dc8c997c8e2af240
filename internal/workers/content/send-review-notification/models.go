// internal/workers/content/send-review-notification/models.go
package sendreviewnotification

type Input struct {
	JobID           string `json:"jobId"`
	PostDraftID     string `json:"postDraftId"`
	ServiceType     string `json:"serviceType,omitempty"`
	CampaignID      string `json:"campaignId,omitempty"`
	FranchiseeName  string `json:"franchiseeName,omitempty"`
	FranchiseeEmail string `json:"franchiseeEmail,omitempty"`
	FranchiseePhone string `json:"franchiseePhone,omitempty"`
}

type Output struct {
	NotificationID string `json:"notificationId"`
	Status         string `json:"status"` // "sent", "failed", "disabled"
	SentAt         string `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
