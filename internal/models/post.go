// internal/models/post.go
package models

// PostDraft is the stored form of one generated bundle, persisted by the
// create-post-record worker and mirrored into the dashboard search index.
type PostDraft struct {
	ID              string              `json:"id"`
	JobID           string              `json:"jobId"`
	FranchiseeID    string              `json:"franchiseeId"`
	ServiceCategory string              `json:"serviceCategory"`
	Location        string              `json:"location"`
	Variants        []PostVariantRecord `json:"variants"`
	Hashtags        []string            `json:"hashtags"`
	CampaignID      string              `json:"campaignId"`
	Status          string              `json:"status"`
	CreatedAt       string              `json:"createdAt"`
}

// PostVariantRecord is one stored draft variant.
type PostVariantRecord struct {
	Strategy            string `json:"strategy"` // success, educational, promotional
	Headline            string `json:"headline"`
	Body                string `json:"body"`
	CTALabel            string `json:"ctaLabel"`
	CTALink             string `json:"ctaLink"`
	SuggestedImageStyle string `json:"suggestedImageStyle"`
	AltText             string `json:"altText"`
}

// Draft statuses.
const (
	DraftStatusPendingReview = "pending_review"
	DraftStatusApproved      = "approved"
	DraftStatusRejected      = "rejected"
	DraftStatusPublished     = "published"
)
