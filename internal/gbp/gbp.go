// Package gbp generates Google Business Profile post drafts for completed
// locksmith jobs. Generation is fully deterministic templating: no model
// calls, no I/O, no state shared between calls.
package gbp

import (
	"fmt"
	"strings"
)

// ServiceCategory selects the knowledge table used for generation.
type ServiceCategory string

const (
	CategoryAutomotive  ServiceCategory = "automotive"
	CategoryResidential ServiceCategory = "residential"
	CategoryCommercial  ServiceCategory = "commercial"
	CategoryRoadside    ServiceCategory = "roadside"
)

// ParseServiceCategory normalizes a free-form category string. Unknown
// values are a configuration error, not something callers can recover from.
func ParseServiceCategory(s string) (ServiceCategory, error) {
	switch ServiceCategory(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryAutomotive:
		return CategoryAutomotive, nil
	case CategoryResidential:
		return CategoryResidential, nil
	case CategoryCommercial:
		return CategoryCommercial, nil
	case CategoryRoadside:
		return CategoryRoadside, nil
	}
	return "", fmt.Errorf("unknown service category %q", s)
}

// JobContext is the completed-job input supplied by the caller. It is
// read-only: Generate never mutates it. Vehicle fields are only meaningful
// for CategoryAutomotive; franchisee fields are optional overrides and are
// simply omitted from output when absent, except FranchiseeName which falls
// back to DefaultBusinessName.
type JobContext struct {
	ServiceType       ServiceCategory `json:"serviceType"`
	JobDescription    string          `json:"jobDescription"`
	Location          string          `json:"location"`
	TechName          string          `json:"techName"`
	Notes             string          `json:"notes,omitempty"`
	VehicleYear       string          `json:"vehicleYear,omitempty"`
	VehicleMake       string          `json:"vehicleMake,omitempty"`
	VehicleModel      string          `json:"vehicleModel,omitempty"`
	PhotoURL          string          `json:"photoUrl,omitempty"`
	FranchiseePhone   string          `json:"franchiseePhone,omitempty"`
	FranchiseeEmail   string          `json:"franchiseeEmail,omitempty"`
	FranchiseeWebsite string          `json:"franchiseeWebsite,omitempty"`
	FranchiseeName    string          `json:"franchiseeName,omitempty"`
}

// PostVariant is one post draft. Headline stays within 60 characters and the
// body targets 150-300 words.
type PostVariant struct {
	Headline            string `json:"headline"`
	Body                string `json:"body"`
	CTALabel            string `json:"ctaLabel"`
	CTALink             string `json:"ctaLink"`
	SuggestedImageStyle string `json:"suggestedImageStyle"`
	AltText             string `json:"altText"`
}

// PolicySnapshot records which compliance rules the drafts were written
// against and when. The rules are fixed; only DateChecked varies.
type PolicySnapshot struct {
	DateChecked   string   `json:"dateChecked"`
	RelevantRules []string `json:"relevantRules"`
}

// PostBundle is the result of one Generate call: three variants in stable
// order [success, educational, promotional], the first five category
// hashtags, and a note explaining what each variant is for. Bundles are
// built fresh per call and never persisted by this package.
type PostBundle struct {
	PolicySnapshot     PolicySnapshot `json:"policySnapshot"`
	Variants           []PostVariant  `json:"variants"`
	Hashtags           []string       `json:"hashtags"`
	ImplementationNote string         `json:"implementationNote"`
	CampaignID         string         `json:"campaignId"`
}

// PostingTips are the image-related fields projected off a chosen variant.
type PostingTips struct {
	ImageStyle string `json:"imageStyle"`
	AltText    string `json:"altText"`
}

// ComplianceResult is the advisory output of CheckPolicyCompliance.
// Compliant is true iff no issues were flagged; findings never block
// generation.
type ComplianceResult struct {
	Compliant bool     `json:"compliant"`
	Issues    []string `json:"issues"`
}
