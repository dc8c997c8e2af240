package gbp

import "regexp"

// Advisory text linting against Google Business Profile promotional-content
// policy. This is decoupled from Generate: callers run it over edited drafts
// before publishing, and findings never block generation.

var (
	guaranteePattern        = regexp.MustCompile(`(?i)guaranteed|guarantee`)
	guaranteeContextPattern = regexp.MustCompile(`(?i)licensed|insured`)
	discountPattern         = regexp.MustCompile(`(?i)\d+%\s*(off|discount)`)
	priceComparisonPattern  = regexp.MustCompile(`(?i)cheapest|lowest price`)
)

// CheckPolicyCompliance scans content for phrasing that would violate GBP
// post policy. A guarantee is acceptable when contextualized by licensing or
// insurance language; discount percentages and unverifiable price
// comparisons are always flagged.
func CheckPolicyCompliance(content string) ComplianceResult {
	issues := make([]string, 0, 3)

	if guaranteePattern.MatchString(content) && !guaranteeContextPattern.MatchString(content) {
		issues = append(issues, "Avoid unverifiable guarantees without proper context.")
	}
	if discountPattern.MatchString(content) {
		issues = append(issues, "Promotional offers must be clear, accurate, and not misleading.")
	}
	if priceComparisonPattern.MatchString(content) {
		issues = append(issues, "Avoid price comparisons that cannot be verified.")
	}

	return ComplianceResult{
		Compliant: len(issues) == 0,
		Issues:    issues,
	}
}
