// internal/workers/content/check-post-compliance/models.go
package checkpostcompliance

// Input is the draft text to lint, typically after a franchisee edited a
// generated variant.
type Input struct {
	JobID   string `json:"jobId,omitempty"`
	Content string `json:"content"`
}

// Output is the advisory lint result. The workflow decides whether findings
// block publication; this worker never does.
type Output struct {
	JobID     string   `json:"jobId,omitempty"`
	Compliant bool     `json:"compliant"`
	Issues    []string `json:"issues"`
}
