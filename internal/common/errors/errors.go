// Package errors provides standardized error handling for BPMN workflow
// integration.
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Content generation.
	ErrCodeCategoryUnknown       ErrorCode = "CATEGORY_UNKNOWN"
	ErrCodePostGenerationFailed  ErrorCode = "POST_GENERATION_FAILED"
	ErrCodeInputValidationFailed ErrorCode = "INPUT_VALIDATION_FAILED"

	// Persistence.
	ErrCodeDatabaseInsertFailed ErrorCode = "DATABASE_INSERT_FAILED"
	ErrCodeDuplicatePostDraft   ErrorCode = "DUPLICATE_POST_DRAFT"
	ErrCodeSearchIndexFailed    ErrorCode = "SEARCH_INDEX_FAILED"

	// Vehicle lookup.
	ErrCodeVINInvalid       ErrorCode = "VIN_INVALID"
	ErrCodeVINDecodeFailed  ErrorCode = "VIN_DECODE_FAILED"
	ErrCodeVINDecodeTimeout ErrorCode = "VIN_DECODE_TIMEOUT"

	// Notifications.
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"

	// Generic.
	ErrCodeParseError   ErrorCode = "PARSE_ERROR"
	ErrCodeInternalFail ErrorCode = "INTERNAL_ERROR"
)

// StandardError is the typed error carried between worker layers.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// BPMNError represents an error that can be thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// FromStandard converts a StandardError into a throwable BPMNError.
func FromStandard(err *StandardError) *BPMNError {
	retries := 0
	if err.Retryable {
		retries = 3
	}
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   retries,
	}
}

// NewInputValidationFailedError wraps schema validation findings.
func NewInputValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputValidationFailed,
		Message:   "Job input failed schema validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseInsertFailedError creates a retryable insert error.
func NewDatabaseInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseInsertFailed,
		Message:   "Database insert error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicatePostDraftError flags a second draft bundle for the same job.
func NewDuplicatePostDraftError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicatePostDraft,
		Message:   "Post drafts already exist for job",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewVINInvalidError flags a VIN that cannot possibly decode.
func NewVINInvalidError(vin string) *StandardError {
	return &StandardError{
		Code:      ErrCodeVINInvalid,
		Message:   "VIN is not a valid 17-character identifier",
		Details:   fmt.Sprintf("vin: %s", vin),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewVINDecodeFailedError creates a retryable upstream decoder error.
func NewVINDecodeFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVINDecodeFailed,
		Message:   "VIN decoder request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewVINDecodeTimeoutError creates a retryable decoder timeout error.
func NewVINDecodeTimeoutError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeVINDecodeTimeout,
		Message:   "VIN decoder request timed out",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
