package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStandard_RetryableGetsRetries(t *testing.T) {
	stdErr := NewDatabaseInsertFailedError(errors.New("connection reset"))

	bpmnErr := FromStandard(stdErr)

	assert.Equal(t, "DATABASE_INSERT_FAILED", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)
	assert.Contains(t, bpmnErr.Details, "connection reset")
}

func TestFromStandard_NonRetryableGetsZeroRetries(t *testing.T) {
	stdErr := NewDuplicatePostDraftError("job-42")

	bpmnErr := FromStandard(stdErr)

	assert.Equal(t, "DUPLICATE_POST_DRAFT", bpmnErr.Code)
	assert.False(t, bpmnErr.Retryable)
	assert.Equal(t, 0, bpmnErr.Retries)
	assert.Contains(t, bpmnErr.Details, "job-42")
}

func TestToErrorVariables(t *testing.T) {
	bpmnErr := &BPMNError{
		Code:      "VIN_DECODE_FAILED",
		Message:   "upstream unavailable",
		Retryable: true,
		ErrorVariables: map[string]interface{}{
			"vin": "1FTEW1EP5KFA12345",
		},
	}

	vars := bpmnErr.ToErrorVariables()

	assert.Equal(t, "VIN_DECODE_FAILED", vars["errorCode"])
	assert.Equal(t, "upstream unavailable", vars["errorMessage"])
	assert.Equal(t, true, vars["retryable"])
	assert.Equal(t, "1FTEW1EP5KFA12345", vars["vin"])
}

func TestConstructorRetryability(t *testing.T) {
	assert.False(t, NewInputValidationFailedError("missing field").Retryable)
	assert.False(t, NewVINInvalidError("SHORT").Retryable)
	assert.True(t, NewVINDecodeFailedError(errors.New("503")).Retryable)
	assert.True(t, NewVINDecodeTimeoutError(errors.New("deadline")).Retryable)
}

func TestStandardErrorString(t *testing.T) {
	stdErr := NewVINInvalidError("SHORT")
	assert.Equal(t, "StandardError[VIN_INVALID]: VIN is not a valid 17-character identifier", stdErr.Error())
}
