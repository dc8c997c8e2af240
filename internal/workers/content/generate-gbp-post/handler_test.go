package generategbppost

import (
	"context"
	"strings"
	"testing"

	"carkeypro-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	h, err := NewHandler(LoadConfig(), logger.NewTestLogger(t))
	require.NoError(t, err)
	return h
}

func createTestInput() *Input {
	return &Input{
		JobID:          "job-001",
		ServiceType:    "Automotive",
		JobDescription: "car lockout service",
		Location:       "1, King St, Barrie, Springwater, ON, L0L1L0, Canada",
		TechName:       "Alex Rodriguez",
		VehicleYear:    "2019",
		VehicleMake:    "Ford",
		VehicleModel:   "F-150",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	require.NotNil(t, output.GBPPost)

	assert.Equal(t, "job-001", output.JobID)
	assert.Len(t, output.GBPPost.Variants, 3)
	assert.Len(t, output.GBPPost.Hashtags, 5)
	assert.Len(t, output.GBPPost.PolicySnapshot.RelevantRules, 3)

	success := output.GBPPost.Variants[0]
	assert.Equal(t, "Fast Car Lockout Service in Simcoe County", success.Headline)
	assert.Contains(t, success.Body, "2019 Ford F-150")
	assert.Contains(t, success.Body, "Barrie, Springwater")
}

func TestHandler_Execute_NormalizesCategoryCase(t *testing.T) {
	h := createTestHandler(t)

	for _, serviceType := range []string{"automotive", "Automotive", "AUTOMOTIVE"} {
		input := createTestInput()
		input.ServiceType = serviceType
		output, err := h.Execute(context.Background(), input)
		require.NoError(t, err, "serviceType %q", serviceType)
		assert.Equal(t, "Fast Car Lockout Service in Simcoe County", output.GBPPost.Variants[0].Headline)
	}
}

func TestHandler_Execute_UnknownCategory(t *testing.T) {
	h := createTestHandler(t)

	input := createTestInput()
	input.ServiceType = "marine"
	_, err := h.Execute(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryUnknown)
}

func TestHandler_Execute_ValidationFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing service type", func(in *Input) { in.ServiceType = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			input := createTestInput()
			tt.mutate(input)

			_, err := h.Execute(context.Background(), input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInputValidationFailed)
		})
	}
}

func TestHandler_Execute_BodyShape(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	for i, variant := range output.GBPPost.Variants {
		assert.LessOrEqual(t, len(variant.Headline), 60, "variant %d", i)
		words := len(strings.Fields(variant.Body))
		assert.LessOrEqual(t, words, 300, "variant %d word count", i)
		assert.Greater(t, words, 100, "variant %d unexpectedly short", i)
	}
}
