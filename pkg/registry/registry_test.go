// pkg/registry/registry_test.go
package registry

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistry() *ActivityRegistry {
	return &ActivityRegistry{
		Version:     "1.0.0",
		LastUpdated: "2026-03-14T00:00:00Z",
		Activities: []Activity{
			{
				ID:          "generate-gbp-post",
				DisplayName: "Generate GBP Post",
				Category:    "content",
				TaskType:    "generate-gbp-post",
			},
			{
				ID:          "decode-vin",
				DisplayName: "Decode VIN",
				Category:    "vehicle",
				TaskType:    "decode-vin",
			},
		},
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	require.NoError(t, SaveRegistry(sampleRegistry(), path))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", loaded.Version)
	assert.Len(t, loaded.Activities, 2)
	assert.Equal(t, "generate-gbp-post", loaded.Activities[0].ID)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ActivityRegistry)
		wantErr string
	}{
		{"valid", func(r *ActivityRegistry) {}, ""},
		{
			"empty registry",
			func(r *ActivityRegistry) { r.Activities = nil },
			"no activities",
		},
		{
			"duplicate id",
			func(r *ActivityRegistry) { r.Activities[1].ID = r.Activities[0].ID },
			"duplicate activity ID",
		},
		{
			"missing display name",
			func(r *ActivityRegistry) { r.Activities[0].DisplayName = "" },
			"missing required field: DisplayName",
		},
		{
			"missing task type",
			func(r *ActivityRegistry) { r.Activities[1].TaskType = "" },
			"missing required field: TaskType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := sampleRegistry()
			tt.mutate(reg)
			err := reg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFind(t *testing.T) {
	reg := sampleRegistry()

	assert.NotNil(t, reg.Find("decode-vin"))
	assert.Nil(t, reg.Find("missing"))
}
