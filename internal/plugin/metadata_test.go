package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataValidate(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		wantErr  string
	}{
		{
			name:     "valid",
			metadata: Metadata{Name: "gitinfo", Version: "1.0.0", Description: "git info"},
		},
		{
			name:     "valid with separators",
			metadata: Metadata{Name: "sys_info-2", Version: "0.1.0"},
		},
		{
			name:     "missing name",
			metadata: Metadata{Version: "1.0.0"},
			wantErr:  "non-empty Name",
		},
		{
			name:     "whitespace name",
			metadata: Metadata{Name: "   ", Version: "1.0.0"},
			wantErr:  "non-empty Name",
		},
		{
			name:     "uppercase name",
			metadata: Metadata{Name: "GitInfo", Version: "1.0.0"},
			wantErr:  "invalid",
		},
		{
			name:     "leading digit",
			metadata: Metadata{Name: "2fast", Version: "1.0.0"},
			wantErr:  "invalid",
		},
		{
			name:     "missing version",
			metadata: Metadata{Name: "gitinfo"},
			wantErr:  "requires Version",
		},
		{
			name:     "malformed version",
			metadata: Metadata{Name: "gitinfo", Version: "1.0"},
			wantErr:  "invalid Version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metadata.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
