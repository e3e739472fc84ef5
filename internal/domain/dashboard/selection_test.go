package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/statsboard/internal/shared/errors"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name      string
		dataType  string
		timeFrame string
		want      Selection
		wantErr   bool
	}{
		{"defaults", "", "", Selection{DataTypeNodes, TimeFrameToday}, false},
		{"users yesterday", "users", "yesterday", Selection{DataTypeUsers, TimeFrameYesterday}, false},
		{"only time frame", "", "yesterday", Selection{DataTypeNodes, TimeFrameYesterday}, false},
		{"unknown type", "servers", "today", Selection{}, true},
		{"unknown range", "nodes", "week", Selection{}, true},
		{"case sensitive", "Nodes", "", Selection{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSelection(tt.dataType, tt.timeFrame)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
