package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericFieldUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want NumericField
	}{
		{`3`, 3},
		{`"3"`, 3},
		{`null`, 0},
	}

	for _, tt := range tests {
		var got struct {
			N NumericField `json:"n"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"n": `+tt.in+`}`), &got), tt.in)
		assert.Equal(t, tt.want, got.N, tt.in)
	}

	for _, bad := range []string{`"Art"`, `" 0 "`, `1.5`, `true`, `[1]`} {
		var n NumericField
		assert.Error(t, json.Unmarshal([]byte(bad), &n), bad)
	}
}
