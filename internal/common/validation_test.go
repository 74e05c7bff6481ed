package common

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePostText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "ordinary text", text: "hello world", wantErr: false},
		{name: "exactly at the limit", text: strings.Repeat("a", 140), wantErr: false},
		{name: "one over the limit", text: strings.Repeat("a", 141), wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: "   \t\n", wantErr: true},
		{name: "multibyte runes count as one", text: strings.Repeat("é", 140), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePostText(tt.text, 140)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFireAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tolerance := time.Minute

	tests := []struct {
		name    string
		fireAt  time.Time
		wantErr bool
	}{
		{name: "future", fireAt: now.Add(time.Hour), wantErr: false},
		{name: "exactly now", fireAt: now, wantErr: false},
		{name: "slightly past, within tolerance", fireAt: now.Add(-30 * time.Second), wantErr: false},
		{name: "past the tolerance", fireAt: now.Add(-2 * time.Minute), wantErr: true},
		{name: "zero value", fireAt: time.Time{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFireAt(tt.fireAt, now, tolerance)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
