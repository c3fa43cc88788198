package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"RFC3339", "2024-01-03T10:15:00Z"},
		{"RFC3339 with offset", "2024-01-03T10:15:00+05:30"},
		{"RFC3339 nanoseconds", "2024-01-03T10:15:00.123456789Z"},
		{"No timezone", "2024-01-03T10:15:00"},
		{"Space separated", "2024-01-03 10:15:00"},
		{"Date only", "2024-01-03"},
		{"Unix seconds", "1704276900"},
		{"Unix milliseconds", "1704276900123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			parsed, ok := ParseTimestamp(tt.input)
			req.True(ok)
			req.False(parsed.IsZero())
			req.True(IsValidTimestamp(tt.input))
		})
	}
}

func TestParseTimestamp_RejectedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Whitespace only", "   "},
		{"Free text", "not-a-date"},
		{"NaN literal", "NaN"},
		{"Partially numeric", "2024-13-45T99:99:99Z"},
		{"Negative epoch", "-42"},
		{"Zero epoch", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, ok := ParseTimestamp(tt.input)
			req.False(ok)
			req.False(IsValidTimestamp(tt.input))
		})
	}
}

func TestParseTimestamp_UnixMillisRoundTrip(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, time.January, 3, 10, 15, 0, 0, time.UTC)

	parsed, ok := ParseTimestamp("1704276900000")
	req.True(ok)
	req.True(parsed.Equal(at))
}
