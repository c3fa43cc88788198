// Package format turns raw message timestamps into display strings.
// Parsing and formatting are total: malformed input degrades to a sentinel
// value, never to a panic or an error crossing the package boundary.
package format

import (
	"strconv"
	"strings"
	"time"
)

// Layouts accepted from upstream payloads. RFC 3339 is the nominal wire
// form; the rest have been observed in older exports.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// unixMillisCutoff separates Unix seconds from Unix milliseconds when the
// timestamp is a bare integer. Anything above ~year 2255 in seconds is
// interpreted as milliseconds.
const unixMillisCutoff = 9_000_000_000

// ParseTimestamp attempts to interpret value as a point in time.
// The boolean is false for empty, unparseable, or otherwise malformed input.
func ParseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}

	// Bare integers are Unix epoch offsets, a shape produced by
	// wall-clock-derived identifiers leaking into timestamp fields.
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		if n > unixMillisCutoff {
			return time.UnixMilli(n), true
		}
		return time.Unix(n, 0), true
	}

	return time.Time{}, false
}

// IsValidTimestamp reports whether value parses to a real instant.
func IsValidTimestamp(value string) bool {
	_, ok := ParseTimestamp(value)
	return ok
}
