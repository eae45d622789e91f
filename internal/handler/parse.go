package handler

import (
	"bytes"
	"encoding/json"
	"time"
)

// parseDate parses "YYYY-MM-DD" or RFC3339 into a *time.Time. Empty
// input yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// rawJSONNull reports whether the raw message is the JSON literal
// null. Partial updates use it to tell "clear this field" apart from
// "field absent".
func rawJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
