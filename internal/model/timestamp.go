package model

import (
	"bytes"
	"fmt"
	"time"
)

// timestampLayouts lists the accepted wire formats, most specific first.
// The remote service serializes local date-times without a zone offset.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a server-assigned creation time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts RFC 3339 and zone-less ISO date-times.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	s := string(bytes.Trim(data, `"`))
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("invalid timestamp %q", s)
}

// MarshalJSON writes the time in RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// DateString formats the timestamp for display, or returns fallback when unset.
func (t *Timestamp) DateString(fallback string) string {
	if t == nil || t.IsZero() {
		return fallback
	}
	return t.Format("02/01/2006")
}
