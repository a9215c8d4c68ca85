// Package timex provides time helpers for JSON payloads exchanged with the
// Leo backend.
package timex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// layouts accepted by Time.UnmarshalJSON, tried in order. The backend emits
// naive ISO timestamps (no zone) for rows created by the database layer, so
// the zone-less forms are interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Time wraps time.Time and accepts both RFC 3339 and zone-less ISO 8601
// timestamps when decoding JSON. A JSON null decodes to the zero Time.
type Time struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timex: %w", err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler using RFC 3339 with nanoseconds.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// Parse parses s with the accepted layouts.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("timex: unsupported timestamp %q", s)
}
