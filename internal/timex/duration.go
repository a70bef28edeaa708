// Package timex provides a JSON-friendly wrapper around time.Duration so
// config files can express intervals either as strings ("30s", "1m") or as
// integer nanoseconds.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration for JSON (un)marshalling.
type Duration struct {
	time.Duration
}

var errInvalidDuration = errors.New("invalid duration")

// MarshalJSON encodes the duration as a string, e.g. "30s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a duration string ("30s") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return errInvalidDuration
	}
}
