package common

import (
	"encoding/json"
	"fmt"
	"time"

	"timewise.app/timewise/utils"
)

// DateOnly is a calendar date carried over JSON as "2006-01-02". The zero
// value marshals to an empty string, and an empty string unmarshals to the
// zero value, so optional dates round-trip cleanly.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.ParseInLocation(utils.DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d DateOnly) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(utils.DateLayout)
}
