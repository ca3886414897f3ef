package travelclock

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrMalformedTime is wrapped around any timestamp that fails to parse.
// Layover arithmetic depends on these values so the error always
// propagates instead of being swallowed.
var ErrMalformedTime = errors.New("malformed timestamp")

// Parse reads an RFC3339 timestamp as produced by the schedule providers.
func Parse(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, raw)
	}

	return parsed, nil
}

// DurationMinutes returns later minus earlier in whole minutes, truncated
// toward zero. Callers must only ever pass later >= earlier - a negative
// gap is a caller bug, not a domain outcome.
func DurationMinutes(later time.Time, earlier time.Time) int {
	if later.Before(earlier) {
		log.Panic().
			Time("later", later).
			Time("earlier", earlier).
			Msg("DurationMinutes called with later before earlier")
	}

	return int(later.Sub(earlier).Minutes())
}
