package handlers

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date")

// parseDateOfBirth accepts a calendar date or a full RFC 3339 timestamp and
// returns midnight UTC of that day.
func parseDateOfBirth(v string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, v); err == nil {
		return d, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errInvalidDate
}

// parseTimestamp parses an ISO-8601 timestamp already checked by the
// datetime binding rule.
func parseTimestamp(v string) (time.Time, error) {
	return time.Parse(time.RFC3339, v)
}
