package planner

import (
	"strconv"
	"strings"
)

// ParseTripRequest splits a combined "<place>, <N> days" string into a place
// and a day count. The split happens on the first comma only, so places with
// commas in the trailing part still parse ("Ooty, 4 days, with kids" -> 4).
//
// Fails with ErrInvalidFormat when the comma is missing, when no integer
// token follows it, or when the parsed day count is below 1.
func ParseTripRequest(destination, preferences string) (TripRequest, error) {
	idx := strings.Index(destination, ",")
	if idx < 0 {
		return TripRequest{}, ErrInvalidFormat
	}

	place := strings.TrimSpace(destination[:idx])

	fields := strings.Fields(strings.TrimSpace(destination[idx+1:]))
	if len(fields) == 0 {
		return TripRequest{}, ErrInvalidFormat
	}

	days, err := strconv.Atoi(fields[0])
	if err != nil || days < 1 {
		return TripRequest{}, ErrInvalidFormat
	}

	return TripRequest{
		Place:       place,
		Days:        days,
		Preferences: preferences,
	}, nil
}
