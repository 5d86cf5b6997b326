package planner

import "errors"

// ErrInvalidFormat is returned when the destination string is not of the form
// "<place>, <N> days" with N >= 1. No network calls happen after this error.
var ErrInvalidFormat = errors.New("invalid destination format")

// ErrNoResults is the recoverable condition when the search returned nothing
// usable. It halts the request with a warning, not a provider error.
var ErrNoResults = errors.New("no search results")

// Fixed user-facing messages, identical across the web and console surfaces.
const (
	MsgInvalidFormat = "Invalid input format. Please follow the example: 'Chennai, 3 days'."
	MsgNoResults     = "Could not find relevant information. Please try a different query."
)

// TripRequest is a parsed, validated planning request. It lives only for the
// duration of a single pipeline invocation; nothing is persisted.
type TripRequest struct {
	Place       string
	Days        int
	Preferences string
}
