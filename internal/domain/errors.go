package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCityRequired is returned when a query arrives without a city.
	ErrCityRequired = errors.New("city parameter is required")

	// ErrCityNotFound is returned when the provider has no data for the city.
	ErrCityNotFound = errors.New("city not found")
)

// UpstreamError wraps any failure talking to the weather provider:
// transport errors, non-2xx statuses and payloads that cannot be decoded.
type UpstreamError struct {
	Op         string // provider endpoint, e.g. "current"
	StatusCode int    // HTTP status, 0 when no response was received
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
