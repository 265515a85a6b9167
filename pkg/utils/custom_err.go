package utils

import "errors"

var (
	ErrMissingInput        = errors.New("missing required input")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrNoVenuesFound       = errors.New("no venues found for selected categories")
	ErrUpstreamUnavailable = errors.New("upstream place service unavailable")
)
