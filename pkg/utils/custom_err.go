package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingSession  = errors.New("missing session identifier")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrUpstreamFailure = errors.New("upstream provider failure")
)
