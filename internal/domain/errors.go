package domain

import "errors"

var (
	// ErrNotFound covers a missing business or child, and a search that
	// matched nothing. Maps to 404 at the HTTP boundary.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument covers malformed or out-of-range input. Maps
	// to 400. Raised before any storage call is made.
	ErrInvalidArgument = errors.New("invalid argument")
)
