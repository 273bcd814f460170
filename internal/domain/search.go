package domain

import (
	"fmt"
	"strings"
)

// SearchPageSize caps every search result set. There is no further
// pagination in this version.
const SearchPageSize = 25

type SortField string

const (
	SortByName   SortField = "name"
	SortByRating SortField = "rating"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SearchQuery is a sparse filter set; nil fields are not applied.
// Text filters match case-insensitive substrings of the business
// attributes, Service/Location match child names the same way, and
// DayOfWeek+Hour select businesses open at that hour on that day.
type SearchQuery struct {
	Name         *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	Postal       *string
	DayOfWeek    *int
	Hour         *int
	Service      *string
	Location     *string
	Rating       *float64
	SortBy       SortField
	SortDir      SortDirection
}

// ParseSort normalizes the user-supplied sort pair, applying the
// defaults (name, asc) for empty values.
func ParseSort(by, dir string) (SortField, SortDirection, error) {
	f := SortByName
	switch strings.ToLower(by) {
	case "", "name":
	case "rating":
		f = SortByRating
	default:
		return "", "", fmt.Errorf("%w: sortBy must be one of name, rating", ErrInvalidArgument)
	}

	d := SortAsc
	switch strings.ToLower(dir) {
	case "", "asc":
	case "desc":
		d = SortDesc
	default:
		return "", "", fmt.Errorf("%w: sortDirection must be one of asc, desc", ErrInvalidArgument)
	}
	return f, d, nil
}

// Validate enforces the cross-field rules before the query is compiled:
// dayOfWeek and hour come together or not at all, and both must be in
// range.
func (q SearchQuery) Validate() error {
	if (q.DayOfWeek == nil) != (q.Hour == nil) {
		return fmt.Errorf("%w: dayOfWeek and hour must be supplied together", ErrInvalidArgument)
	}
	if q.DayOfWeek != nil && (*q.DayOfWeek < 0 || *q.DayOfWeek > 6) {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidArgument)
	}
	if q.Hour != nil && (*q.Hour < 0 || *q.Hour > 23) {
		return fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidArgument)
	}
	return nil
}
