package domain

import "time"

type Location struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
}

// Hour is a single open/close interval for one day of the week.
// DayOfWeek is 0-6 with 0 = Sunday; Open/Close are whole hours 0-23
// and a business has at most one row per (business, day).
type Hour struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	DayOfWeek  int    `json:"dayOfWeek"`
	Open       int    `json:"open"`
	Close      int    `json:"close"`
}

type Service struct {
	ID         string `json:"id"`
	BusinessID string `json:"businessId"`
	Name       string `json:"name"`
}

type Review struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Rating     float64   `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ChildSet groups the four child collections of one business, both for
// nested creation and for hydration.
type ChildSet struct {
	Locations []Location
	Hours     []Hour
	Services  []Service
	Reviews   []Review
}
