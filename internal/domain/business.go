package domain

import "time"

type Business struct {
	ID           string
	Name         string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BusinessRecord is a business row plus its computed review average.
// AvgRating is nil when the business has no reviews.
type BusinessRecord struct {
	Business
	AvgRating *float64
}

// BusinessPatch carries a partial update of the scalar business
// attributes. Nil fields are left untouched.
type BusinessPatch struct {
	Name         *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
}

func (p BusinessPatch) Empty() bool {
	return p.Name == nil && p.AddressLine1 == nil && p.AddressLine2 == nil &&
		p.City == nil && p.State == nil && p.PostalCode == nil
}

// BusinessView is the fully hydrated read model served over HTTP.
// Child collections are nil when empty so the keys are omitted from
// the JSON body; callers must never see `[]` for an empty collection.
type BusinessView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	AddressLine1 *string    `json:"addressLine1,omitempty"`
	AddressLine2 *string    `json:"addressLine2,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	PostalCode   *string    `json:"postalCode,omitempty"`
	AvgRating    *float64   `json:"avgRating,omitempty"`
	Locations    []Location `json:"locations,omitempty"`
	Hours        []Hour     `json:"hours,omitempty"`
	Services     []Service  `json:"services,omitempty"`
	Reviews      []Review   `json:"reviews,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
