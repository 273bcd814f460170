package app

// Request payloads decoded at the HTTP boundary. Field rules are
// expressed as validator tags and enforced before any service call;
// cross-field rules (hour intervals, sort pairing) live in the mappers.

type CreateBusinessRequest struct {
	Name         string  `json:"name" validate:"required"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`

	Locations []LocationPayload `json:"locations" validate:"omitempty,dive"`
	Hours     []HourPayload     `json:"hours" validate:"omitempty,dive"`
	Services  []ServicePayload  `json:"services" validate:"omitempty,dive"`
	Reviews   []ReviewPayload   `json:"reviews" validate:"omitempty,dive"`
}

type UpdateBusinessRequest struct {
	Name         *string `json:"name"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
}

// Child payloads carry no id on purpose: ids are always generated
// server side, and any id a client sends is dropped during decoding.

type LocationPayload struct {
	Name string `json:"name" validate:"required"`
}

type HourPayload struct {
	DayOfWeek *int `json:"dayOfWeek" validate:"required,min=0,max=6"`
	Open      *int `json:"open" validate:"required,min=0,max=23"`
	Close     *int `json:"close" validate:"required,min=0,max=23"`
}

type ServicePayload struct {
	Name string `json:"name" validate:"required"`
}

type ReviewPayload struct {
	Rating  *float64 `json:"rating" validate:"required,min=0,max=5"`
	Comment *string  `json:"comment"`
}

type SearchRequest struct {
	Name          *string  `json:"name"`
	AddressLine1  *string  `json:"addressLine1"`
	AddressLine2  *string  `json:"addressLine2"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	Postal        *string  `json:"postal"`
	DayOfWeek     *int     `json:"dayOfWeek"`
	Hour          *int     `json:"hour"`
	Service       *string  `json:"service"`
	Location      *string  `json:"location"`
	Rating        *float64 `json:"rating"`
	SortBy        string   `json:"sortBy"`
	SortDirection string   `json:"sortDirection"`
}
