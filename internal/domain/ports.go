package domain

import "context"

type BusinessRepository interface {
	// Business
	CreateBusiness(ctx context.Context, b Business, children ChildSet) error
	GetBusiness(ctx context.Context, id string) (BusinessRecord, error)
	SearchBusinesses(ctx context.Context, q SearchQuery) ([]BusinessRecord, error)
	UpdateBusiness(ctx context.Context, id string, p BusinessPatch) error
	DeleteBusiness(ctx context.Context, id string) error
	BusinessExists(ctx context.Context, id string) (bool, error)

	// Locations
	ListLocations(ctx context.Context, businessID string) ([]Location, error)
	GetLocation(ctx context.Context, businessID, id string) (Location, error)
	CreateLocation(ctx context.Context, l Location) error
	UpdateLocation(ctx context.Context, l Location) error
	DeleteLocation(ctx context.Context, businessID, id string) error

	// Hours
	ListHours(ctx context.Context, businessID string) ([]Hour, error)
	GetHour(ctx context.Context, businessID, id string) (Hour, error)
	CreateHour(ctx context.Context, h Hour) error
	UpdateHour(ctx context.Context, h Hour) error
	DeleteHour(ctx context.Context, businessID, id string) error

	// Services
	ListServices(ctx context.Context, businessID string) ([]Service, error)
	GetService(ctx context.Context, businessID, id string) (Service, error)
	CreateService(ctx context.Context, s Service) error
	UpdateService(ctx context.Context, s Service) error
	DeleteService(ctx context.Context, businessID, id string) error

	// Reviews
	ListReviews(ctx context.Context, businessID string) ([]Review, error)
	GetReview(ctx context.Context, businessID, id string) (Review, error)
	CreateReview(ctx context.Context, r Review) error
	UpdateReview(ctx context.Context, r Review) error
	DeleteReview(ctx context.Context, businessID, id string) error
}
