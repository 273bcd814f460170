// Package domaintest provides an in-memory BusinessRepository for
// service and handler tests. It records the last compiled query and
// the last writes so tests can assert on what reaches storage.
package domaintest

import (
	"context"
	"fmt"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

type InMemoryRepo struct {
	Businesses map[string]domain.BusinessRecord
	Children   map[string]domain.ChildSet

	SearchRecs []domain.BusinessRecord
	SearchErr  error

	LastQuery       *domain.SearchQuery
	LastPatch       *domain.BusinessPatch
	CreatedBusiness *domain.Business
	CreatedChildren *domain.ChildSet
	LastHour        *domain.Hour
	LastReview      *domain.Review
}

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		Businesses: map[string]domain.BusinessRecord{},
		Children:   map[string]domain.ChildSet{},
	}
}

func (f *InMemoryRepo) Seed(rec domain.BusinessRecord, cs domain.ChildSet) {
	f.Businesses[rec.ID] = rec
	f.Children[rec.ID] = cs
}

func (f *InMemoryRepo) CreateBusiness(_ context.Context, b domain.Business, cs domain.ChildSet) error {
	f.CreatedBusiness, f.CreatedChildren = &b, &cs
	f.Businesses[b.ID] = domain.BusinessRecord{Business: b}
	f.Children[b.ID] = cs
	return nil
}

func (f *InMemoryRepo) GetBusiness(_ context.Context, id string) (domain.BusinessRecord, error) {
	rec, ok := f.Businesses[id]
	if !ok {
		return domain.BusinessRecord{}, fmt.Errorf("%w: business %s", domain.ErrNotFound, id)
	}
	return rec, nil
}

func (f *InMemoryRepo) SearchBusinesses(_ context.Context, q domain.SearchQuery) ([]domain.BusinessRecord, error) {
	f.LastQuery = &q
	return f.SearchRecs, f.SearchErr
}

func (f *InMemoryRepo) UpdateBusiness(_ context.Context, id string, p domain.BusinessPatch) error {
	if _, ok := f.Businesses[id]; !ok {
		return fmt.Errorf("%w: business %s", domain.ErrNotFound, id)
	}
	f.LastPatch = &p
	return nil
}

func (f *InMemoryRepo) DeleteBusiness(_ context.Context, id string) error {
	if _, ok := f.Businesses[id]; !ok {
		return fmt.Errorf("%w: business %s", domain.ErrNotFound, id)
	}
	delete(f.Businesses, id)
	delete(f.Children, id)
	return nil
}

func (f *InMemoryRepo) BusinessExists(_ context.Context, id string) (bool, error) {
	_, ok := f.Businesses[id]
	return ok, nil
}

func (f *InMemoryRepo) ListLocations(_ context.Context, businessID string) ([]domain.Location, error) {
	return f.Children[businessID].Locations, nil
}

func (f *InMemoryRepo) GetLocation(_ context.Context, businessID, id string) (domain.Location, error) {
	for _, l := range f.Children[businessID].Locations {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Location{}, fmt.Errorf("%w: location %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) CreateLocation(_ context.Context, l domain.Location) error {
	cs := f.Children[l.BusinessID]
	cs.Locations = append(cs.Locations, l)
	f.Children[l.BusinessID] = cs
	return nil
}

func (f *InMemoryRepo) UpdateLocation(_ context.Context, l domain.Location) error {
	cs := f.Children[l.BusinessID]
	for i := range cs.Locations {
		if cs.Locations[i].ID == l.ID {
			cs.Locations[i] = l
			f.Children[l.BusinessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: location %s", domain.ErrNotFound, l.ID)
}

func (f *InMemoryRepo) DeleteLocation(_ context.Context, businessID, id string) error {
	cs := f.Children[businessID]
	for i := range cs.Locations {
		if cs.Locations[i].ID == id {
			cs.Locations = append(cs.Locations[:i], cs.Locations[i+1:]...)
			f.Children[businessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: location %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) ListHours(_ context.Context, businessID string) ([]domain.Hour, error) {
	return f.Children[businessID].Hours, nil
}

func (f *InMemoryRepo) GetHour(_ context.Context, businessID, id string) (domain.Hour, error) {
	for _, h := range f.Children[businessID].Hours {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hour{}, fmt.Errorf("%w: hour %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) CreateHour(_ context.Context, h domain.Hour) error {
	f.LastHour = &h
	cs := f.Children[h.BusinessID]
	cs.Hours = append(cs.Hours, h)
	f.Children[h.BusinessID] = cs
	return nil
}

func (f *InMemoryRepo) UpdateHour(_ context.Context, h domain.Hour) error {
	f.LastHour = &h
	cs := f.Children[h.BusinessID]
	for i := range cs.Hours {
		if cs.Hours[i].ID == h.ID {
			cs.Hours[i] = h
			f.Children[h.BusinessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: hour %s", domain.ErrNotFound, h.ID)
}

func (f *InMemoryRepo) DeleteHour(_ context.Context, businessID, id string) error {
	cs := f.Children[businessID]
	for i := range cs.Hours {
		if cs.Hours[i].ID == id {
			cs.Hours = append(cs.Hours[:i], cs.Hours[i+1:]...)
			f.Children[businessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: hour %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) ListServices(_ context.Context, businessID string) ([]domain.Service, error) {
	return f.Children[businessID].Services, nil
}

func (f *InMemoryRepo) GetService(_ context.Context, businessID, id string) (domain.Service, error) {
	for _, s := range f.Children[businessID].Services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, fmt.Errorf("%w: service %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) CreateService(_ context.Context, s domain.Service) error {
	cs := f.Children[s.BusinessID]
	cs.Services = append(cs.Services, s)
	f.Children[s.BusinessID] = cs
	return nil
}

func (f *InMemoryRepo) UpdateService(_ context.Context, s domain.Service) error {
	cs := f.Children[s.BusinessID]
	for i := range cs.Services {
		if cs.Services[i].ID == s.ID {
			cs.Services[i] = s
			f.Children[s.BusinessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: service %s", domain.ErrNotFound, s.ID)
}

func (f *InMemoryRepo) DeleteService(_ context.Context, businessID, id string) error {
	cs := f.Children[businessID]
	for i := range cs.Services {
		if cs.Services[i].ID == id {
			cs.Services = append(cs.Services[:i], cs.Services[i+1:]...)
			f.Children[businessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: service %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) ListReviews(_ context.Context, businessID string) ([]domain.Review, error) {
	return f.Children[businessID].Reviews, nil
}

func (f *InMemoryRepo) GetReview(_ context.Context, businessID, id string) (domain.Review, error) {
	for _, r := range f.Children[businessID].Reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Review{}, fmt.Errorf("%w: review %s", domain.ErrNotFound, id)
}

func (f *InMemoryRepo) CreateReview(_ context.Context, r domain.Review) error {
	f.LastReview = &r
	cs := f.Children[r.BusinessID]
	cs.Reviews = append(cs.Reviews, r)
	f.Children[r.BusinessID] = cs
	return nil
}

func (f *InMemoryRepo) UpdateReview(_ context.Context, r domain.Review) error {
	f.LastReview = &r
	cs := f.Children[r.BusinessID]
	for i := range cs.Reviews {
		if cs.Reviews[i].ID == r.ID {
			cs.Reviews[i] = r
			f.Children[r.BusinessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: review %s", domain.ErrNotFound, r.ID)
}

func (f *InMemoryRepo) DeleteReview(_ context.Context, businessID, id string) error {
	cs := f.Children[businessID]
	for i := range cs.Reviews {
		if cs.Reviews[i].ID == id {
			cs.Reviews = append(cs.Reviews[:i], cs.Reviews[i+1:]...)
			f.Children[businessID] = cs
			return nil
		}
	}
	return fmt.Errorf("%w: review %s", domain.ErrNotFound, id)
}

var _ domain.BusinessRepository = (*InMemoryRepo)(nil)
