package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

type QueryService struct {
	repo domain.BusinessRepository
}

func NewQueryService(r domain.BusinessRepository) *QueryService {
	return &QueryService{repo: r}
}

func (s *QueryService) GetBusiness(ctx context.Context, id string) (domain.BusinessView, error) {
	rec, err := s.repo.GetBusiness(ctx, id)
	if err != nil {
		return domain.BusinessView{}, err
	}
	cs, err := s.fetchChildren(ctx, id)
	if err != nil {
		return domain.BusinessView{}, err
	}
	return composeView(rec, cs), nil
}

// SearchBusinesses validates and compiles the request, then hydrates
// every hit. Zero matches is reported as not-found rather than an empty
// page; that conflation is part of the wire contract.
func (s *QueryService) SearchBusinesses(ctx context.Context, req SearchRequest) ([]domain.BusinessView, error) {
	q, err := searchQueryFromRequest(req)
	if err != nil {
		return nil, err
	}
	recs, err := s.repo.SearchBusinesses(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: no businesses matched", domain.ErrNotFound)
	}

	views := make([]domain.BusinessView, len(recs))
	for i, rec := range recs {
		cs, err := s.fetchChildren(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		views[i] = composeView(rec, cs)
	}
	return views, nil
}

// fetchChildren issues the four collection queries concurrently. Each
// query sees its own point in time; there is no snapshot guarantee
// across collections under concurrent writes.
func (s *QueryService) fetchChildren(ctx context.Context, businessID string) (domain.ChildSet, error) {
	var cs domain.ChildSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cs.Locations, err = s.repo.ListLocations(gctx, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		cs.Hours, err = s.repo.ListHours(gctx, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		cs.Services, err = s.repo.ListServices(gctx, businessID)
		return err
	})
	g.Go(func() error {
		var err error
		cs.Reviews, err = s.repo.ListReviews(gctx, businessID)
		return err
	})
	return cs, g.Wait()
}

// ---- child reads (parent existence checked first) ----

func (s *QueryService) ListLocations(ctx context.Context, businessID string) ([]domain.Location, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return nil, err
	}
	return s.repo.ListLocations(ctx, businessID)
}

func (s *QueryService) GetLocation(ctx context.Context, businessID, id string) (domain.Location, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return domain.Location{}, err
	}
	return s.repo.GetLocation(ctx, businessID, id)
}

func (s *QueryService) ListHours(ctx context.Context, businessID string) ([]domain.Hour, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return nil, err
	}
	return s.repo.ListHours(ctx, businessID)
}

func (s *QueryService) GetHour(ctx context.Context, businessID, id string) (domain.Hour, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return domain.Hour{}, err
	}
	return s.repo.GetHour(ctx, businessID, id)
}

func (s *QueryService) ListServices(ctx context.Context, businessID string) ([]domain.Service, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return nil, err
	}
	return s.repo.ListServices(ctx, businessID)
}

func (s *QueryService) GetService(ctx context.Context, businessID, id string) (domain.Service, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return domain.Service{}, err
	}
	return s.repo.GetService(ctx, businessID, id)
}

func (s *QueryService) ListReviews(ctx context.Context, businessID string) ([]domain.Review, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, businessID)
}

func (s *QueryService) GetReview(ctx context.Context, businessID, id string) (domain.Review, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return domain.Review{}, err
	}
	return s.repo.GetReview(ctx, businessID, id)
}

// requireBusiness short-circuits child operations when the parent is
// gone, so a child op can never touch rows for a missing business.
func requireBusiness(ctx context.Context, repo domain.BusinessRepository, businessID string) error {
	ok, err := repo.BusinessExists(ctx, businessID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: business %s", domain.ErrNotFound, businessID)
	}
	return nil
}
