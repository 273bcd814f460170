package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

type CommandService struct {
	repo domain.BusinessRepository
}

func NewCommandService(r domain.BusinessRepository) *CommandService {
	return &CommandService{repo: r}
}

// CreateBusiness inserts the business and any nested children in one
// transaction; a failure on any nested row leaves nothing behind.
func (s *CommandService) CreateBusiness(ctx context.Context, req CreateBusinessRequest) (string, error) {
	b, children, err := mapCreateBusiness(req)
	if err != nil {
		return "", err
	}
	if err := s.repo.CreateBusiness(ctx, b, children); err != nil {
		return "", err
	}
	return b.ID, nil
}

// UpdateBusiness applies a partial update of the scalar attributes.
// Children are never touched here; they have their own endpoints.
func (s *CommandService) UpdateBusiness(ctx context.Context, id string, req UpdateBusinessRequest) error {
	p := domain.BusinessPatch{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	}
	if p.Empty() {
		return fmt.Errorf("%w: at least one field must be supplied", domain.ErrInvalidArgument)
	}
	return s.repo.UpdateBusiness(ctx, id, p)
}

func (s *CommandService) DeleteBusiness(ctx context.Context, id string) error {
	return s.repo.DeleteBusiness(ctx, id)
}

// ---- locations ----

func (s *CommandService) CreateLocation(ctx context.Context, businessID string, req LocationPayload) (string, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return "", err
	}
	l := domain.Location{ID: uuid.NewString(), BusinessID: businessID, Name: req.Name}
	if err := s.repo.CreateLocation(ctx, l); err != nil {
		return "", err
	}
	return l.ID, nil
}

func (s *CommandService) UpdateLocation(ctx context.Context, businessID, id string, req LocationPayload) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.UpdateLocation(ctx, domain.Location{ID: id, BusinessID: businessID, Name: req.Name})
}

func (s *CommandService) DeleteLocation(ctx context.Context, businessID, id string) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.DeleteLocation(ctx, businessID, id)
}

// ---- hours ----

func (s *CommandService) CreateHour(ctx context.Context, businessID string, req HourPayload) (string, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return "", err
	}
	h, err := hourFromPayload(businessID, req)
	if err != nil {
		return "", err
	}
	if err := s.repo.CreateHour(ctx, h); err != nil {
		return "", err
	}
	return h.ID, nil
}

func (s *CommandService) UpdateHour(ctx context.Context, businessID, id string, req HourPayload) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	h, err := hourFromPayload(businessID, req)
	if err != nil {
		return err
	}
	h.ID = id
	return s.repo.UpdateHour(ctx, h)
}

func (s *CommandService) DeleteHour(ctx context.Context, businessID, id string) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.DeleteHour(ctx, businessID, id)
}

// ---- services ----

func (s *CommandService) CreateService(ctx context.Context, businessID string, req ServicePayload) (string, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return "", err
	}
	sv := domain.Service{ID: uuid.NewString(), BusinessID: businessID, Name: req.Name}
	if err := s.repo.CreateService(ctx, sv); err != nil {
		return "", err
	}
	return sv.ID, nil
}

func (s *CommandService) UpdateService(ctx context.Context, businessID, id string, req ServicePayload) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.UpdateService(ctx, domain.Service{ID: id, BusinessID: businessID, Name: req.Name})
}

func (s *CommandService) DeleteService(ctx context.Context, businessID, id string) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.DeleteService(ctx, businessID, id)
}

// ---- reviews ----

func (s *CommandService) CreateReview(ctx context.Context, businessID string, req ReviewPayload) (string, error) {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return "", err
	}
	rv := domain.Review{ID: uuid.NewString(), BusinessID: businessID, Rating: *req.Rating, Comment: req.Comment}
	if err := s.repo.CreateReview(ctx, rv); err != nil {
		return "", err
	}
	return rv.ID, nil
}

func (s *CommandService) UpdateReview(ctx context.Context, businessID, id string, req ReviewPayload) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.UpdateReview(ctx, domain.Review{ID: id, BusinessID: businessID, Rating: *req.Rating, Comment: req.Comment})
}

func (s *CommandService) DeleteReview(ctx context.Context, businessID, id string) error {
	if err := requireBusiness(ctx, s.repo, businessID); err != nil {
		return err
	}
	return s.repo.DeleteReview(ctx, businessID, id)
}
