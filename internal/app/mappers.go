package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

// mapCreateBusiness turns a create payload into a business plus its
// child set, generating a fresh id for every row and stamping the
// owning business id on each child. Client-supplied ids, timestamps
// and computed fields never reach this point.
func mapCreateBusiness(req CreateBusinessRequest) (domain.Business, domain.ChildSet, error) {
	id := uuid.NewString()
	b := domain.Business{
		ID:           id,
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	}

	var cs domain.ChildSet
	for _, lp := range req.Locations {
		cs.Locations = append(cs.Locations, domain.Location{
			ID: uuid.NewString(), BusinessID: id, Name: lp.Name,
		})
	}
	for _, hp := range req.Hours {
		h, err := hourFromPayload(id, hp)
		if err != nil {
			return domain.Business{}, domain.ChildSet{}, err
		}
		cs.Hours = append(cs.Hours, h)
	}
	for _, sp := range req.Services {
		cs.Services = append(cs.Services, domain.Service{
			ID: uuid.NewString(), BusinessID: id, Name: sp.Name,
		})
	}
	for _, rp := range req.Reviews {
		cs.Reviews = append(cs.Reviews, domain.Review{
			ID: uuid.NewString(), BusinessID: id, Rating: *rp.Rating, Comment: rp.Comment,
		})
	}
	return b, cs, nil
}

func hourFromPayload(businessID string, hp HourPayload) (domain.Hour, error) {
	if *hp.Open >= *hp.Close {
		return domain.Hour{}, fmt.Errorf("%w: open must be earlier than close", domain.ErrInvalidArgument)
	}
	return domain.Hour{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		DayOfWeek:  *hp.DayOfWeek,
		Open:       *hp.Open,
		Close:      *hp.Close,
	}, nil
}

func searchQueryFromRequest(req SearchRequest) (domain.SearchQuery, error) {
	by, dir, err := domain.ParseSort(req.SortBy, req.SortDirection)
	if err != nil {
		return domain.SearchQuery{}, err
	}
	q := domain.SearchQuery{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Postal:       req.Postal,
		DayOfWeek:    req.DayOfWeek,
		Hour:         req.Hour,
		Service:      req.Service,
		Location:     req.Location,
		Rating:       req.Rating,
		SortBy:       by,
		SortDir:      dir,
	}
	return q, q.Validate()
}

func composeView(rec domain.BusinessRecord, cs domain.ChildSet) domain.BusinessView {
	return domain.BusinessView{
		ID:           rec.ID,
		Name:         rec.Name,
		AddressLine1: rec.AddressLine1,
		AddressLine2: rec.AddressLine2,
		City:         rec.City,
		State:        rec.State,
		PostalCode:   rec.PostalCode,
		AvgRating:    rec.AvgRating,
		Locations:    cs.Locations,
		Hours:        cs.Hours,
		Services:     cs.Services,
		Reviews:      cs.Reviews,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
