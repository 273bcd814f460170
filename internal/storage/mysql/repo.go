package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/skidvd/HomeAdvisor/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func ptrStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func ptrF64(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// -----------------------------------------------------------------------------
// BUSINESSES
// -----------------------------------------------------------------------------

// CreateBusiness inserts the business and all nested children in one
// transaction; any failed insert rolls back the whole set.
func (r *Repo) CreateBusiness(ctx context.Context, b domain.Business, children domain.ChildSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // no-op once committed

	if _, err := tx.ExecContext(ctx, insertBusinessSQL,
		b.ID,
		b.Name,
		valStr(b.AddressLine1),
		valStr(b.AddressLine2),
		valStr(b.City),
		valStr(b.State),
		valStr(b.PostalCode),
	); err != nil {
		return err
	}

	for _, l := range children.Locations {
		if _, err := tx.ExecContext(ctx, insertLocationSQL, l.ID, l.BusinessID, l.Name); err != nil {
			return err
		}
	}
	for _, h := range children.Hours {
		if _, err := tx.ExecContext(ctx, insertHourSQL, h.ID, h.BusinessID, h.DayOfWeek, h.Open, h.Close); err != nil {
			return err
		}
	}
	for _, s := range children.Services {
		if _, err := tx.ExecContext(ctx, insertServiceSQL, s.ID, s.BusinessID, s.Name); err != nil {
			return err
		}
	}
	for _, rv := range children.Reviews {
		if _, err := tx.ExecContext(ctx, insertReviewSQL, rv.ID, rv.BusinessID, rv.Rating, valStr(rv.Comment)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanBusinessRecord(s rowScanner) (domain.BusinessRecord, error) {
	var rec domain.BusinessRecord
	var a1, a2, city, state, postal sql.NullString
	var avg sql.NullFloat64

	if err := s.Scan(
		&rec.ID,
		&rec.Name,
		&a1, &a2, &city, &state, &postal,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&avg,
	); err != nil {
		return domain.BusinessRecord{}, err
	}
	rec.AddressLine1 = ptrStr(a1)
	rec.AddressLine2 = ptrStr(a2)
	rec.City = ptrStr(city)
	rec.State = ptrStr(state)
	rec.PostalCode = ptrStr(postal)
	rec.AvgRating = ptrF64(avg)
	return rec, nil
}

func (r *Repo) GetBusiness(ctx context.Context, id string) (domain.BusinessRecord, error) {
	rec, err := scanBusinessRecord(r.db.QueryRowContext(ctx, getBusinessSQL, id))
	if err == sql.ErrNoRows {
		return domain.BusinessRecord{}, domain.ErrNotFound
	}
	return rec, err
}

func (r *Repo) SearchBusinesses(ctx context.Context, q domain.SearchQuery) ([]domain.BusinessRecord, error) {
	stmt, args := buildSearchSQL(q)
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BusinessRecord
	for rows.Next() {
		rec, err := scanBusinessRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) UpdateBusiness(ctx context.Context, id string, p domain.BusinessPatch) error {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)
	set := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *v)
		}
	}
	set("name", p.Name)
	set("address_line1", p.AddressLine1)
	set("address_line2", p.AddressLine2)
	set("city", p.City)
	set("state", p.State)
	set("postal_code", p.PostalCode)
	if len(sets) == 0 {
		return domain.ErrInvalidArgument
	}

	// Verify the row exists up front: an UPDATE matching zero rows and
	// one writing identical values both report zero affected rows.
	if ok, err := r.BusinessExists(ctx, id); err != nil {
		return err
	} else if !ok {
		return domain.ErrNotFound
	}

	args = append(args, id)
	_, err := r.db.ExecContext(ctx,
		"UPDATE businesses SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	return err
}

func (r *Repo) DeleteBusiness(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteBusinessSQL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) BusinessExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, businessExistsSQL, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// checkUpdated disambiguates a zero-affected UPDATE: identical values
// are fine, a missing row is ErrNotFound.
func checkUpdated(res sql.Result, lookup func() error) error {
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lookup()
	}
	return nil
}

// -----------------------------------------------------------------------------
// LOCATIONS
// -----------------------------------------------------------------------------

func (r *Repo) ListLocations(ctx context.Context, businessID string) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx, listLocationsSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.BusinessID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetLocation(ctx context.Context, businessID, id string) (domain.Location, error) {
	var l domain.Location
	err := r.db.QueryRowContext(ctx, getLocationSQL, businessID, id).Scan(&l.ID, &l.BusinessID, &l.Name)
	if err == sql.ErrNoRows {
		return domain.Location{}, domain.ErrNotFound
	}
	return l, err
}

func (r *Repo) CreateLocation(ctx context.Context, l domain.Location) error {
	_, err := r.db.ExecContext(ctx, insertLocationSQL, l.ID, l.BusinessID, l.Name)
	return err
}

func (r *Repo) UpdateLocation(ctx context.Context, l domain.Location) error {
	res, err := r.db.ExecContext(ctx, updateLocationSQL, l.Name, l.BusinessID, l.ID)
	if err != nil {
		return err
	}
	return checkUpdated(res, func() error {
		_, err := r.GetLocation(ctx, l.BusinessID, l.ID)
		return err
	})
}

func (r *Repo) DeleteLocation(ctx context.Context, businessID, id string) error {
	return r.deleteChild(ctx, deleteLocationSQL, businessID, id)
}

// -----------------------------------------------------------------------------
// HOURS
// -----------------------------------------------------------------------------

func (r *Repo) ListHours(ctx context.Context, businessID string) ([]domain.Hour, error) {
	rows, err := r.db.QueryContext(ctx, listHoursSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hour
	for rows.Next() {
		var h domain.Hour
		if err := rows.Scan(&h.ID, &h.BusinessID, &h.DayOfWeek, &h.Open, &h.Close); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHour(ctx context.Context, businessID, id string) (domain.Hour, error) {
	var h domain.Hour
	err := r.db.QueryRowContext(ctx, getHourSQL, businessID, id).
		Scan(&h.ID, &h.BusinessID, &h.DayOfWeek, &h.Open, &h.Close)
	if err == sql.ErrNoRows {
		return domain.Hour{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) CreateHour(ctx context.Context, h domain.Hour) error {
	_, err := r.db.ExecContext(ctx, insertHourSQL, h.ID, h.BusinessID, h.DayOfWeek, h.Open, h.Close)
	return err
}

func (r *Repo) UpdateHour(ctx context.Context, h domain.Hour) error {
	res, err := r.db.ExecContext(ctx, updateHourSQL, h.DayOfWeek, h.Open, h.Close, h.BusinessID, h.ID)
	if err != nil {
		return err
	}
	return checkUpdated(res, func() error {
		_, err := r.GetHour(ctx, h.BusinessID, h.ID)
		return err
	})
}

func (r *Repo) DeleteHour(ctx context.Context, businessID, id string) error {
	return r.deleteChild(ctx, deleteHourSQL, businessID, id)
}

// -----------------------------------------------------------------------------
// SERVICES
// -----------------------------------------------------------------------------

func (r *Repo) ListServices(ctx context.Context, businessID string) ([]domain.Service, error) {
	rows, err := r.db.QueryContext(ctx, listServicesSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) GetService(ctx context.Context, businessID, id string) (domain.Service, error) {
	var s domain.Service
	err := r.db.QueryRowContext(ctx, getServiceSQL, businessID, id).Scan(&s.ID, &s.BusinessID, &s.Name)
	if err == sql.ErrNoRows {
		return domain.Service{}, domain.ErrNotFound
	}
	return s, err
}

func (r *Repo) CreateService(ctx context.Context, s domain.Service) error {
	_, err := r.db.ExecContext(ctx, insertServiceSQL, s.ID, s.BusinessID, s.Name)
	return err
}

func (r *Repo) UpdateService(ctx context.Context, s domain.Service) error {
	res, err := r.db.ExecContext(ctx, updateServiceSQL, s.Name, s.BusinessID, s.ID)
	if err != nil {
		return err
	}
	return checkUpdated(res, func() error {
		_, err := r.GetService(ctx, s.BusinessID, s.ID)
		return err
	})
}

func (r *Repo) DeleteService(ctx context.Context, businessID, id string) error {
	return r.deleteChild(ctx, deleteServiceSQL, businessID, id)
}

// -----------------------------------------------------------------------------
// REVIEWS
// -----------------------------------------------------------------------------

func (r *Repo) ListReviews(ctx context.Context, businessID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func scanReview(s rowScanner) (domain.Review, error) {
	var rv domain.Review
	var comment sql.NullString
	if err := s.Scan(&rv.ID, &rv.BusinessID, &rv.Rating, &comment, &rv.CreatedAt); err != nil {
		return domain.Review{}, err
	}
	rv.Comment = ptrStr(comment)
	return rv, nil
}

func (r *Repo) GetReview(ctx context.Context, businessID, id string) (domain.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx, getReviewSQL, businessID, id))
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL, rv.ID, rv.BusinessID, rv.Rating, valStr(rv.Comment))
	return err
}

func (r *Repo) UpdateReview(ctx context.Context, rv domain.Review) error {
	res, err := r.db.ExecContext(ctx, updateReviewSQL, rv.Rating, valStr(rv.Comment), rv.BusinessID, rv.ID)
	if err != nil {
		return err
	}
	return checkUpdated(res, func() error {
		_, err := r.GetReview(ctx, rv.BusinessID, rv.ID)
		return err
	})
}

func (r *Repo) DeleteReview(ctx context.Context, businessID, id string) error {
	return r.deleteChild(ctx, deleteReviewSQL, businessID, id)
}

func (r *Repo) deleteChild(ctx context.Context, stmt, businessID, id string) error {
	res, err := r.db.ExecContext(ctx, stmt, businessID, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
