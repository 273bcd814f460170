package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	server "github.com/skidvd/HomeAdvisor/internal/adapters/http_server"
	"github.com/skidvd/HomeAdvisor/internal/app"
	"github.com/skidvd/HomeAdvisor/internal/domain"
	"github.com/skidvd/HomeAdvisor/internal/domain/domaintest"
	"github.com/skidvd/HomeAdvisor/internal/validation"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }

func newTestServer() (*domaintest.InMemoryRepo, http.Handler) {
	repo := domaintest.NewInMemoryRepo()
	srv := server.New(1000)
	srv.MountHandlers(&server.Handlers{
		Q: app.NewQueryService(repo),
		C: app.NewCommandService(repo),
		V: validation.New(),
	})
	return repo, srv.Mux()
}

func seedBusiness(repo *domaintest.InMemoryRepo) domain.BusinessRecord {
	rec := domain.BusinessRecord{
		Business:  domain.Business{ID: "b-1", Name: "Ace Plumbing", City: strp("Denver")},
		AvgRating: f64p(4.2),
	}
	repo.Seed(rec, domain.ChildSet{
		Locations: []domain.Location{{ID: "l-1", BusinessID: "b-1", Name: "Downtown"}},
		Hours:     []domain.Hour{{ID: "h-1", BusinessID: "b-1", DayOfWeek: 1, Open: 8, Close: 17}},
		Reviews:   []domain.Review{{ID: "r-1", BusinessID: "b-1", Rating: 4.2}},
	})
	return rec
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestGetBusiness_OK(t *testing.T) {
	repo, h := newTestServer()
	seedBusiness(repo)

	rr := doJSON(t, h, http.MethodGet, "/businesses/b-1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var view domain.BusinessView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, "Ace Plumbing", view.Name)
	require.NotNil(t, view.AvgRating)
	require.Len(t, view.Locations, 1)

	// no services exist, so the key must be absent rather than []
	require.NotContains(t, rr.Body.String(), `"services"`)
	require.Contains(t, rr.Body.String(), `"locations"`)
}

func TestGetBusiness_NotFound(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodGet, "/businesses/nope", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Contains(t, body["error"], "not found")
}

func TestCreateBusiness_RoundTrip(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses", `{
		"name": "Ace Plumbing",
		"city": "Denver",
		"locations": [{"name": "Downtown"}],
		"hours": [{"dayOfWeek": 1, "open": 8, "close": 17}],
		"reviews": [{"rating": 4.5, "comment": "great"}]
	}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created["id"])

	rr = doJSON(t, h, http.MethodGet, "/businesses/"+created["id"], "")
	require.Equal(t, http.StatusOK, rr.Code)

	var view domain.BusinessView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Len(t, view.Hours, 1)
	require.Len(t, view.Reviews, 1)
	require.Equal(t, created["id"], view.Hours[0].BusinessID)
}

func TestCreateBusiness_ValidationFailures(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses", `{"city": "Denver"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "missing required field 'name'")

	rr = doJSON(t, h, http.MethodPost, "/businesses", `{"name": "Ace", "hours": [{"dayOfWeek": 9, "open": 8, "close": 17}]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "dayOfWeek")

	rr = doJSON(t, h, http.MethodPost, "/businesses", `{"name": `)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "malformed JSON body")
}

func TestCreateBusiness_InvertedHourInterval(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses",
		`{"name": "Ace", "hours": [{"dayOfWeek": 1, "open": 18, "close": 9}]}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "open must be earlier than close")
}

func TestSearch_NoMatchesIs404(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses/search", `{"name": "nothing"}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSearch_InvalidSortIs400(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses/search", `{"sortBy": "created"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "sortBy")
}

func TestSearch_DayWithoutHourIs400(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodPost, "/businesses/search", `{"dayOfWeek": 2}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "together")
}

func TestSearch_ReturnsHydratedHits(t *testing.T) {
	repo, h := newTestServer()
	rec := seedBusiness(repo)
	repo.SearchRecs = []domain.BusinessRecord{rec}

	rr := doJSON(t, h, http.MethodPost, "/businesses/search", `{"city": "den"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var views []domain.BusinessView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &views))
	require.Len(t, views, 1)
	require.Len(t, views[0].Locations, 1)
}

func TestUpdateBusiness_EmptyBodyIs400(t *testing.T) {
	repo, h := newTestServer()
	seedBusiness(repo)

	rr := doJSON(t, h, http.MethodPut, "/businesses/b-1", `{}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "at least one field")
}

func TestDeleteBusiness_ThenGone(t *testing.T) {
	repo, h := newTestServer()
	seedBusiness(repo)

	rr := doJSON(t, h, http.MethodDelete, "/businesses/b-1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/businesses/b-1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHourEndpoints_CRUD(t *testing.T) {
	repo, h := newTestServer()
	seedBusiness(repo)

	// out-of-range hour rejected by field validation
	rr := doJSON(t, h, http.MethodPost, "/businesses/b-1/hours", `{"dayOfWeek": 2, "open": 8, "close": 30}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/businesses/b-1/hours", `{"dayOfWeek": 2, "open": 8, "close": 17}`)
	require.Equal(t, http.StatusOK, rr.Code)
	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	require.NotEmpty(t, created["id"])

	rr = doJSON(t, h, http.MethodGet, "/businesses/b-1/hours", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var hours []domain.Hour
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &hours))
	require.Len(t, hours, 2)

	rr = doJSON(t, h, http.MethodPut, "/businesses/b-1/hours/"+created["id"], `{"dayOfWeek": 2, "open": 9, "close": 18}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/businesses/b-1/hours/"+created["id"], "")
	require.Equal(t, http.StatusOK, rr.Code)
	var one domain.Hour
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &one))
	require.Equal(t, 18, one.Close)

	rr = doJSON(t, h, http.MethodDelete, "/businesses/b-1/hours/"+created["id"], "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, h, http.MethodGet, "/businesses/b-1/hours/"+created["id"], "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestChildEndpoints_MissingParentIs404(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodGet, "/businesses/nope/services", "")
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doJSON(t, h, http.MethodPost, "/businesses/nope/reviews", `{"rating": 4}`)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReviewEndpoints_RatingBounds(t *testing.T) {
	repo, h := newTestServer()
	seedBusiness(repo)

	rr := doJSON(t, h, http.MethodPost, "/businesses/b-1/reviews", `{"rating": 5.5}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "rating")

	rr = doJSON(t, h, http.MethodPost, "/businesses/b-1/reviews", `{"rating": 5, "comment": "spotless"}`)
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer()

	rr := doJSON(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, strings.Contains(rr.Body.String(), "ok"))
}
