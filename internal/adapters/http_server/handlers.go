package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/skidvd/HomeAdvisor/internal/adapters/observability"
	"github.com/skidvd/HomeAdvisor/internal/app"
	"github.com/skidvd/HomeAdvisor/internal/domain"
	"github.com/skidvd/HomeAdvisor/internal/validation"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
	V *validation.Validator
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/businesses", func(r chi.Router) {
		r.Post("/", h.createBusiness)
		r.Post("/search", h.searchBusinesses)

		r.Get("/{businessID}", h.getBusiness)
		r.Put("/{businessID}", h.updateBusiness)
		r.Delete("/{businessID}", h.deleteBusiness)

		r.Route("/{businessID}/locations", func(r chi.Router) {
			r.Get("/", h.listLocations)
			r.Post("/", h.createLocation)
			r.Get("/{id}", h.getLocation)
			r.Put("/{id}", h.updateLocation)
			r.Delete("/{id}", h.deleteLocation)
		})
		r.Route("/{businessID}/hours", func(r chi.Router) {
			r.Get("/", h.listHours)
			r.Post("/", h.createHour)
			r.Get("/{id}", h.getHour)
			r.Put("/{id}", h.updateHour)
			r.Delete("/{id}", h.deleteHour)
		})
		r.Route("/{businessID}/services", func(r chi.Router) {
			r.Get("/", h.listServices)
			r.Post("/", h.createService)
			r.Get("/{id}", h.getService)
			r.Put("/{id}", h.updateService)
			r.Delete("/{id}", h.deleteService)
		})
		r.Route("/{businessID}/reviews", func(r chi.Router) {
			r.Get("/", h.listReviews)
			r.Post("/", h.createReview)
			r.Get("/{id}", h.getReview)
			r.Put("/{id}", h.updateReview)
			r.Delete("/{id}", h.deleteReview)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain sentinels onto statuses. Unexpected
// errors are storage failures: logged with the cause, returned generic.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Error().Err(err).Msg("storage failure")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// bind decodes the body into dst and runs struct validation; on
// failure it writes the 400 itself and reports false.
func (h *Handlers) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	if err := h.V.Validate(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// ---- businesses ----

func (h *Handlers) getBusiness(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Q.GetBusiness(r.Context(), chi.URLParam(r, "businessID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) searchBusinesses(w http.ResponseWriter, r *http.Request) {
	var req app.SearchRequest
	if !h.bind(w, r, &req) {
		return
	}
	views, err := h.Q.SearchBusinesses(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	observability.ObserveSearch(len(views))
	writeJSON(w, http.StatusOK, views)
}

func (h *Handlers) createBusiness(w http.ResponseWriter, r *http.Request) {
	var req app.CreateBusinessRequest
	if !h.bind(w, r, &req) {
		return
	}
	id, err := h.C.CreateBusiness(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) updateBusiness(w http.ResponseWriter, r *http.Request) {
	var req app.UpdateBusinessRequest
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.C.UpdateBusiness(r.Context(), chi.URLParam(r, "businessID"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteBusiness(r.Context(), chi.URLParam(r, "businessID")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
