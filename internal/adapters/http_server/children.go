package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skidvd/HomeAdvisor/internal/app"
)

// Per-child CRUD. Every handler resolves the owning business from the
// path; the services check its existence before touching child rows.

// ---- locations ----

func (h *Handlers) listLocations(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListLocations(r.Context(), chi.URLParam(r, "businessID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getLocation(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetLocation(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createLocation(w http.ResponseWriter, r *http.Request) {
	var req app.LocationPayload
	if !h.bind(w, r, &req) {
		return
	}
	id, err := h.C.CreateLocation(r.Context(), chi.URLParam(r, "businessID"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) updateLocation(w http.ResponseWriter, r *http.Request) {
	var req app.LocationPayload
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.C.UpdateLocation(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteLocation(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- hours ----

func (h *Handlers) listHours(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListHours(r.Context(), chi.URLParam(r, "businessID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getHour(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetHour(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createHour(w http.ResponseWriter, r *http.Request) {
	var req app.HourPayload
	if !h.bind(w, r, &req) {
		return
	}
	id, err := h.C.CreateHour(r.Context(), chi.URLParam(r, "businessID"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) updateHour(w http.ResponseWriter, r *http.Request) {
	var req app.HourPayload
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.C.UpdateHour(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) deleteHour(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteHour(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- services ----

func (h *Handlers) listServices(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListServices(r.Context(), chi.URLParam(r, "businessID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getService(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetService(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createService(w http.ResponseWriter, r *http.Request) {
	var req app.ServicePayload
	if !h.bind(w, r, &req) {
		return
	}
	id, err := h.C.CreateService(r.Context(), chi.URLParam(r, "businessID"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) updateService(w http.ResponseWriter, r *http.Request) {
	var req app.ServicePayload
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.C.UpdateService(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) deleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteService(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- reviews ----

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListReviews(r.Context(), chi.URLParam(r, "businessID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getReview(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.GetReview(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	var req app.ReviewPayload
	if !h.bind(w, r, &req) {
		return
	}
	id, err := h.C.CreateReview(r.Context(), chi.URLParam(r, "businessID"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) updateReview(w http.ResponseWriter, r *http.Request) {
	var req app.ReviewPayload
	if !h.bind(w, r, &req) {
		return
	}
	if err := h.C.UpdateReview(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id"), req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteReview(r.Context(), chi.URLParam(r, "businessID"), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
