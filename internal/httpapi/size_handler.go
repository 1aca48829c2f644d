package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) RecommendSize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	category := q.Get("category")
	if category == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "category is required")
		return
	}

	heightCM, err := strconv.Atoi(q.Get("height_cm"))
	if err != nil || heightCM <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_height", "height_cm must be a positive integer")
		return
	}

	rec, err := commerceFrom(r.Context()).RecommendSize(category, heightCM)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) SizeChart(w http.ResponseWriter, r *http.Request) {
	chart, err := commerceFrom(r.Context()).SizeChart(chi.URLParam(r, "category"))
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, chart)
}
