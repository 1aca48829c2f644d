package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vastra/commerce-core/internal/catalog"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var f catalog.Filter
	q := r.URL.Query()
	f.Category = q.Get("category")
	f.Color = q.Get("color")

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid_filter", "min_price must be an integer")
			return
		}
		f.MinPrice = &v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid_filter", "max_price must be an integer")
			return
		}
		f.MaxPrice = &v
	}

	products, err := commerceFrom(r.Context()).ListProducts(r.Context(), f)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	p, err := commerceFrom(r.Context()).GetProduct(r.Context(), id)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}
