package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/vastra/commerce-core/internal/service"
)

type CreateOrderRequestDTO struct {
	LineItems []service.LineItem `json:"line_items"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := commerceFrom(r.Context()).Checkout(r.Context())
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if len(req.LineItems) == 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "line_items must not be empty")
		return
	}

	order, err := commerceFrom(r.Context()).CreateOrder(r.Context(), req.LineItems)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, commerceFrom(r.Context()).Orders())
}

func (h *Handler) LastOrder(w http.ResponseWriter, r *http.Request) {
	order, err := commerceFrom(r.Context()).LastOrder()
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, order)
}
