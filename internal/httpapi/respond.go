package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/vastra/commerce-core/internal/cart"
	"github.com/vastra/commerce-core/internal/catalog"
	"github.com/vastra/commerce-core/internal/orders"
	"github.com/vastra/commerce-core/internal/service"
	"github.com/vastra/commerce-core/internal/sizing"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleDomainError maps the core's sentinel errors onto HTTP statuses.
// Everything in the taxonomy is recoverable; only unrecognized errors
// surface as 500.
func (h *Handler) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		h.respondError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, sizing.ErrUnsupportedCategory):
		h.respondError(w, http.StatusNotFound, "unsupported_category", err.Error())
	case errors.Is(err, orders.ErrNoOrders):
		h.respondError(w, http.StatusNotFound, "no_orders", err.Error())
	case errors.Is(err, service.ErrEmptyCart):
		h.respondError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, cart.ErrInvalidQuantity):
		h.respondError(w, http.StatusBadRequest, "invalid_quantity", err.Error())
	case errors.Is(err, catalog.ErrInvalidFilter):
		h.respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
	default:
		h.log.Error("unhandled domain error", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
