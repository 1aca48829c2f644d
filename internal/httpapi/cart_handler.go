package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vastra/commerce-core/internal/cart"
	"github.com/vastra/commerce-core/internal/domain"
)

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartResponseDTO pairs the mutation status with the resulting cart, the
// shape the dialogue layer reads back to the user.
type CartResponseDTO struct {
	Status cart.Status        `json:"status"`
	Cart   domain.CartSummary `json:"cart"`
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	summary, status, err := commerceFrom(r.Context()).AddToCart(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.handleDomainError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, CartResponseDTO{Status: status, Cart: summary})
}

func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, commerceFrom(r.Context()).ViewCart())
}

func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	summary, status := commerceFrom(r.Context()).UpdateQuantity(productID, req.Quantity)
	h.respondJSON(w, http.StatusOK, CartResponseDTO{Status: status, Cart: summary})
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	summary, status := commerceFrom(r.Context()).RemoveFromCart(productID)
	h.respondJSON(w, http.StatusOK, CartResponseDTO{Status: status, Cart: summary})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	summary := commerceFrom(r.Context()).ClearCart()
	h.respondJSON(w, http.StatusOK, CartResponseDTO{Status: cart.StatusCleared, Cart: summary})
}
