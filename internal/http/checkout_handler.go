package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Ravi2k3/E-commerce-assessment/internal/checkout"
)

type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

type CheckoutRequestDTO struct {
	DiscountCode string `json:"discount_code"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	// The body is optional: checkout without a code needs no payload.
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.svc.Checkout(r.Context(), userID, req.DiscountCode)
	if err != nil {
		respondCoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}
