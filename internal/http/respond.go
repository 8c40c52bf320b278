package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Ravi2k3/E-commerce-assessment/internal/cart"
	"github.com/Ravi2k3/E-commerce-assessment/internal/catalog"
	"github.com/Ravi2k3/E-commerce-assessment/internal/checkout"
	"github.com/Ravi2k3/E-commerce-assessment/internal/discount"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondCoreError maps the core's typed validation failures onto HTTP
// statuses. Everything the core rejects is caller input, hence 400;
// anything unrecognized is a server fault.
func respondCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusBadRequest, "product_not_found", err.Error())
	case errors.Is(err, cart.ErrItemNotInCart):
		respondError(w, http.StatusBadRequest, "item_not_in_cart", err.Error())
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, discount.ErrInvalidDiscountCode):
		respondError(w, http.StatusBadRequest, "invalid_discount_code", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
