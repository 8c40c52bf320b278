package http

import (
	"net/http"

	"github.com/Ravi2k3/E-commerce-assessment/internal/discount"
)

type DiscountHandler struct {
	registry *discount.Registry
}

func NewDiscountHandler(registry *discount.Registry) *DiscountHandler {
	return &DiscountHandler{registry: registry}
}

type ValidateResponseDTO struct {
	Code  string `json:"code"`
	Valid bool   `json:"valid"`
}

// Validate is a read-only check; it never consumes the code.
func (h *DiscountHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "missing_code", "code query parameter is required")
		return
	}

	respondJSON(w, http.StatusOK, ValidateResponseDTO{
		Code:  code,
		Valid: h.registry.IsRedeemable(code),
	})
}
