package http

import (
	"net/http"

	"github.com/Ravi2k3/E-commerce-assessment/internal/checkout"
	"github.com/Ravi2k3/E-commerce-assessment/internal/discount"
)

type AdminHandler struct {
	svc       *checkout.Service
	generator *discount.Generator
}

func NewAdminHandler(svc *checkout.Service, generator *discount.Generator) *AdminHandler {
	return &AdminHandler{svc: svc, generator: generator}
}

type GenerateDiscountResponseDTO struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// GenerateDiscount polls the milestone condition against the current
// order count. Not meeting the condition is a normal outcome, not an
// error.
func (h *AdminHandler) GenerateDiscount(w http.ResponseWriter, r *http.Request) {
	code, ok := h.generator.Generate(h.svc.OrderCount())
	if !ok {
		respondJSON(w, http.StatusOK, GenerateDiscountResponseDTO{
			Message: "No discount code generated. Condition not met.",
		})
		return
	}
	respondJSON(w, http.StatusOK, GenerateDiscountResponseDTO{
		Message: "Discount code generated",
		Code:    code,
	})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Stats())
}
