package adaptor

import (
	"net/http"

	"event-planner/internal/dto/request"
	"event-planner/internal/usecase"
	"event-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BudgetHandler struct {
	service usecase.BudgetService
	log     *zap.Logger
}

func NewBudgetHandler(service usecase.BudgetService, log *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		service: service,
		log:     log.With(zap.String("handler", "budget")),
	}
}

// Breakdown handles POST /api/budget/breakdown
func (h *BudgetHandler) Breakdown(w http.ResponseWriter, r *http.Request) {
	var req request.BreakdownRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	breakdown, err := h.service.Breakdown(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "build budget breakdown")
		return
	}

	utils.ResponseSuccess(w, "success", breakdown)
}

// Estimate handles POST /api/budget/estimate
func (h *BudgetHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req request.EstimateRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	estimate, err := h.service.Estimate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "estimate budget")
		return
	}

	utils.ResponseSuccess(w, "success", estimate)
}

// Compare handles POST /api/budget/compare
func (h *BudgetHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req request.CompareRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	comparison, err := h.service.Compare(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "compare budget")
		return
	}

	utils.ResponseSuccess(w, "success", comparison)
}

// QuoteVendor handles POST /api/vendors/{vendorID}/quote
func (h *BudgetHandler) QuoteVendor(w http.ResponseWriter, r *http.Request) {
	var req request.QuoteRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.QuoteVendor(r.Context(), chi.URLParam(r, "vendorID"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "quote vendor")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// SaveVendor handles PUT /api/vendors/{vendorID}
func (h *BudgetHandler) SaveVendor(w http.ResponseWriter, r *http.Request) {
	var req request.SaveVendorRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendor, err := h.service.SaveVendor(r.Context(), chi.URLParam(r, "vendorID"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save vendor")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}
