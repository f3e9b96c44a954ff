package adaptor

import (
	"errors"
	"net/http"

	"event-planner/internal/engine/budget"
	"event-planner/internal/engine/lifecycle"
	"event-planner/internal/engine/pricing"
	"event-planner/internal/usecase"
	"event-planner/pkg/lock"
	"event-planner/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking *BookingHandler
	Budget  *BudgetHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking: NewBookingHandler(service.Booking, log),
		Budget:  NewBudgetHandler(service.Budget, log),
	}
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr *lifecycle.ValidationError
		conflictErr   *usecase.ConflictError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseError(w, http.StatusBadRequest, utils.CodeValidationFailed, "Validation failed", validationErr.Fields)

	case errors.Is(err, budget.ErrUnknownStrategy):
		log.Warn(operation+" failed - unknown strategy", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrVendorNotFound),
		errors.Is(err, pricing.ErrPackageNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &conflictErr):
		log.Info(operation+" failed - venue unavailable", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, utils.CodeVenueUnavailable, "Venue is not available for the requested time", map[string]any{
			"conflicting_bookings": conflictErr.BookingIDs,
		})

	case errors.Is(err, lock.ErrLockTimeout):
		log.Warn(operation+" failed - venue busy", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, utils.CodeVenueBusy, "Venue is being updated, retry shortly", nil)

	case errors.Is(err, lifecycle.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseError(w, http.StatusUnprocessableEntity, utils.CodeInvalidTransition, err.Error(), nil)

	case errors.Is(err, lifecycle.ErrBookingClosed):
		log.Warn(operation+" failed - booking closed", zap.Error(err))
		utils.ResponseError(w, http.StatusUnprocessableEntity, utils.CodeBookingClosed, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
