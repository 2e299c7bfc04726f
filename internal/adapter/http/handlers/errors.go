package handlers

import (
	"errors"
	"net/http"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/usecase"
	"laboratorio_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidIndex   = pkg.NewDomainErrorSimple("INVALID_INDEX", "Invalid index", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapBudgetError(err error) *pkg.AppError {
	var missing *budget.MissingFieldError
	if errors.As(err, &missing) {
		return pkg.NewDomainError("MISSING_FIELD", "Mandatory field missing: "+missing.Field, err, http.StatusUnprocessableEntity)
	}
	var notEligible *budget.EligibilityError
	if errors.As(err, &notEligible) {
		return pkg.NewDomainError("ORDER_NOT_ELIGIBLE", notEligible.Message, err, http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidHeaderKind), errors.Is(err, usecase.ErrInvalidExam),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrInvalidSlotQuery):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, budget.ErrInvalidIndex):
		return errInvalidIndex
	case errors.Is(err, budget.ErrInvalidPlan):
		return pkg.NewDomainErrorSimple("INVALID_PLAN", "Plan is required", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Editing session not found or expired", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrSessionBusy):
		return pkg.NewDomainErrorSimple("SESSION_BUSY", "Another change is being processed", http.StatusConflict)
	case errors.Is(err, budget.ErrStaleRepricing):
		return pkg.NewDomainErrorSimple("STALE_REPRICING", "Plan changed again while prices were loading", http.StatusConflict)
	case errors.Is(err, budget.ErrNotEditable):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_EDITABLE", "Budget is no longer editable", http.StatusConflict)
	case errors.Is(err, budget.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status change not allowed", http.StatusConflict)
	case errors.Is(err, budget.ErrPickerState):
		return pkg.NewDomainErrorSimple("PICKER_STATE", "Choose the exam before the date and time", http.StatusConflict)

	case errors.Is(err, budget.ErrDiscountNotEditable):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_EDITABLE", "User may not edit the discount", http.StatusForbidden)

	case errors.Is(err, budget.ErrAlreadyAdded):
		return pkg.NewDomainErrorSimple("EXAM_ALREADY_ADDED", "Exam already added", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrNotPriced):
		return pkg.NewDomainErrorSimple("EXAM_NOT_PRICED", "Exam has no price for this plan", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrNoSlot):
		return pkg.NewDomainErrorSimple("SLOT_REQUIRED", "Exam requires a collection slot", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Invalid discount", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrInvalidPayment):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", "Invalid payment", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrPaymentExceedsTotal):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_TOTAL", "Payments exceed the budget total", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrSumMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_SUM_MISMATCH", "Payments do not match the budget total", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrNoLineItems):
		return pkg.NewDomainErrorSimple("NO_EXAMS", "Budget has no exams", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrNoAvailableDate):
		return pkg.NewDomainErrorSimple("NO_AVAILABLE_DATE", "No available date for this exam", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrNoAvailableTime):
		return pkg.NewDomainErrorSimple("NO_AVAILABLE_TIME", "No available time for this date", http.StatusUnprocessableEntity)
	case errors.Is(err, budget.ErrUnknownSlot):
		return pkg.NewDomainErrorSimple("UNKNOWN_SLOT", "Slot is not among the offered times", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSchedulingUnsupported):
		return pkg.NewDomainErrorSimple("SCHEDULING_UNSUPPORTED", "This flow does not schedule exams", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSchedulingNotRequired):
		return pkg.NewDomainErrorSimple("SCHEDULING_NOT_REQUIRED", "Exam does not require scheduling", http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Online payments are not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentNotRecorded):
		return pkg.NewDomainError("PAYMENT_NOT_RECORDED", "Payment was charged but could not be recorded; contact support", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrLookupFailed):
		return pkg.NewDomainError("EXTERNAL_LOOKUP_FAILED", "External lookup failed", err, http.StatusBadGateway)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
