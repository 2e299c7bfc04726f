package budget

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyAdded        = errors.New("exam already added")
	ErrNotPriced           = errors.New("exam not priced for plan")
	ErrNoSlot              = errors.New("exam requires a chosen slot")
	ErrInvalidIndex        = errors.New("invalid index")
	ErrNotEditable         = errors.New("budget is not editable")
	ErrDiscountNotEditable = errors.New("discount is not editable")
	ErrInvalidDiscount     = errors.New("invalid discount")
	ErrInvalidPayment      = errors.New("invalid payment amount")
	ErrPaymentExceedsTotal = errors.New("payment exceeds total")
	ErrSumMismatch         = errors.New("payments do not match total")
	ErrNoLineItems         = errors.New("budget has no exams")
	ErrOrderNotEligible    = errors.New("budget not eligible for order")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrStaleRepricing      = errors.New("stale repricing batch")
	ErrInvalidPlan         = errors.New("invalid plan")
)

// MissingFieldError reports the first mandatory header field left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory field %s", e.Field)
}

// EligibilityError carries the blocking message returned by the eligibility check.
type EligibilityError struct {
	Message string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("budget not eligible for order: %s", e.Message)
}

func (e *EligibilityError) Is(target error) bool {
	return target == ErrOrderNotEligible
}
