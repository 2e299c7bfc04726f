package budget

import (
	"github.com/shopspring/decimal"

	"laboratorio_xpto/internal/domain/entities"
)

// ValidatePayments checks that the payments cover the total exactly, after
// rounding both sides to cents.
func ValidatePayments(payments []entities.Payment, total float64) error {
	if !sumPayments(payments).Round(2).Equal(round2(total)) {
		return ErrSumMismatch
	}
	return nil
}

// CanAddPayment rejects a payment that would push the running sum past the total.
func CanAddPayment(payments []entities.Payment, amount, total float64) error {
	if amount <= 0 {
		return ErrInvalidPayment
	}
	next := sumPayments(payments).Add(decimal.NewFromFloat(amount)).Round(2)
	if next.GreaterThan(round2(total)) {
		return ErrPaymentExceedsTotal
	}
	return nil
}
