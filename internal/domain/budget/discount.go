package budget

import "laboratorio_xpto/internal/domain/entities"

// ApplyDiscount turns a subtotal into the final total.
//
// The result is not floored: a discount larger than the subtotal yields a
// negative total, which the front office shows as a data-entry problem.
func ApplyDiscount(subtotal, discount float64, mode entities.DiscountMode) float64 {
	if mode == entities.DiscountModePercentage {
		return subtotal - subtotal*discount/100
	}
	return subtotal - discount
}
