package budget

import (
	"github.com/shopspring/decimal"

	"laboratorio_xpto/internal/domain/entities"
)

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func sumPayments(payments []entities.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(decimal.NewFromFloat(p.Amount))
	}
	return sum
}

// PaymentsTotal is the plain sum of the declared payment amounts.
func PaymentsTotal(payments []entities.Payment) float64 {
	f, _ := sumPayments(payments).Float64()
	return f
}
