package budget

import (
	"time"

	"laboratorio_xpto/internal/domain/entities"
)

// indexOfExam returns the position of the item for examID, or -1.
func indexOfExam(items []entities.LineItem, examID string) int {
	for i, it := range items {
		if it.ExamID == examID {
			return i
		}
	}
	return -1
}

// HasExam is the cheap uniqueness check done before any price or slot lookup.
func HasExam(items []entities.LineItem, examID string) bool {
	return indexOfExam(items, examID) >= 0
}

// Subtotal sums the line prices.
func Subtotal(items []entities.LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}

// Deadline is the collection time plus the exam turnaround. A nil turnaround
// (catalog lookup failed) leaves the deadline undefined.
func Deadline(collectedAt time.Time, turnaroundDays *int) *time.Time {
	if turnaroundDays == nil {
		return nil
	}
	d := collectedAt.AddDate(0, 0, *turnaroundDays)
	return &d
}

func validateNewItem(items []entities.LineItem, item entities.LineItem) error {
	if HasExam(items, item.ExamID) {
		return ErrAlreadyAdded
	}
	if item.Price <= 0 {
		return ErrNotPriced
	}
	return nil
}

func cloneItems(items []entities.LineItem) []entities.LineItem {
	if items == nil {
		return nil
	}
	out := make([]entities.LineItem, len(items))
	copy(out, items)
	return out
}

func clonePayments(payments []entities.Payment) []entities.Payment {
	if payments == nil {
		return nil
	}
	out := make([]entities.Payment, len(payments))
	copy(out, payments)
	return out
}
