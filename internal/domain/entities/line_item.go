package entities

import "time"

// LineItem is one selected exam of a budget (detalhe).
//
// Only Price is ever rewritten after creation, when the plan changes.
// MedicationAlerts and Instructions keep the text fetched at add time so the
// accumulated strings can be recomputed without new lookups.
type LineItem struct {
	ID          string     `json:"id"`
	ExamID      string     `json:"exam_id"`
	ExamCode    string     `json:"exam_code"`
	ExamName    string     `json:"exam_name,omitempty"`
	Price       float64    `json:"price"`
	CollectedAt time.Time  `json:"collected_at"`
	SlotID      string     `json:"slot_id,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`

	MedicationAlerts string `json:"medication_alerts,omitempty"`
	Instructions     string `json:"instructions,omitempty"`
}
