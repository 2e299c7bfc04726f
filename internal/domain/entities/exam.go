package entities

import "time"

// ExamInstructions is the free text a catalog exam contributes to the
// accumulated medication and observation fields.
type ExamInstructions struct {
	PrepInstructions    string `json:"prep_instructions"`
	CollectionTechnique string `json:"collection_technique"`
	MedicationAlerts    string `json:"medication_alerts"`
}

// SlotQuery scopes slot discovery to one exam at one unit under one plan.
type SlotQuery struct {
	InsurerID string `json:"insurer_id"`
	PlanID    string `json:"plan_id"`
	UnitID    string `json:"unit_id"`
	ExamID    string `json:"exam_id"`
}

// Slot is a bookable collection time.
type Slot struct {
	ID       string    `json:"id"`
	StartsAt time.Time `json:"starts_at"`
}
