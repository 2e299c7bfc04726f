package entities

import "time"

// Order is the record created when a budget is confirmed (pedido).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (budget_id-index): budget_id
type Order struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Kind      string    `json:"kind"`
	PatientID string    `json:"patient_id"`
	UnitID    string    `json:"unit_id"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}
