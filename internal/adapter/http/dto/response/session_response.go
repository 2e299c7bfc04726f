package response

import (
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
)

type LineItemResponse struct {
	ID               string     `json:"id"`
	ExamID           string     `json:"exam_id"`
	ExamCode         string     `json:"exam_code"`
	ExamName         string     `json:"exam_name,omitempty"`
	Price            float64    `json:"price"`
	CollectedAt      time.Time  `json:"collected_at"`
	SlotID           string     `json:"slot_id,omitempty"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	MedicationAlerts string     `json:"medication_alerts,omitempty"`
	Instructions     string     `json:"instructions,omitempty"`
}

type PaymentResponse struct {
	ID                string    `json:"id"`
	MethodID          string    `json:"method_id"`
	Amount            float64   `json:"amount"`
	PaidAt            time.Time `json:"paid_at"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
}

type BudgetResponse struct {
	ID           string  `json:"id,omitempty"`
	Kind         string  `json:"kind"`
	Status       int     `json:"status"`
	StatusLabel  string  `json:"status_label"`
	PatientID    string  `json:"patient_id"`
	PatientName  string  `json:"patient_name"`
	InsurerID    string  `json:"insurer_id"`
	PlanID       string  `json:"plan_id"`
	UnitID       string  `json:"unit_id"`
	RequesterID  string  `json:"requester_id"`
	Discount     float64 `json:"discount"`
	DiscountMode string  `json:"discount_mode"`
	Subtotal     float64 `json:"subtotal"`
	Total        float64 `json:"total"`
	Paid         float64 `json:"paid"`
	Remaining    float64 `json:"remaining"`
	Medications  string  `json:"medications"`
	Observations string  `json:"observations"`

	Items    []LineItemResponse `json:"items"`
	Payments []PaymentResponse  `json:"payments"`
}

type SlotResponse struct {
	ID       string    `json:"id"`
	StartsAt time.Time `json:"starts_at"`
}

type PickerResponse struct {
	State    string         `json:"state"`
	ExamID   string         `json:"exam_id,omitempty"`
	Date     string         `json:"date,omitempty"`
	Options  []SlotResponse `json:"options"`
	Selected *SlotResponse  `json:"selected,omitempty"`
	Addable  bool           `json:"addable"`
	Message  string         `json:"message,omitempty"`
}

type SessionResponse struct {
	SessionID        string         `json:"session_id"`
	UserID           string         `json:"user_id,omitempty"`
	DiscountEditable bool           `json:"discount_editable"`
	Editable         bool           `json:"editable"`
	Budget           BudgetResponse `json:"budget"`
	Picker           PickerResponse `json:"picker"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type OrderResponse struct {
	ID        string    `json:"id"`
	BudgetID  string    `json:"budget_id"`
	Kind      string    `json:"kind"`
	PatientID string    `json:"patient_id"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

type ConfirmOrderResponse struct {
	Order   OrderResponse   `json:"order"`
	Session SessionResponse `json:"session"`
}

type DatesResponse struct {
	Dates []string `json:"dates"`
}

func FromSession(s budget.Session) SessionResponse {
	return SessionResponse{
		SessionID:        s.ID,
		UserID:           s.UserID,
		DiscountEditable: s.DiscountEditable,
		Editable:         s.State.Editable(),
		Budget:           FromState(s.State),
		Picker:           FromPicker(s.Picker),
		UpdatedAt:        s.UpdatedAt,
	}
}

func FromState(st budget.State) BudgetResponse {
	h := st.Header
	paid := budget.PaymentsTotal(st.Payments)
	out := BudgetResponse{
		ID:           h.ID,
		Kind:         string(h.Kind),
		Status:       int(h.Status),
		StatusLabel:  h.Status.String(),
		PatientID:    h.PatientID,
		PatientName:  h.PatientName,
		InsurerID:    h.InsurerID,
		PlanID:       h.PlanID,
		UnitID:       h.UnitID,
		RequesterID:  h.RequesterID,
		Discount:     h.Discount,
		DiscountMode: string(h.DiscountMode),
		Subtotal:     budget.Round2(st.Subtotal),
		Total:        budget.Round2(h.Total),
		Paid:         paid,
		Remaining:    budget.Round2(h.Total - paid),
		Medications:  h.Medications,
		Observations: h.Observations,
		Items:        make([]LineItemResponse, 0, len(st.Items)),
		Payments:     make([]PaymentResponse, 0, len(st.Payments)),
	}
	for _, it := range st.Items {
		out.Items = append(out.Items, LineItemResponse{
			ID:               it.ID,
			ExamID:           it.ExamID,
			ExamCode:         it.ExamCode,
			ExamName:         it.ExamName,
			Price:            it.Price,
			CollectedAt:      it.CollectedAt,
			SlotID:           it.SlotID,
			Deadline:         it.Deadline,
			MedicationAlerts: it.MedicationAlerts,
			Instructions:     it.Instructions,
		})
	}
	for _, p := range st.Payments {
		out.Payments = append(out.Payments, PaymentResponse{
			ID:                p.ID,
			MethodID:          p.MethodID,
			Amount:            p.Amount,
			PaidAt:            p.PaidAt,
			ProviderPaymentID: p.ProviderPaymentID,
			ProviderStatus:    p.ProviderStatus,
		})
	}
	return out
}

func FromPicker(p budget.SlotPicker) PickerResponse {
	out := PickerResponse{
		State:   string(p.State),
		ExamID:  p.ExamID,
		Options: make([]SlotResponse, 0, len(p.Options)),
		Addable: p.State == budget.PickerAddable,
		Message: p.Message,
	}
	if p.Date != nil {
		out.Date = p.Date.Format(time.DateOnly)
	}
	for _, s := range p.Options {
		out.Options = append(out.Options, SlotResponse{ID: s.ID, StartsAt: s.StartsAt})
	}
	if p.Selected != nil {
		out.Selected = &SlotResponse{ID: p.Selected.ID, StartsAt: p.Selected.StartsAt}
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		BudgetID:  o.BudgetID,
		Kind:      o.Kind,
		PatientID: o.PatientID,
		Total:     o.Total,
		ItemCount: o.ItemCount,
		CreatedAt: o.CreatedAt,
	}
}

func FromDates(dates []time.Time) DatesResponse {
	out := DatesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		out.Dates = append(out.Dates, d.Format(time.DateOnly))
	}
	return out
}
