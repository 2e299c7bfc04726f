package request

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/entities"
	"laboratorio_xpto/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// OpenSessionRequest starts editing a new header. Patient, plan and requester
// may be filled later through the header route.
type OpenSessionRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=orcamento agendamento"`
	UserID      string `json:"user_id"`
	UnitID      string `json:"unit_id"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	InsurerID   string `json:"insurer_id"`
	PlanID      string `json:"plan_id"`
	RequesterID string `json:"requester_id"`
}

func (r OpenSessionRequest) ToInput() usecase.OpenSessionInput {
	return usecase.OpenSessionInput{
		Kind:        entities.HeaderKind(strings.ToLower(strings.TrimSpace(r.Kind))),
		UserID:      r.UserID,
		UnitID:      r.UnitID,
		PatientID:   r.PatientID,
		PatientName: r.PatientName,
		InsurerID:   r.InsurerID,
		PlanID:      r.PlanID,
		RequesterID: r.RequesterID,
	}
}

type OpenBudgetRequest struct {
	UserID string `json:"user_id"`
}

type AddExamRequest struct {
	ExamID   string `json:"exam_id" binding:"required"`
	ExamCode string `json:"exam_code" binding:"required"`
	ExamName string `json:"exam_name"`
}

func (r AddExamRequest) ToInput() usecase.AddExamInput {
	return usecase.AddExamInput{ExamID: r.ExamID, ExamCode: r.ExamCode, ExamName: r.ExamName}
}

type ChangePlanRequest struct {
	InsurerID string `json:"insurer_id"`
	PlanID    string `json:"plan_id" binding:"required"`
}

func (r ChangePlanRequest) ToInput() usecase.ChangePlanInput {
	return usecase.ChangePlanInput{InsurerID: r.InsurerID, PlanID: r.PlanID}
}

type ChangeDiscountRequest struct {
	Value float64 `json:"value" binding:"gte=0"`
	Mode  string  `json:"mode" binding:"required,oneof=fixed percentage"`
}

func (r ChangeDiscountRequest) ToInput() usecase.ChangeDiscountInput {
	return usecase.ChangeDiscountInput{Value: r.Value, Mode: entities.DiscountMode(r.Mode)}
}

type UpdateHeaderRequest struct {
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name"`
	RequesterID string `json:"requester_id"`
	UnitID      string `json:"unit_id"`
}

func (r UpdateHeaderRequest) ToInput() usecase.UpdateHeaderInput {
	return usecase.UpdateHeaderInput{
		PatientID:   r.PatientID,
		PatientName: r.PatientName,
		RequesterID: r.RequesterID,
		UnitID:      r.UnitID,
	}
}

// AddPaymentRequest declares one payment. `mp_payload` is sent only for
// payments charged online and is forwarded to Mercado Pago as-is.
type AddPaymentRequest struct {
	MethodID  string          `json:"method_id" binding:"required"`
	Amount    float64         `json:"amount" binding:"required"`
	PaidAt    *time.Time      `json:"paid_at"`
	MPPayload json.RawMessage `json:"mp_payload"`
}

func (r AddPaymentRequest) ToInput() usecase.AddPaymentInput {
	in := usecase.AddPaymentInput{MethodID: r.MethodID, Amount: r.Amount, PaidAt: r.PaidAt}
	if p := strings.TrimSpace(string(r.MPPayload)); p != "" && p != "null" {
		in.MPPayload = r.MPPayload
	}
	return in
}

type ChooseExamRequest struct {
	ExamID string `json:"exam_id" binding:"required"`
}

type ChooseDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r ChooseDateRequest) ParseDate() (time.Time, error) {
	return ParseDate(r.Date)
}

type ChooseTimeRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// ParseDate reads a calendar date (YYYY-MM-DD) as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
