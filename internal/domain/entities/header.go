package entities

import "time"

// HeaderStatus is the lifecycle of a budget header (orçamento/agendamento).
//
// The numeric values are the ones stored by the front office: 0 cancelled,
// 1 draft budget, 2 confirmed order.
type HeaderStatus int

const (
	HeaderStatusCancelado HeaderStatus = 0
	HeaderStatusOrcamento HeaderStatus = 1
	HeaderStatusPedido    HeaderStatus = 2
)

func (s HeaderStatus) String() string {
	switch s {
	case HeaderStatusCancelado:
		return "cancelado"
	case HeaderStatusOrcamento:
		return "orcamento"
	case HeaderStatusPedido:
		return "pedido"
	default:
		return "desconhecido"
	}
}

// HeaderKind distinguishes the two front-office flows sharing the same engine.
type HeaderKind string

const (
	HeaderKindOrcamento   HeaderKind = "orcamento"
	HeaderKindAgendamento HeaderKind = "agendamento"
)

// SupportsScheduling reports whether exams of this flow go through slot discovery.
func (k HeaderKind) SupportsScheduling() bool {
	return k == HeaderKindAgendamento
}

func (k HeaderKind) Valid() bool {
	return k == HeaderKindOrcamento || k == HeaderKindAgendamento
}

type DiscountMode string

const (
	DiscountModeFixed      DiscountMode = "fixed"
	DiscountModePercentage DiscountMode = "percentage"
)

func (m DiscountMode) Valid() bool {
	return m == DiscountModeFixed || m == DiscountModePercentage
}

// Header is the budget header (cabeçalho).
//
// Total, Medications and Observations are derived: they are rewritten on every
// recompute and never edited directly.
type Header struct {
	ID          string     `json:"id"`
	Kind        HeaderKind `json:"kind"`
	PatientID   string     `json:"patient_id" validate:"required"`
	PatientName string     `json:"patient_name" validate:"required"`
	InsurerID   string     `json:"insurer_id" validate:"required"`
	PlanID      string     `json:"plan_id" validate:"required"`
	UnitID      string     `json:"unit_id"`
	RequesterID string     `json:"requester_id" validate:"required"`
	UserID      string     `json:"user_id"`

	Discount     float64      `json:"discount"`
	DiscountMode DiscountMode `json:"discount_mode"`
	Status       HeaderStatus `json:"status"`
	Total        float64      `json:"total"`

	Medications  string `json:"medications"`
	Observations string `json:"observations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Budget is the composite record persisted on save: header, lines and payments.
type Budget struct {
	Header   Header     `json:"header"`
	Items    []LineItem `json:"items"`
	Payments []Payment  `json:"payments"`
}
