package budget

import (
	"strings"

	"laboratorio_xpto/internal/domain/entities"
)

// State is everything an editing session holds for one header.
//
// Subtotal and the derived header fields (Total, Medications, Observations)
// are only written by recompute, so they always agree with Items.
type State struct {
	Header   entities.Header     `json:"header"`
	Items    []entities.LineItem `json:"items"`
	Payments []entities.Payment  `json:"payments"`
	Subtotal float64             `json:"subtotal"`

	// PricingGeneration is bumped on every plan change. A re-pricing batch
	// carries the generation it was started for and is dropped if it is older.
	PricingGeneration uint64 `json:"pricing_generation"`
}

// NewState returns the state of an empty draft header.
func NewState(h entities.Header) State {
	h.Status = entities.HeaderStatusOrcamento
	if !h.DiscountMode.Valid() {
		h.DiscountMode = entities.DiscountModeFixed
	}
	s := State{Header: h, Items: []entities.LineItem{}, Payments: []entities.Payment{}}
	s.recompute()
	return s
}

// FromBudget rebuilds a state from a persisted budget.
func FromBudget(b entities.Budget) State {
	s := State{Header: b.Header, Items: cloneItems(b.Items), Payments: clonePayments(b.Payments)}
	if s.Items == nil {
		s.Items = []entities.LineItem{}
	}
	if s.Payments == nil {
		s.Payments = []entities.Payment{}
	}
	if !s.Header.DiscountMode.Valid() {
		s.Header.DiscountMode = entities.DiscountModeFixed
	}
	s.recompute()
	return s
}

// Budget is the composite record to persist.
func (s State) Budget() entities.Budget {
	return entities.Budget{Header: s.Header, Items: cloneItems(s.Items), Payments: clonePayments(s.Payments)}
}

func (s State) Editable() bool {
	return s.Header.Status == entities.HeaderStatusOrcamento
}

func (s State) clone() State {
	s.Items = cloneItems(s.Items)
	s.Payments = clonePayments(s.Payments)
	return s
}

func (s *State) recompute() {
	s.Subtotal = Subtotal(s.Items)
	s.Header.Total = ApplyDiscount(s.Subtotal, s.Header.Discount, s.Header.DiscountMode)
	s.Header.Medications, s.Header.Observations = AccumulateInstructions(s.Items)
}

// Event is a discrete user action applied by Reduce.
type Event interface {
	apply(s *State) error
}

// Reduce applies ev to a copy of s. On error the original state is returned
// unchanged together with the error.
func Reduce(s State, ev Event) (State, error) {
	if !s.Editable() {
		return s, ErrNotEditable
	}
	next := s.clone()
	if err := ev.apply(&next); err != nil {
		return s, err
	}
	next.recompute()
	return next, nil
}

// AddExam appends a fully resolved line item.
type AddExam struct {
	Item entities.LineItem
	// RequiresSlot is set when the exam must be booked on a slot.
	RequiresSlot bool
}

func (e AddExam) apply(s *State) error {
	if err := validateNewItem(s.Items, e.Item); err != nil {
		return err
	}
	if e.RequiresSlot && e.Item.SlotID == "" {
		return ErrNoSlot
	}
	s.Items = append(s.Items, e.Item)
	return nil
}

type RemoveExam struct {
	Index int
}

func (e RemoveExam) apply(s *State) error {
	if e.Index < 0 || e.Index >= len(s.Items) {
		return ErrInvalidIndex
	}
	s.Items = append(s.Items[:e.Index], s.Items[e.Index+1:]...)
	return nil
}

// ChangePlan switches insurer/plan. Existing prices stay until the matching
// ApplyRepricing arrives.
type ChangePlan struct {
	InsurerID string
	PlanID    string
}

func (e ChangePlan) apply(s *State) error {
	planID := strings.TrimSpace(e.PlanID)
	if planID == "" {
		return ErrInvalidPlan
	}
	if insurerID := strings.TrimSpace(e.InsurerID); insurerID != "" {
		s.Header.InsurerID = insurerID
	}
	if planID != s.Header.PlanID {
		s.Header.PlanID = planID
		s.PricingGeneration++
	}
	return nil
}

// ApplyRepricing writes the prices resolved for Generation, keyed by exam
// code. Items whose code is not in Prices keep their price.
type ApplyRepricing struct {
	Generation uint64
	Prices     map[string]float64
}

func (e ApplyRepricing) apply(s *State) error {
	if e.Generation != s.PricingGeneration {
		return ErrStaleRepricing
	}
	for i := range s.Items {
		if p, ok := e.Prices[s.Items[i].ExamCode]; ok {
			s.Items[i].Price = p
		}
	}
	return nil
}

// ChangeDiscount sets discount value and mode. Editable is the per-session
// permission resolved when the session was opened.
type ChangeDiscount struct {
	Value    float64
	Mode     entities.DiscountMode
	Editable bool
}

func (e ChangeDiscount) apply(s *State) error {
	if !e.Editable {
		return ErrDiscountNotEditable
	}
	if e.Value < 0 || !e.Mode.Valid() {
		return ErrInvalidDiscount
	}
	s.Header.Discount = e.Value
	s.Header.DiscountMode = e.Mode
	return nil
}

// UpdateHeader edits the patient/requester fields. Empty values are ignored.
type UpdateHeader struct {
	PatientID   string
	PatientName string
	RequesterID string
	UnitID      string
}

func (e UpdateHeader) apply(s *State) error {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&s.Header.PatientID, e.PatientID)
	set(&s.Header.PatientName, e.PatientName)
	set(&s.Header.RequesterID, e.RequesterID)
	set(&s.Header.UnitID, e.UnitID)
	return nil
}

type AddPayment struct {
	Payment entities.Payment
}

func (e AddPayment) apply(s *State) error {
	if err := CanAddPayment(s.Payments, e.Payment.Amount, s.Header.Total); err != nil {
		return err
	}
	s.Payments = append(s.Payments, e.Payment)
	return nil
}

type RemovePayment struct {
	Index int
}

func (e RemovePayment) apply(s *State) error {
	if e.Index < 0 || e.Index >= len(s.Payments) {
		return ErrInvalidIndex
	}
	s.Payments = append(s.Payments[:e.Index], s.Payments[e.Index+1:]...)
	return nil
}
