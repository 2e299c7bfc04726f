package budget

import (
	"time"

	"laboratorio_xpto/internal/domain/entities"
)

// Session is one editing session of a header. It lives only while the user
// edits; cancelling discards it without touching the saved budget.
type Session struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	DiscountEditable bool       `json:"discount_editable"`
	State            State      `json:"state"`
	Picker           SlotPicker `json:"picker"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Apply reduces ev on the session state. A slot picked under another
// insurer, plan or unit is dropped.
func (s *Session) Apply(ev Event) error {
	next, err := Reduce(s.State, ev)
	if err != nil {
		return err
	}
	if AgendaChanged(s.State.Header, next.Header) {
		s.Picker = NewSlotPicker()
	}
	s.State = next
	return nil
}

// AgendaChanged reports whether slots found for a could be wrong for b.
func AgendaChanged(a, b entities.Header) bool {
	return a.InsurerID != b.InsurerID || a.PlanID != b.PlanID || a.UnitID != b.UnitID
}
