package response

import (
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"
)

func TestFromSession(t *testing.T) {
	state := budget.NewState(entities.Header{Kind: entities.HeaderKindOrcamento, PlanID: "p1"})
	state, err := budget.Reduce(state, budget.AddExam{Item: entities.LineItem{ID: "i1", ExamID: "e1", ExamCode: "GLI", Price: 100.5}})
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	state.Payments = []entities.Payment{{ID: "p1", MethodID: "cash", Amount: 40}}

	res := FromSession(budget.Session{ID: "s1", DiscountEditable: true, State: state, Picker: budget.NewSlotPicker()})

	if res.SessionID != "s1" || !res.Editable || !res.DiscountEditable {
		t.Fatalf("unexpected session response: %+v", res)
	}
	if res.Budget.StatusLabel != "orcamento" || res.Budget.Status != 1 {
		t.Fatalf("unexpected status: %d %s", res.Budget.Status, res.Budget.StatusLabel)
	}
	if res.Budget.Total != 100.5 || res.Budget.Paid != 40 || res.Budget.Remaining != 60.5 {
		t.Fatalf("unexpected money fields: %+v", res.Budget)
	}
	if len(res.Budget.Items) != 1 || len(res.Budget.Payments) != 1 {
		t.Fatalf("unexpected lists: %+v", res.Budget)
	}
	if res.Picker.State != "idle" || res.Picker.Options == nil {
		t.Fatalf("unexpected picker: %+v", res.Picker)
	}
}

func TestFromPicker(t *testing.T) {
	day := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	slot := entities.Slot{ID: "s-07", StartsAt: day.Add(7 * time.Hour)}
	res := FromPicker(budget.SlotPicker{State: budget.PickerAddable, ExamID: "e1", Date: &day, Options: []entities.Slot{slot}, Selected: &slot})

	if !res.Addable || res.Date != "2026-04-09" || res.Selected == nil || res.Selected.ID != "s-07" {
		t.Fatalf("unexpected picker response: %+v", res)
	}
}

func TestFromDates(t *testing.T) {
	res := FromDates([]time.Time{time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)})
	if len(res.Dates) != 2 || res.Dates[0] != "2026-04-07" || res.Dates[1] != "2026-04-09" {
		t.Fatalf("unexpected dates: %v", res.Dates)
	}
}
