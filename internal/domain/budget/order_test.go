package budget

import (
	"errors"
	"testing"

	"laboratorio_xpto/internal/domain/entities"
)

func TestValidateMandatory(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(h *entities.Header)
		field string
	}{
		{name: "patient", mut: func(h *entities.Header) { h.PatientID = "" }, field: "patient_id"},
		{name: "insurer", mut: func(h *entities.Header) { h.InsurerID = "  " }, field: "insurer_id"},
		{name: "plan", mut: func(h *entities.Header) { h.PlanID = "" }, field: "plan_id"},
		{name: "requester", mut: func(h *entities.Header) { h.RequesterID = "" }, field: "requester_id"},
		{name: "patient name", mut: func(h *entities.Header) { h.PatientName = "" }, field: "patient_name"},
		{name: "first missing wins", mut: func(h *entities.Header) { h.PatientName = ""; h.PlanID = "" }, field: "plan_id"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := draftHeader()
			tc.mut(&h)
			err := ValidateMandatory(h)
			var mf *MissingFieldError
			if !errors.As(err, &mf) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if mf.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, mf.Field)
			}
		})
	}

	if err := ValidateMandatory(draftHeader()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func confirmableState(t *testing.T, paid ...float64) State {
	t.Helper()
	s := NewState(draftHeader())
	s = mustReduce(t, s, AddExam{Item: item("ex-1", "HEM", 50)})
	s = mustReduce(t, s, AddExam{Item: item("ex-2", "GLI", 70)})
	s = mustReduce(t, s, ChangeDiscount{Value: 20, Mode: entities.DiscountModeFixed, Editable: true})
	for i, p := range paid {
		s = mustReduce(t, s, AddPayment{Payment: entities.Payment{ID: string(rune('a' + i)), Amount: p}})
	}
	return s
}

func TestConfirmOrder_EndToEnd(t *testing.T) {
	t.Run("payments match total", func(t *testing.T) {
		s := confirmableState(t, 100)
		if s.Subtotal != 120 || s.Header.Total != 100 {
			t.Fatalf("expected 120/100, got %v/%v", s.Subtotal, s.Header.Total)
		}
		next, err := ConfirmOrder(s, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Header.Status != entities.HeaderStatusPedido {
			t.Fatalf("expected pedido, got %s", next.Header.Status)
		}
		if s.Header.Status != entities.HeaderStatusOrcamento {
			t.Fatalf("input state must not change")
		}
	})

	t.Run("sum mismatch", func(t *testing.T) {
		s := confirmableState(t, 99)
		if _, err := ConfirmOrder(s, ""); !errors.Is(err, ErrSumMismatch) {
			t.Fatalf("expected ErrSumMismatch, got %v", err)
		}
	})

	t.Run("eligibility message blocks", func(t *testing.T) {
		s := confirmableState(t, 100)
		_, err := ConfirmOrder(s, "Orçamento já convertido em pedido")
		if !errors.Is(err, ErrOrderNotEligible) {
			t.Fatalf("expected ErrOrderNotEligible, got %v", err)
		}
		var ee *EligibilityError
		if !errors.As(err, &ee) || ee.Message != "Orçamento já convertido em pedido" {
			t.Fatalf("expected eligibility message, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		s := NewState(draftHeader())
		if _, err := ConfirmOrder(s, ""); !errors.Is(err, ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("mandatory fields checked first", func(t *testing.T) {
		s := confirmableState(t, 99)
		s.Header.RequesterID = ""
		var mf *MissingFieldError
		if _, err := ConfirmOrder(s, ""); !errors.As(err, &mf) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
	})

	t.Run("only drafts can be confirmed", func(t *testing.T) {
		s := confirmableState(t, 100)
		s.Header.Status = entities.HeaderStatusCancelado
		if _, err := ConfirmOrder(s, ""); !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestValidateForSave_IgnoresPayments(t *testing.T) {
	s := confirmableState(t, 10)
	if err := ValidateForSave(s); err != nil {
		t.Fatalf("draft save must not reconcile payments: %v", err)
	}
}

func TestCancel(t *testing.T) {
	s := confirmableState(t)
	next, err := Cancel(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Header.Status != entities.HeaderStatusCancelado {
		t.Fatalf("expected cancelado, got %s", next.Header.Status)
	}
	if _, err := Cancel(next); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
