package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"laboratorio_xpto/internal/domain/entities"
)

func TestOpenSessionRequest_ToInput(t *testing.T) {
	in := OpenSessionRequest{Kind: " Agendamento ", UserID: "u1", PlanID: "p1"}.ToInput()
	if in.Kind != entities.HeaderKindAgendamento || in.UserID != "u1" || in.PlanID != "p1" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestAddPaymentRequest_ToInput(t *testing.T) {
	t.Run("manual payment", func(t *testing.T) {
		in := AddPaymentRequest{MethodID: "cash", Amount: 10, MPPayload: json.RawMessage("null")}.ToInput()
		if in.MPPayload != nil {
			t.Fatalf("null payload must be dropped")
		}
	})
	t.Run("online payment", func(t *testing.T) {
		in := AddPaymentRequest{MethodID: "pix", Amount: 10, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)}.ToInput()
		if string(in.MPPayload) != `{"payment_method_id":"pix"}` {
			t.Fatalf("unexpected payload: %s", in.MPPayload)
		}
	})
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-04-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", d)
	}
	if _, err := ParseDate("09/04/2026"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
