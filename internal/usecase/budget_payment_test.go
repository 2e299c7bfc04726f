package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func TestBudgetUseCase_AddPayment(t *testing.T) {
	ctx := context.Background()
	seed := func(t *testing.T) (*BudgetUseCase, *memSessionStore, budgetMocks) {
		uc, store, m := newBudgetUseCaseForTest(t)
		store.put(t, draftSession("s1", completeHeader(entities.HeaderKindOrcamento), lineItem("e1", "GLI", 100), lineItem("e2", "HMG", 35)))
		return uc, store, m
	}

	t.Run("method required", func(t *testing.T) {
		uc, _, _ := seed(t)
		if _, err := uc.AddPayment(ctx, "s1", AddPaymentInput{Amount: 10}); !errors.Is(err, budget.ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc, _, _ := seed(t)
		if _, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "cash", Amount: 0}); !errors.Is(err, budget.ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("running sum may not pass the total", func(t *testing.T) {
		uc, store, _ := seed(t)
		if _, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "cash", Amount: 100}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "card", Amount: 35.01}); !errors.Is(err, budget.ErrPaymentExceedsTotal) {
			t.Fatalf("expected ErrPaymentExceedsTotal, got %v", err)
		}
		sess, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "card", Amount: 35})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sess.State.Payments) != 2 || len(store.get(t, "s1").State.Payments) != 2 {
			t.Fatalf("expected two payments")
		}
	})

	t.Run("online payment charged after guard and stored when approved", func(t *testing.T) {
		uc, _, m := seed(t)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload: %v", err)
				}
				if req["transaction_amount"] != 35.0 || req["external_reference"] != "s1" || req["payment_method_id"] != "pix" {
					t.Fatalf("unexpected request: %v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			},
		)

		sess, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 35, MPPayload: json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := sess.State.Payments[0]
		if p.ProviderPaymentID != "mp-1" || p.ProviderStatus != "approved" || len(p.ProviderPayloadRaw) == 0 {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("online payment over the total never reaches the gateway", func(t *testing.T) {
		uc, _, _ := seed(t)
		_, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 500, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)})
		if !errors.Is(err, budget.ErrPaymentExceedsTotal) {
			t.Fatalf("expected ErrPaymentExceedsTotal, got %v", err)
		}
	})

	t.Run("rejected charge is not kept", func(t *testing.T) {
		uc, store, m := seed(t)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", json.RawMessage(`{}`), nil)

		_, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 10, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)})
		if !errors.Is(err, ErrPaymentNotApproved) {
			t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
		}
		if len(store.get(t, "s1").State.Payments) != 0 {
			t.Fatalf("rejected payment must not be stored")
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _, _ := seed(t)
		for _, raw := range []string{`{"payment_method_id":""}`, `[1,2]`, `{}`} {
			_, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 10, MPPayload: json.RawMessage(raw)})
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("payload %s: expected ErrInvalidMPPayload, got %v", raw, err)
			}
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		uc, _, m := seed(t)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("503"))
		_, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 10, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)})
		if !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected ErrLookupFailed, got %v", err)
		}
	})

	t.Run("charged payment lost on session save is reported", func(t *testing.T) {
		uc, store, m := seed(t)
		uc.sessions.store = failingSaveStore{memSessionStore: store, err: errors.New("redis down")}
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-77", "approved", json.RawMessage(`{"id":77}`), nil)

		var logs bytes.Buffer
		log.SetOutput(&logs)
		defer log.SetOutput(os.Stderr)

		_, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "pix", Amount: 10, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)})
		if !errors.Is(err, ErrPaymentNotRecorded) || !strings.Contains(err.Error(), "mp-77") {
			t.Fatalf("expected ErrPaymentNotRecorded with provider id, got %v", err)
		}
		if !strings.Contains(logs.String(), "provider_payment_id=mp-77") {
			t.Fatalf("expected provider id in logs, got %q", logs.String())
		}
	})

	t.Run("remove payment", func(t *testing.T) {
		uc, _, _ := seed(t)
		if _, err := uc.AddPayment(ctx, "s1", AddPaymentInput{MethodID: "cash", Amount: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sess, err := uc.RemovePayment(ctx, "s1", 0)
		if err != nil || len(sess.State.Payments) != 0 {
			t.Fatalf("expected payment removed, err=%v", err)
		}
		if _, err := uc.RemovePayment(ctx, "s1", 0); !errors.Is(err, budget.ErrInvalidIndex) {
			t.Fatalf("expected ErrInvalidIndex, got %v", err)
		}
	})
}

// failingSaveStore fails every session save.
type failingSaveStore struct {
	*memSessionStore
	err error
}

func (f failingSaveStore) Save(context.Context, budget.Session) error {
	return f.err
}
