package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"laboratorio_xpto/internal/domain/budget"
	"laboratorio_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

// AddPaymentInput declares one payment. MPPayload is set only for payments
// charged online through Mercado Pago.
type AddPaymentInput struct {
	MethodID  string
	Amount    float64
	PaidAt    *time.Time
	MPPayload json.RawMessage
}

// AddPayment appends a payment, rejecting it when the running sum would pass
// the total. Online payments are charged only after that check passes, and
// only approved charges are kept.
func (u *BudgetUseCase) AddPayment(ctx context.Context, sessionID string, in AddPaymentInput) (budget.Session, error) {
	in.MethodID = strings.TrimSpace(in.MethodID)
	if in.MethodID == "" {
		return budget.Session{}, budget.ErrInvalidPayment
	}
	log.Printf("[payment][usecase] add start session_id=%s method_id=%s amount=%.2f online=%t", sessionID, in.MethodID, in.Amount, len(in.MPPayload) > 0)

	var charged entities.Payment
	sess, err := u.sessions.mutate(ctx, sessionID, func(sess *budget.Session) error {
		if !sess.State.Editable() {
			return budget.ErrNotEditable
		}
		if err := budget.CanAddPayment(sess.State.Payments, in.Amount, sess.State.Header.Total); err != nil {
			log.Printf("[payment][usecase] add rejected session_id=%s amount=%.2f total=%.2f err=%v", sess.ID, in.Amount, sess.State.Header.Total, err)
			return err
		}

		p := entities.Payment{
			ID:       uuid.NewString(),
			MethodID: in.MethodID,
			Amount:   in.Amount,
			PaidAt:   u.now().UTC(),
		}
		if in.PaidAt != nil && !in.PaidAt.IsZero() {
			p.PaidAt = in.PaidAt.UTC()
		}

		if len(in.MPPayload) > 0 {
			if err := u.charge(ctx, sess, &p, in.MPPayload); err != nil {
				return err
			}
			charged = p
		}

		next, err := budget.Reduce(sess.State, budget.AddPayment{Payment: p})
		if err != nil {
			return err
		}
		sess.State = next
		log.Printf("[payment][usecase] add success session_id=%s payment_id=%s paid=%.2f total=%.2f", sess.ID, p.ID, budget.PaymentsTotal(next.Payments), next.Header.Total)
		return nil
	})
	if err != nil && charged.ProviderPaymentID != "" {
		log.Printf("[payment][usecase] charged payment not recorded session_id=%s provider_payment_id=%s amount=%.2f err=%v", sessionID, charged.ProviderPaymentID, charged.Amount, err)
		return budget.Session{}, fmt.Errorf("%w: provider payment %s: %w", ErrPaymentNotRecorded, charged.ProviderPaymentID, err)
	}
	return sess, err
}

func (u *BudgetUseCase) charge(ctx context.Context, sess *budget.Session, p *entities.Payment, payload json.RawMessage) error {
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured session_id=%s", sess.ID)
		return ErrPaymentGateway
	}
	if !json.Valid(payload) {
		return ErrInvalidMPPayload
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("[payment][usecase] payload unmarshal failed session_id=%s err=%v", sess.ID, err)
		return ErrInvalidMPPayload
	}
	if !hasNonEmptyString(req, "payment_method_id") {
		log.Printf("[payment][usecase] missing payment_method_id session_id=%s", sess.ID)
		return ErrInvalidMPPayload
	}

	reference := sess.State.Header.ID
	if reference == "" {
		reference = sess.ID
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = reference
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Orçamento %s", reference)
	}
	// The declared amount is the source of truth, not the client payload.
	req["transaction_amount"] = budget.Round2(p.Amount)

	body, err := json.Marshal(req)
	if err != nil {
		return err
	}
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed session_id=%s err=%v", sess.ID, err)
		return lookupFailed("payment gateway", err)
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] payment not approved session_id=%s provider_payment_id=%s provider_status=%s", sess.ID, providerID, providerStatus)
		return ErrPaymentNotApproved
	}

	p.ProviderPaymentID = providerID
	p.ProviderStatus = providerStatus
	p.ProviderPayloadRaw = providerResp
	return nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
