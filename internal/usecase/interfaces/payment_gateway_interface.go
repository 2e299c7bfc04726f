package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges a budget payment through an online provider
// (Mercado Pago). Manual payments never reach it.
//
// The provider response is kept on the payment for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
