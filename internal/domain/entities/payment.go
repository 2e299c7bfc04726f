package entities

import (
	"encoding/json"
	"time"
)

// Payment is a declared payment of a budget (pagamento).
//
// Provider fields are filled only when the payment was charged through the
// online gateway; manual payments (cash, card machine) leave them empty.
type Payment struct {
	ID       string    `json:"id"`
	MethodID string    `json:"method_id"`
	Amount   float64   `json:"amount"`
	PaidAt   time.Time `json:"paid_at"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
