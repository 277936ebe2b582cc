package interfaces

import (
	"context"
	"encoding/json"
)

// IDisbursementGateway abstracts the external payment provider (e.g. Mercado
// Pago) that transfers the approved amount to the applicant's account.
//
// The credit-service persists the provider response payload for traceability.
type IDisbursementGateway interface {
	CreateDisbursement(ctx context.Context, requestPayload json.RawMessage) (providerID string, providerStatus string, providerResponse json.RawMessage, err error)
}
