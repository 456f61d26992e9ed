package ports

import "context"

// PaymentGateway is the external payment provider. CreateOrder registers the
// amount with the provider and returns an opaque order reference forwarded
// to the frontend checkout; VerifySignature validates the provider callback.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount float64, currency string, notes map[string]string) (string, error)
	VerifySignature(paymentRef, orderRef, signature string) bool
}
