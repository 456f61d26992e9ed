package ports

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	SetOrderRef(ctx context.Context, id, orderRef string) error
	// Confirm marks the payment completed and publishes the owning event
	// (draft -> upcoming) in a single transaction. It reports whether the
	// payment was already completed before the call.
	Confirm(ctx context.Context, id, transactionID string) (already bool, err error)
	Fail(ctx context.Context, id string) error
	List(ctx context.Context, role domain.Role, userID string) ([]*domain.Payment, error)
}
