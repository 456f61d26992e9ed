package ports

import (
	"context"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
)

// Notifier delivers best-effort notifications. Implementations never fail
// the calling workflow; a lost notification does not roll anything back.
type Notifier interface {
	NotifyRegistrationConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyRegistrationCanceled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventPublished(ctx context.Context, user *domain.User, event *domain.Event)
}
