package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// Notifier is the outbound fire-and-forget notification capability.
// Implementations publish to an external transport (message broker, push
// gateway); delivery is at-most-once and never guaranteed.
//
// Handlers call Notify strictly after the business transaction commits; a
// notification failure must never roll anything back, so callers log the
// returned error and move on.
type Notifier interface {
	Notify(ctx context.Context, partyID kernel.UUID, event string, payload any) error
}
