package notifier

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
)

// NoopNotifier drops notifications, logging them at debug level. Used when no
// broker is configured and in tests.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier creates a notifier that discards everything.
func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

// Notify logs the envelope and succeeds.
func (n *NoopNotifier) Notify(_ context.Context, partyID kernel.UUID, event string, _ any) error {
	n.logger.Debug("notification dropped", "event", event, "party_id", partyID.String())
	return nil
}
