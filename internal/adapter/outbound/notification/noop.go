package notification

import (
	"context"
	"log/slog"

	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

// NoopNotifier logs lifecycle events instead of sending them. Used when the
// Slack integration is not configured.
type NoopNotifier struct {
	logger *slog.Logger
}

// NewNoopNotifier creates a new NoopNotifier.
func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

var _ outbound.Notifier = (*NoopNotifier)(nil)

func (n *NoopNotifier) NotifyTicketOpened(_ context.Context, ev outbound.TicketEvent) error {
	n.logger.Info("noop: ticket opened",
		"channel", ev.ChannelName,
		"type", ev.Type,
		"actor", ev.Actor,
	)
	return nil
}

func (n *NoopNotifier) NotifyTicketClosed(_ context.Context, ev outbound.TicketEvent) error {
	n.logger.Info("noop: ticket closed",
		"channel", ev.ChannelName,
		"type", ev.Type,
		"actor", ev.Actor,
	)
	return nil
}
