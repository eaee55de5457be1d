package outbound

import "context"

// TicketEvent is an out-of-band record of a ticket lifecycle change, sent to
// the operations team rather than into the ticket channel itself.
type TicketEvent struct {
	ChannelName string
	Type        string
	Actor       string
}

// Notifier delivers ticket lifecycle events to an external destination
// (e.g. an ops Slack channel). Delivery is best effort; callers log and
// continue on failure.
type Notifier interface {
	NotifyTicketOpened(ctx context.Context, ev TicketEvent) error
	NotifyTicketClosed(ctx context.Context, ev TicketEvent) error
}
