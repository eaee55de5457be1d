package outbound

import (
	"context"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

type AnnounceLevel string

const (
	AnnounceSuccess AnnounceLevel = "success"
	AnnounceInfo    AnnounceLevel = "info"
	AnnounceDanger  AnnounceLevel = "danger"
)

// WelcomeMessage is the introductory card posted into a new ticket channel.
type WelcomeMessage struct {
	ChannelID string
	OwnerID   string
	OwnerName string
	Type      model.TicketType
}

// Announcement is a short in-channel status card (claimed, unclaimed, user
// added/removed, renamed, closed).
type Announcement struct {
	ChannelID string
	Text      string
	Level     AnnounceLevel
}

// ClosePrompt asks for confirmation before a ticket is closed.
type ClosePrompt struct {
	ChannelID string
}

// CloseRecord is the structured summary posted to the audit log channel.
type CloseRecord struct {
	LogChannelID string
	ChannelName  string
	ClosedBy     string
	Type         string
}

// PanelMessage is the ticket creation panel with one button per type.
type PanelMessage struct {
	ChannelID string
}

// StatsMessage is a point-in-time snapshot of ticket counts.
type StatsMessage struct {
	ChannelID   string
	RequestedBy string
	Active      int
	Claimed     int
	Unclaimed   int
}

// HelpMessage lists the command surface and ticket types.
type HelpMessage struct {
	ChannelID   string
	RequestedBy string
}

// Messenger renders and sends every rich outbound payload. It is purely
// derived from its inputs and holds no state.
type Messenger interface {
	SendWelcome(ctx context.Context, msg WelcomeMessage) error
	SendPanel(ctx context.Context, msg PanelMessage) error
	SendHelp(ctx context.Context, msg HelpMessage) error
	SendStats(ctx context.Context, msg StatsMessage) error
	SendClosePrompt(ctx context.Context, msg ClosePrompt) error
	SendCloseRecord(ctx context.Context, msg CloseRecord) error
	Announce(ctx context.Context, msg Announcement) error
}
