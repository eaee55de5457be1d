package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"

	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

// Config holds Slack notifier configuration.
type Config struct {
	BotToken string
	Channel  string
}

// Notifier mirrors ticket lifecycle events into an ops Slack channel so
// staff see activity without watching the Discord server.
type Notifier struct {
	client *slackapi.Client
	config Config
}

// NewNotifier creates a new Slack Notifier.
func NewNotifier(cfg Config) *Notifier {
	return &Notifier{
		client: slackapi.New(cfg.BotToken),
		config: cfg,
	}
}

var _ outbound.Notifier = (*Notifier)(nil)

func (n *Notifier) NotifyTicketOpened(ctx context.Context, ev outbound.TicketEvent) error {
	blocks := BuildTicketEventBlocks("Ticket Opened", ":ticket:", ev)
	_, _, err := n.client.PostMessageContext(ctx, n.config.Channel,
		slackapi.MsgOptionBlocks(blocks...),
		slackapi.MsgOptionText(fmt.Sprintf("Ticket opened: %s", ev.ChannelName), false),
	)
	if err != nil {
		return fmt.Errorf("slack NotifyTicketOpened: %w", err)
	}
	return nil
}

func (n *Notifier) NotifyTicketClosed(ctx context.Context, ev outbound.TicketEvent) error {
	blocks := BuildTicketEventBlocks("Ticket Closed", ":lock:", ev)
	_, _, err := n.client.PostMessageContext(ctx, n.config.Channel,
		slackapi.MsgOptionBlocks(blocks...),
		slackapi.MsgOptionText(fmt.Sprintf("Ticket closed: %s", ev.ChannelName), false),
	)
	if err != nil {
		return fmt.Errorf("slack NotifyTicketClosed: %w", err)
	}
	return nil
}

// BuildTicketEventBlocks constructs the Block Kit card for a lifecycle event.
func BuildTicketEventBlocks(title, emoji string, ev outbound.TicketEvent) []slackapi.Block {
	header := slackapi.NewSectionBlock(
		slackapi.NewTextBlockObject(slackapi.MarkdownType,
			fmt.Sprintf("%s *%s*", emoji, title), false, false),
		nil, nil,
	)

	fields := []*slackapi.TextBlockObject{
		slackapi.NewTextBlockObject(slackapi.MarkdownType,
			fmt.Sprintf("*Channel*\n`%s`", ev.ChannelName), false, false),
		slackapi.NewTextBlockObject(slackapi.MarkdownType,
			fmt.Sprintf("*Type*\n%s", ev.Type), false, false),
		slackapi.NewTextBlockObject(slackapi.MarkdownType,
			fmt.Sprintf("*By*\n%s", ev.Actor), false, false),
	}
	fieldBlock := slackapi.NewSectionBlock(nil, fields, nil)

	return []slackapi.Block{header, fieldBlock}
}
