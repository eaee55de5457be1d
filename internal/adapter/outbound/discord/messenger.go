package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/adapter/inbound/discordbot/template"
	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

// MessengerConfig carries the command prefix shown inside rendered cards.
type MessengerConfig struct {
	Prefix string
}

// Messenger implements outbound.Messenger by rendering template payloads and
// posting them over the Discord REST API. It holds no state.
type Messenger struct {
	session *discordgo.Session
	cfg     MessengerConfig
}

func NewMessenger(session *discordgo.Session, cfg MessengerConfig) *Messenger {
	return &Messenger{session: session, cfg: cfg}
}

var _ outbound.Messenger = (*Messenger)(nil)

func (m *Messenger) SendWelcome(ctx context.Context, msg outbound.WelcomeMessage) error {
	embed, components := template.BuildWelcome(m.cfg.Prefix, msg.OwnerID, msg.Type)
	_, err := m.session.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Content:    fmt.Sprintf("<@%s>", msg.OwnerID),
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send welcome: %w", err)
	}
	return nil
}

func (m *Messenger) SendPanel(ctx context.Context, msg outbound.PanelMessage) error {
	embed, components := template.BuildPanel()
	_, err := m.session.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send panel: %w", err)
	}
	return nil
}

func (m *Messenger) SendHelp(ctx context.Context, msg outbound.HelpMessage) error {
	embed := template.BuildHelp(m.cfg.Prefix, msg.RequestedBy)
	if _, err := m.session.ChannelMessageSendEmbed(msg.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send help: %w", err)
	}
	return nil
}

func (m *Messenger) SendStats(ctx context.Context, msg outbound.StatsMessage) error {
	embed := template.BuildStats(msg.Active, msg.Claimed, msg.Unclaimed, msg.RequestedBy)
	if _, err := m.session.ChannelMessageSendEmbed(msg.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send stats: %w", err)
	}
	return nil
}

func (m *Messenger) SendClosePrompt(ctx context.Context, msg outbound.ClosePrompt) error {
	embed, components := template.BuildClosePrompt()
	_, err := m.session.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send close prompt: %w", err)
	}
	return nil
}

func (m *Messenger) SendCloseRecord(ctx context.Context, msg outbound.CloseRecord) error {
	embed := template.BuildCloseRecord(msg.ChannelName, msg.ClosedBy, msg.Type)
	if _, err := m.session.ChannelMessageSendEmbed(msg.LogChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send close record: %w", err)
	}
	return nil
}

func (m *Messenger) Announce(ctx context.Context, msg outbound.Announcement) error {
	embed := template.BuildAnnouncement(msg.Text, template.AnnouncementColor(string(msg.Level)))
	if _, err := m.session.ChannelMessageSendEmbed(msg.ChannelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}
	return nil
}
