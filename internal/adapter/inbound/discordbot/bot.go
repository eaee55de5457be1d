package discordbot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
)

const genericFailure = "Something went wrong. Please try again."

// Config holds Discord bot configuration.
type Config struct {
	Prefix string
}

// Bot translates Discord gateway events into InteractionPort requests and
// renders the replies back. All ticket semantics live behind the port.
type Bot struct {
	session *discordgo.Session
	port    inbound.InteractionPort
	cfg     Config
	logger  *slog.Logger
}

// NewSession constructs a gateway session with the intents the bot needs.
// The session is shared with the outbound adapters; Bot.Start owns opening
// and closing it.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers
	return session, nil
}

// NewBot registers the event handlers on the session.
func NewBot(session *discordgo.Session, cfg Config, port inbound.InteractionPort, logger *slog.Logger) *Bot {
	b := &Bot{
		session: session,
		port:    port,
		cfg:     cfg,
		logger:  logger,
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)
	return b
}

// Start opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	<-ctx.Done()
	return b.session.Close()
}

// HeartbeatHealthy reports whether the gateway connection has a heartbeat.
func (b *Bot) HeartbeatHealthy() bool {
	return b.session.HeartbeatLatency() > 0
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("gateway ready", "user", r.User.Username, "guilds", len(r.Guilds))
	if err := s.UpdateWatchStatus(0, b.cfg.Prefix+"help | Ticket System"); err != nil {
		b.logger.Warn("set activity failed", "error", err)
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	command, args, ok := parseCommand(m.Content, b.cfg.Prefix)
	if !ok {
		return
	}

	mentions := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		mentions = append(mentions, u.ID)
	}

	ctx := context.Background()
	req := inbound.CommandRequest{
		Command:     command,
		Args:        args,
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		ChannelName: b.channelName(m.ChannelID),
		UserID:      m.Author.ID,
		UserName:    m.Author.Username,
		IsAdmin:     b.isAdmin(m.Author.ID, m.ChannelID),
		Mentions:    mentions,
	}

	reply, err := b.port.HandleCommand(ctx, req)
	if err != nil {
		b.logger.Error("command failed", "command", command, "channel", m.ChannelID, "error", err)
		b.sendReply(m, inbound.Reply{Text: genericFailure, Level: inbound.ReplyError})
		return
	}
	if !reply.IsZero() {
		b.sendReply(m, reply)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	data := i.MessageComponentData()

	user := i.User
	isAdmin := false
	if i.Member != nil {
		user = i.Member.User
		isAdmin = i.Member.Permissions&discordgo.PermissionAdministrator != 0
	}
	if user == nil {
		return
	}

	ctx := context.Background()
	req := inbound.ComponentRequest{
		CustomID:    data.CustomID,
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		ChannelName: b.channelName(i.ChannelID),
		UserID:      user.ID,
		UserName:    user.Username,
		IsAdmin:     isAdmin,
	}

	switch {
	case strings.HasPrefix(data.CustomID, inbound.ComponentTicketPrefix):
		// Channel creation can outlive the 3s interaction window; defer and
		// follow up.
		b.ack(i, discordgo.InteractionResponseDeferredChannelMessageWithSource, true)
		reply, err := b.port.HandleComponent(ctx, req)
		if err != nil {
			b.logger.Error("component failed", "customID", data.CustomID, "error", err)
			reply = inbound.Reply{Text: genericFailure, Level: inbound.ReplyError}
		}
		b.followupEphemeral(i, reply)

	case data.CustomID == inbound.ComponentCancelClose:
		reply, err := b.port.HandleComponent(ctx, req)
		if err != nil {
			b.logger.Error("component failed", "customID", data.CustomID, "error", err)
			reply = inbound.Reply{Text: genericFailure, Level: inbound.ReplyError}
		}
		// Replace the prompt so the stale buttons disappear.
		respErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    renderReply(reply),
				Embeds:     []*discordgo.MessageEmbed{},
				Components: []discordgo.MessageComponent{},
			},
		})
		if respErr != nil {
			b.logger.Error("interaction respond failed", "customID", data.CustomID, "error", respErr)
		}

	case data.CustomID == inbound.ComponentRequestClose,
		data.CustomID == inbound.ComponentConfirmClose:
		b.ack(i, discordgo.InteractionResponseDeferredMessageUpdate, false)
		reply, err := b.port.HandleComponent(ctx, req)
		if err != nil {
			b.logger.Error("component failed", "customID", data.CustomID, "error", err)
			reply = inbound.Reply{Text: genericFailure, Level: inbound.ReplyError}
		}
		if !reply.IsZero() {
			b.followupEphemeral(i, reply)
		}

	default:
		// Unmatched identifiers are acknowledged and ignored.
		b.ack(i, discordgo.InteractionResponseDeferredMessageUpdate, false)
	}
}

func (b *Bot) ack(i *discordgo.InteractionCreate, typ discordgo.InteractionResponseType, ephemeral bool) {
	resp := &discordgo.InteractionResponse{Type: typ}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := b.session.InteractionRespond(i.Interaction, resp); err != nil {
		b.logger.Error("interaction ack failed", "error", err)
	}
}

func (b *Bot) followupEphemeral(i *discordgo.InteractionCreate, reply inbound.Reply) {
	if reply.IsZero() {
		reply = inbound.Reply{Text: "Done.", Level: inbound.ReplySuccess}
	}
	_, err := b.session.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: renderReply(reply),
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		b.logger.Error("interaction followup failed", "error", err)
	}
}

func (b *Bot) sendReply(m *discordgo.MessageCreate, reply inbound.Reply) {
	_, err := b.session.ChannelMessageSendReply(m.ChannelID, renderReply(reply), m.Reference())
	if err != nil {
		b.logger.Error("send reply failed", "channel", m.ChannelID, "error", err)
	}
}

// channelName resolves the channel name, preferring the gateway state cache.
func (b *Bot) channelName(channelID string) string {
	if ch, err := b.session.State.Channel(channelID); err == nil {
		return ch.Name
	}
	ch, err := b.session.Channel(channelID)
	if err != nil {
		return ""
	}
	return ch.Name
}

func (b *Bot) isAdmin(userID, channelID string) bool {
	perms, err := b.session.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionAdministrator != 0
}

// renderReply prefixes the reply text with a level marker.
func renderReply(reply inbound.Reply) string {
	switch reply.Level {
	case inbound.ReplyError:
		return "❌ " + reply.Text
	case inbound.ReplySuccess:
		return "✅ " + reply.Text
	default:
		return reply.Text
	}
}
