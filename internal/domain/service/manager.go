package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

const claimedSuffix = "-claimed"

// ManagerConfig holds the naming conventions and close behavior.
type ManagerConfig struct {
	// CategoryName is the provisioning container under which ticket channels
	// are created.
	CategoryName string
	// LogChannelName is the audit log destination, resolved by name on every
	// close; tickets close fine without it.
	LogChannelName string
	// CloseDelay is the grace period between the closing announcement and the
	// channel deletion.
	CloseDelay time.Duration
	// Schedule runs fn after d. Nil defaults to time.AfterFunc; tests inject
	// a synchronous version.
	Schedule func(d time.Duration, fn func())
}

// Manager owns the ticket lifecycle: open, claim/unclaim, participant
// changes, rename, the two-step close, and stats. It implements
// inbound.InteractionPort.
type Manager struct {
	cfg      ManagerConfig
	repo     outbound.TicketRepository
	prov     outbound.Provisioner
	msgr     outbound.Messenger
	notifier outbound.Notifier
	logger   *slog.Logger
	router   *Router
	schedule func(d time.Duration, fn func())
}

var _ inbound.InteractionPort = (*Manager)(nil)

// NewManager creates a Manager and registers its command table.
func NewManager(
	cfg ManagerConfig,
	repo outbound.TicketRepository,
	prov outbound.Provisioner,
	msgr outbound.Messenger,
	notifier outbound.Notifier,
	logger *slog.Logger,
) *Manager {
	m := &Manager{
		cfg:      cfg,
		repo:     repo,
		prov:     prov,
		msgr:     msgr,
		notifier: notifier,
		logger:   logger,
		router:   NewRouter(),
		schedule: cfg.Schedule,
	}
	if m.schedule == nil {
		m.schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}

	m.router.register(commandSpec{name: "help", handler: m.cmdHelp})
	m.router.register(commandSpec{name: "setup", requireAdmin: true, handler: m.cmdSetup})
	m.router.register(commandSpec{name: "new", handler: m.cmdNew})
	m.router.register(commandSpec{name: "close", requireTicket: true, handler: m.cmdClose})
	m.router.register(commandSpec{name: "claim", requireTicket: true, handler: m.cmdClaim})
	m.router.register(commandSpec{name: "unclaim", requireTicket: true, handler: m.cmdUnclaim})
	m.router.register(commandSpec{name: "add", requireTicket: true, handler: m.cmdAdd})
	m.router.register(commandSpec{name: "remove", requireTicket: true, handler: m.cmdRemove})
	m.router.register(commandSpec{name: "rename", requireTicket: true, handler: m.cmdRename})
	m.router.register(commandSpec{name: "stats", handler: m.cmdStats})

	return m
}

// HandleCommand implements inbound.InteractionPort.
func (m *Manager) HandleCommand(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	return m.router.Dispatch(ctx, req)
}

// HandleComponent implements inbound.InteractionPort. Unmatched custom IDs
// are ignored.
func (m *Manager) HandleComponent(ctx context.Context, req inbound.ComponentRequest) (inbound.Reply, error) {
	switch {
	case strings.HasPrefix(req.CustomID, inbound.ComponentTicketPrefix):
		key := model.TypeKey(strings.TrimPrefix(req.CustomID, inbound.ComponentTicketPrefix))
		return m.openTicket(ctx, req.GuildID, req.UserID, req.UserName, key)

	case req.CustomID == inbound.ComponentRequestClose:
		if !strings.HasPrefix(req.ChannelName, TicketChannelPrefix) {
			return inbound.Reply{}, nil
		}
		return m.requestClose(ctx, req.ChannelID)

	case req.CustomID == inbound.ComponentConfirmClose:
		if !strings.HasPrefix(req.ChannelName, TicketChannelPrefix) {
			return inbound.Reply{}, nil
		}
		return m.confirmClose(ctx, req)

	case req.CustomID == inbound.ComponentCancelClose:
		return m.cancelClose(ctx, req.ChannelID)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdHelp(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	err := m.msgr.SendHelp(ctx, outbound.HelpMessage{
		ChannelID:   req.ChannelID,
		RequestedBy: req.UserName,
	})
	if err != nil {
		return inbound.Reply{}, fmt.Errorf("send help: %w", err)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdSetup(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	if err := m.msgr.SendPanel(ctx, outbound.PanelMessage{ChannelID: req.ChannelID}); err != nil {
		return inbound.Reply{}, fmt.Errorf("send panel: %w", err)
	}
	return inbound.Reply{Text: "Ticket panel created successfully.", Level: inbound.ReplySuccess}, nil
}

func (m *Manager) cmdNew(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	if len(req.Args) == 0 {
		return invalidTypeReply(), nil
	}
	key := model.TypeKey(strings.ToLower(req.Args[0]))
	return m.openTicket(ctx, req.GuildID, req.UserID, req.UserName, key)
}

// openTicket provisions the channel and registers the ticket. Both the `new`
// command and the panel buttons land here.
func (m *Manager) openTicket(ctx context.Context, guildID, userID, userName string, key model.TypeKey) (inbound.Reply, error) {
	typ, err := model.TypeByKey(key)
	if err != nil {
		return invalidTypeReply(), nil
	}

	if existing, err := m.repo.FindOpenByOwner(ctx, userID, key); err == nil {
		return inbound.Reply{
			Text:  fmt.Sprintf("You already have an open %s ticket: <#%s>.", typ.DisplayName, existing.ChannelID),
			Level: inbound.ReplyError,
		}, nil
	}

	categoryID, err := m.prov.EnsureCategory(ctx, guildID, m.cfg.CategoryName)
	if err != nil {
		return inbound.Reply{}, fmt.Errorf("ensure category %q: %w", m.cfg.CategoryName, err)
	}

	name := TicketChannelPrefix + slug(userName) + "-" + string(key)
	ch, err := m.prov.CreateTicketChannel(ctx, outbound.CreateTicketChannelParams{
		GuildID:    guildID,
		Name:       name,
		CategoryID: categoryID,
		OwnerID:    userID,
	})
	if err != nil {
		return inbound.Reply{}, fmt.Errorf("create ticket channel %q: %w", name, err)
	}

	ticket := model.NewTicket(ch.ID, userID, userName, key)
	if _, err := m.repo.Create(ctx, ticket); err != nil {
		return inbound.Reply{}, fmt.Errorf("register ticket %s: %w", ch.ID, err)
	}

	if err := m.msgr.SendWelcome(ctx, outbound.WelcomeMessage{
		ChannelID: ch.ID,
		OwnerID:   userID,
		OwnerName: userName,
		Type:      typ,
	}); err != nil {
		m.logger.Error("welcome message failed", "channel", ch.ID, "error", err)
	}

	if err := m.notifier.NotifyTicketOpened(ctx, outbound.TicketEvent{
		ChannelName: ch.Name,
		Type:        string(key),
		Actor:       userName,
	}); err != nil {
		m.logger.Error("open notification failed", "channel", ch.ID, "error", err)
	}

	return inbound.Reply{
		Text:  fmt.Sprintf("Ticket created: <#%s>.", ch.ID),
		Level: inbound.ReplySuccess,
	}, nil
}

func (m *Manager) cmdClaim(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	ticket, err := m.repo.Claim(ctx, req.ChannelID, req.UserID)
	switch {
	case errors.Is(err, model.ErrAlreadyClaimed):
		return inbound.Reply{Text: "This ticket is already claimed.", Level: inbound.ReplyError}, nil
	case errors.Is(err, model.ErrNotFound):
		return untrackedReply(), nil
	case err != nil:
		return inbound.Reply{}, fmt.Errorf("claim ticket %s: %w", req.ChannelID, err)
	}

	if !strings.HasSuffix(req.ChannelName, claimedSuffix) {
		if err := m.prov.RenameChannel(ctx, req.ChannelID, req.ChannelName+claimedSuffix); err != nil {
			return inbound.Reply{}, fmt.Errorf("rename claimed channel: %w", err)
		}
	}

	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("Ticket claimed by <@%s>", ticket.ClaimedBy),
		Level:     outbound.AnnounceSuccess,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce claim: %w", err)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdUnclaim(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	ticket, err := m.repo.Get(ctx, req.ChannelID)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return untrackedReply(), nil
	case err != nil:
		return inbound.Reply{}, fmt.Errorf("get ticket %s: %w", req.ChannelID, err)
	}

	if ticket.State != model.TicketStateClaimed {
		return inbound.Reply{Text: "This ticket is not claimed.", Level: inbound.ReplyError}, nil
	}
	if ticket.ClaimedBy != req.UserID && !req.IsAdmin {
		return inbound.Reply{
			Text:  "Only the claimer or an administrator can unclaim this ticket.",
			Level: inbound.ReplyError,
		}, nil
	}

	if _, err := m.repo.Unclaim(ctx, req.ChannelID); err != nil {
		if errors.Is(err, model.ErrNotClaimed) {
			return inbound.Reply{Text: "This ticket is not claimed.", Level: inbound.ReplyError}, nil
		}
		return inbound.Reply{}, fmt.Errorf("unclaim ticket %s: %w", req.ChannelID, err)
	}

	if strings.HasSuffix(req.ChannelName, claimedSuffix) {
		if err := m.prov.RenameChannel(ctx, req.ChannelID, strings.TrimSuffix(req.ChannelName, claimedSuffix)); err != nil {
			return inbound.Reply{}, fmt.Errorf("rename unclaimed channel: %w", err)
		}
	}

	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("Ticket unclaimed by <@%s>", req.UserID),
		Level:     outbound.AnnounceInfo,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce unclaim: %w", err)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdAdd(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	user, reply := m.resolveTarget(ctx, req)
	if !reply.IsZero() {
		return reply, nil
	}
	if err := m.prov.GrantAccess(ctx, req.ChannelID, user.ID); err != nil {
		return inbound.Reply{}, fmt.Errorf("grant access for %s: %w", user.ID, err)
	}
	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("<@%s> has been added to the ticket", user.ID),
		Level:     outbound.AnnounceSuccess,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce add: %w", err)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdRemove(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	user, reply := m.resolveTarget(ctx, req)
	if !reply.IsZero() {
		return reply, nil
	}
	if err := m.prov.RevokeAccess(ctx, req.ChannelID, user.ID); err != nil {
		return inbound.Reply{}, fmt.Errorf("revoke access for %s: %w", user.ID, err)
	}
	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("<@%s> has been removed from the ticket", user.ID),
		Level:     outbound.AnnounceSuccess,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce remove: %w", err)
	}
	return inbound.Reply{}, nil
}

// resolveTarget picks the first mention, falling back to a raw ID lookup.
// A lookup failure is a rejection, not an error.
func (m *Manager) resolveTarget(ctx context.Context, req inbound.CommandRequest) (outbound.User, inbound.Reply) {
	var token string
	switch {
	case len(req.Mentions) > 0:
		token = req.Mentions[0]
	case len(req.Args) > 0:
		token = req.Args[0]
	default:
		return outbound.User{}, invalidUserReply()
	}

	user, err := m.prov.ResolveUser(ctx, token)
	if err != nil {
		return outbound.User{}, invalidUserReply()
	}
	return user, inbound.Reply{}
}

func (m *Manager) cmdRename(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	name := slug(strings.Join(req.Args, " "))
	if name == "" {
		return inbound.Reply{Text: "Please provide a new name for the ticket.", Level: inbound.ReplyError}, nil
	}

	newName := TicketChannelPrefix + name
	if err := m.prov.RenameChannel(ctx, req.ChannelID, newName); err != nil {
		return inbound.Reply{}, fmt.Errorf("rename channel %s: %w", req.ChannelID, err)
	}
	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("Ticket renamed to **%s**", newName),
		Level:     outbound.AnnounceSuccess,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce rename: %w", err)
	}
	return inbound.Reply{}, nil
}

func (m *Manager) cmdClose(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	return m.requestClose(ctx, req.ChannelID)
}

// requestClose starts the two-step close: transition to closing and post the
// confirm/cancel prompt. A missing state entry (bot restarted since open)
// still gets a prompt so the channel can be cleaned up.
func (m *Manager) requestClose(ctx context.Context, channelID string) (inbound.Reply, error) {
	_, err := m.repo.BeginClose(ctx, channelID)
	switch {
	case errors.Is(err, model.ErrClosePending):
		return inbound.Reply{Text: "A close confirmation is already pending.", Level: inbound.ReplyInfo}, nil
	case err != nil && !errors.Is(err, model.ErrNotFound):
		return inbound.Reply{}, fmt.Errorf("begin close %s: %w", channelID, err)
	}

	if err := m.msgr.SendClosePrompt(ctx, outbound.ClosePrompt{ChannelID: channelID}); err != nil {
		return inbound.Reply{}, fmt.Errorf("send close prompt: %w", err)
	}
	return inbound.Reply{}, nil
}

// confirmClose performs the close: announce, audit, notify, drop state, and
// schedule the channel deletion after the grace delay.
func (m *Manager) confirmClose(ctx context.Context, req inbound.ComponentRequest) (inbound.Reply, error) {
	typeName := "Unknown"
	ticket, err := m.repo.Get(ctx, req.ChannelID)
	switch {
	case err == nil:
		if ticket.State != model.TicketStateClosing {
			return inbound.Reply{
				Text:  "This close prompt has expired. Run close again.",
				Level: inbound.ReplyError,
			}, nil
		}
		typeName = string(ticket.Type)
	case !errors.Is(err, model.ErrNotFound):
		return inbound.Reply{}, fmt.Errorf("get ticket %s: %w", req.ChannelID, err)
	}

	if err := m.msgr.Announce(ctx, outbound.Announcement{
		ChannelID: req.ChannelID,
		Text:      fmt.Sprintf("Ticket closed by <@%s>", req.UserID),
		Level:     outbound.AnnounceDanger,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("announce close: %w", err)
	}

	if logCh, err := m.prov.FindChannelByName(ctx, req.GuildID, m.cfg.LogChannelName); err == nil {
		if err := m.msgr.SendCloseRecord(ctx, outbound.CloseRecord{
			LogChannelID: logCh.ID,
			ChannelName:  req.ChannelName,
			ClosedBy:     req.UserName,
			Type:         typeName,
		}); err != nil {
			m.logger.Error("close record failed", "channel", req.ChannelID, "error", err)
		}
	} else if !errors.Is(err, model.ErrNotFound) {
		m.logger.Error("audit log lookup failed", "error", err)
	}

	if err := m.notifier.NotifyTicketClosed(ctx, outbound.TicketEvent{
		ChannelName: req.ChannelName,
		Type:        typeName,
		Actor:       req.UserName,
	}); err != nil {
		m.logger.Error("close notification failed", "channel", req.ChannelID, "error", err)
	}

	if err := m.repo.Delete(ctx, req.ChannelID); err != nil {
		return inbound.Reply{}, fmt.Errorf("delete ticket state %s: %w", req.ChannelID, err)
	}

	// Fire and forget. If the channel was deleted manually in the meantime
	// the call fails harmlessly; state is gone either way.
	channelID := req.ChannelID
	m.schedule(m.cfg.CloseDelay, func() {
		if err := m.prov.DeleteChannel(context.Background(), channelID); err != nil {
			m.logger.Error("delayed channel deletion failed", "channel", channelID, "error", err)
		}
	})

	return inbound.Reply{}, nil
}

// cancelClose aborts a pending close with no state change beyond reverting
// the closing marker.
func (m *Manager) cancelClose(ctx context.Context, channelID string) (inbound.Reply, error) {
	_, err := m.repo.CancelClose(ctx, channelID)
	if err != nil && !errors.Is(err, model.ErrNotFound) && !errors.Is(err, model.ErrNoClosePending) {
		return inbound.Reply{}, fmt.Errorf("cancel close %s: %w", channelID, err)
	}
	return inbound.Reply{Text: "Ticket closure cancelled.", Level: inbound.ReplyInfo}, nil
}

// cmdStats snapshots channels matching the ticket convention against the
// claimed set. No history is kept.
func (m *Manager) cmdStats(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	channels, err := m.prov.ListChannelsByPrefix(ctx, req.GuildID, TicketChannelPrefix)
	if err != nil {
		return inbound.Reply{}, fmt.Errorf("list ticket channels: %w", err)
	}

	tickets, err := m.repo.List(ctx)
	if err != nil {
		return inbound.Reply{}, fmt.Errorf("list tickets: %w", err)
	}
	claimedSet := make(map[string]bool, len(tickets))
	for _, t := range tickets {
		if t.State == model.TicketStateClaimed {
			claimedSet[t.ChannelID] = true
		}
	}

	claimed := 0
	for _, ch := range channels {
		if claimedSet[ch.ID] {
			claimed++
		}
	}

	if err := m.msgr.SendStats(ctx, outbound.StatsMessage{
		ChannelID:   req.ChannelID,
		RequestedBy: req.UserName,
		Active:      len(channels),
		Claimed:     claimed,
		Unclaimed:   len(channels) - claimed,
	}); err != nil {
		return inbound.Reply{}, fmt.Errorf("send stats: %w", err)
	}
	return inbound.Reply{}, nil
}

func invalidTypeReply() inbound.Reply {
	return inbound.Reply{
		Text:  "Invalid ticket type. Use: `partnership`, `middleman`, or `support`.",
		Level: inbound.ReplyError,
	}
}

func invalidUserReply() inbound.Reply {
	return inbound.Reply{
		Text:  "Please mention a valid user or provide their ID.",
		Level: inbound.ReplyError,
	}
}

func untrackedReply() inbound.Reply {
	return inbound.Reply{
		Text:  "This ticket is not tracked; it may predate a bot restart.",
		Level: inbound.ReplyError,
	}
}

// slug normalizes a name fragment for use in a channel name: lowercase,
// dash-separated, stripped of anything outside [a-z0-9-].
func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
