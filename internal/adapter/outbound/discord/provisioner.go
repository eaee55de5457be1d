package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

const ticketMemberPermissions = discordgo.PermissionViewChannel |
	discordgo.PermissionSendMessages |
	discordgo.PermissionReadMessageHistory

// Provisioner implements outbound.Provisioner over the Discord REST API.
type Provisioner struct {
	session *discordgo.Session
}

// NewProvisioner wraps an existing session; the session's lifecycle is owned
// by the caller.
func NewProvisioner(session *discordgo.Session) *Provisioner {
	return &Provisioner{session: session}
}

var _ outbound.Provisioner = (*Provisioner)(nil)

// EnsureCategory finds the named category, creating it when absent.
func (p *Provisioner) EnsureCategory(ctx context.Context, guildID, name string) (string, error) {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("list guild channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == name {
			return ch.ID, nil
		}
	}

	created, err := p.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("create category %q: %w", name, err)
	}
	return created.ID, nil
}

// CreateTicketChannel creates a private text channel under the category,
// hidden from @everyone and visible to the owner. Staff visibility comes from
// the guild's own role permissions.
func (p *Provisioner) CreateTicketChannel(ctx context.Context, params outbound.CreateTicketChannelParams) (outbound.ChannelInfo, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			// The @everyone role shares the guild ID.
			ID:   params.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    params.OwnerID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: ticketMemberPermissions,
		},
	}

	ch, err := p.session.GuildChannelCreateComplex(params.GuildID, discordgo.GuildChannelCreateData{
		Name:                 params.Name,
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             params.CategoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return outbound.ChannelInfo{}, fmt.Errorf("create channel %q: %w", params.Name, err)
	}
	return outbound.ChannelInfo{ID: ch.ID, Name: ch.Name}, nil
}

func (p *Provisioner) RenameChannel(ctx context.Context, channelID, name string) error {
	_, err := p.session.ChannelEdit(channelID, &discordgo.ChannelEdit{Name: name}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("edit channel %s: %w", channelID, err)
	}
	return nil
}

func (p *Provisioner) DeleteChannel(ctx context.Context, channelID string) error {
	if _, err := p.session.ChannelDelete(channelID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete channel %s: %w", channelID, err)
	}
	return nil
}

func (p *Provisioner) GrantAccess(ctx context.Context, channelID, userID string) error {
	err := p.session.ChannelPermissionSet(channelID, userID,
		discordgo.PermissionOverwriteTypeMember, ticketMemberPermissions, 0,
		discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("set permission overwrite for %s: %w", userID, err)
	}
	return nil
}

func (p *Provisioner) RevokeAccess(ctx context.Context, channelID, userID string) error {
	if err := p.session.ChannelPermissionDelete(channelID, userID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("delete permission overwrite for %s: %w", userID, err)
	}
	return nil
}

func (p *Provisioner) ResolveUser(ctx context.Context, userID string) (outbound.User, error) {
	user, err := p.session.User(userID, discordgo.WithContext(ctx))
	if err != nil {
		return outbound.User{}, fmt.Errorf("fetch user %s: %w", userID, err)
	}
	return outbound.User{ID: user.ID, Username: user.Username}, nil
}

func (p *Provisioner) FindChannelByName(ctx context.Context, guildID, name string) (outbound.ChannelInfo, error) {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return outbound.ChannelInfo{}, fmt.Errorf("list guild channels: %w", err)
	}
	for _, ch := range channels {
		if ch.Name == name {
			return outbound.ChannelInfo{ID: ch.ID, Name: ch.Name}, nil
		}
	}
	return outbound.ChannelInfo{}, model.ErrNotFound
}

func (p *Provisioner) ListChannelsByPrefix(ctx context.Context, guildID, prefix string) ([]outbound.ChannelInfo, error) {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list guild channels: %w", err)
	}
	var out []outbound.ChannelInfo
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && strings.HasPrefix(ch.Name, prefix) {
			out = append(out, outbound.ChannelInfo{ID: ch.ID, Name: ch.Name})
		}
	}
	return out, nil
}
