package outbound

import "context"

// ChannelInfo references a platform channel by ID and current name.
type ChannelInfo struct {
	ID   string
	Name string
}

// User references a resolved platform user.
type User struct {
	ID       string
	Username string
}

// CreateTicketChannelParams describes a private ticket channel to provision.
// The channel is visible to the owner only; staff visibility comes from the
// server's default permission model.
type CreateTicketChannelParams struct {
	GuildID    string
	Name       string
	CategoryID string
	OwnerID    string
}

// Provisioner owns all channel and permission mutations against the chat
// platform. Implementations perform no retries; failures surface to the
// caller.
type Provisioner interface {
	// EnsureCategory finds the named category in the guild, creating it if
	// absent, and returns its ID.
	EnsureCategory(ctx context.Context, guildID, name string) (string, error)

	CreateTicketChannel(ctx context.Context, p CreateTicketChannelParams) (ChannelInfo, error)
	RenameChannel(ctx context.Context, channelID, name string) error
	DeleteChannel(ctx context.Context, channelID string) error

	// GrantAccess gives a user view/send/read-history on a channel.
	// RevokeAccess removes the user's overwrite entirely.
	GrantAccess(ctx context.Context, channelID, userID string) error
	RevokeAccess(ctx context.Context, channelID, userID string) error

	// ResolveUser looks a user up by raw ID. Unknown IDs return an error.
	ResolveUser(ctx context.Context, userID string) (User, error)

	// FindChannelByName returns the first guild channel with the exact name,
	// or model.ErrNotFound.
	FindChannelByName(ctx context.Context, guildID, name string) (ChannelInfo, error)

	// ListChannelsByPrefix returns all guild text channels whose name starts
	// with the given prefix.
	ListChannelsByPrefix(ctx context.Context, guildID, prefix string) ([]ChannelInfo, error)
}
