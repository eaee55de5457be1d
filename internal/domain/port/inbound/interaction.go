package inbound

import "context"

// InteractionPort handles user interactions delivered by the chat platform
// adapter: prefix commands from messages and button presses from components.
type InteractionPort interface {
	HandleCommand(ctx context.Context, req CommandRequest) (Reply, error)
	HandleComponent(ctx context.Context, req ComponentRequest) (Reply, error)
}

// CommandRequest is a parsed prefix command. Command is lowercased; Args are
// the remaining whitespace-separated tokens.
type CommandRequest struct {
	Command     string
	Args        []string
	GuildID     string
	ChannelID   string
	ChannelName string
	UserID      string
	UserName    string
	IsAdmin     bool
	Mentions    []string
}

// ComponentRequest is a button press identified by its opaque custom ID.
type ComponentRequest struct {
	CustomID    string
	GuildID     string
	ChannelID   string
	ChannelName string
	UserID      string
	UserName    string
	IsAdmin     bool
}

type ReplyLevel string

const (
	ReplySuccess ReplyLevel = "success"
	ReplyError   ReplyLevel = "error"
	ReplyInfo    ReplyLevel = "info"
)

// Reply is the ephemeral response shown to the invoking user. A zero Reply
// means the input was ignored and nothing should be sent.
type Reply struct {
	Text  string
	Level ReplyLevel
}

// IsZero reports whether the reply carries no text to deliver.
func (r Reply) IsZero() bool {
	return r.Text == ""
}
