package service

import (
	"context"
	"strings"

	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
)

// TicketChannelPrefix is the naming convention that marks a channel as a
// ticket. It is the only persistent trace of a ticket besides the in-memory
// store.
const TicketChannelPrefix = "ticket-"

type commandHandler func(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error)

// commandSpec declares a command together with its preconditions, so
// validation happens in one place instead of inside every handler.
type commandSpec struct {
	name          string
	requireAdmin  bool
	requireTicket bool
	handler       commandHandler
}

// Router maps command names to handlers. Unknown commands are silently
// ignored: Dispatch returns a zero Reply and no error.
type Router struct {
	commands map[string]commandSpec
}

func NewRouter() *Router {
	return &Router{commands: make(map[string]commandSpec)}
}

func (r *Router) register(spec commandSpec) {
	r.commands[spec.name] = spec
}

// Dispatch validates the declared preconditions and invokes the handler.
func (r *Router) Dispatch(ctx context.Context, req inbound.CommandRequest) (inbound.Reply, error) {
	spec, ok := r.commands[strings.ToLower(req.Command)]
	if !ok {
		return inbound.Reply{}, nil
	}
	if spec.requireAdmin && !req.IsAdmin {
		return inbound.Reply{
			Text:  "You need Administrator permission to use this command.",
			Level: inbound.ReplyError,
		}, nil
	}
	if spec.requireTicket && !strings.HasPrefix(req.ChannelName, TicketChannelPrefix) {
		return inbound.Reply{
			Text:  "This command can only be used in ticket channels.",
			Level: inbound.ReplyError,
		}, nil
	}
	return spec.handler(ctx, req)
}
