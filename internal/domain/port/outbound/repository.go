package outbound

import (
	"context"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

// TicketRepository is the sole owner of Ticket records. State transitions are
// atomic: implementations validate the transition and apply it as one
// check-and-set, so two concurrent claims cannot both succeed.
//
// Storage is process-lifetime only; tickets are lost on restart.
type TicketRepository interface {
	Create(ctx context.Context, t model.Ticket) (model.Ticket, error)
	Get(ctx context.Context, channelID string) (model.Ticket, error)
	Delete(ctx context.Context, channelID string) error
	List(ctx context.Context) ([]model.Ticket, error)

	// FindOpenByOwner returns an existing non-closed ticket for the owner and
	// type, or model.ErrNotFound.
	FindOpenByOwner(ctx context.Context, ownerID string, typ model.TypeKey) (model.Ticket, error)

	Claim(ctx context.Context, channelID, userID string) (model.Ticket, error)
	Unclaim(ctx context.Context, channelID string) (model.Ticket, error)
	BeginClose(ctx context.Context, channelID string) (model.Ticket, error)
	CancelClose(ctx context.Context, channelID string) (model.Ticket, error)
}
