package memory

import (
	"context"
	"sync"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

// TicketRepo is a process-lifetime TicketRepository keyed by channel ID.
// All transitions run under one mutex so check-and-set is atomic even though
// the platform library dispatches events on separate goroutines.
type TicketRepo struct {
	mu      sync.RWMutex
	tickets map[string]model.Ticket
}

// NewTicketRepo creates an empty TicketRepo.
func NewTicketRepo() *TicketRepo {
	return &TicketRepo{tickets: make(map[string]model.Ticket)}
}

var _ outbound.TicketRepository = (*TicketRepo)(nil)

func (r *TicketRepo) Create(_ context.Context, t model.Ticket) (model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tickets[t.ChannelID]; exists {
		return model.Ticket{}, model.ErrDuplicateTicket
	}
	r.tickets[t.ChannelID] = t
	return t, nil
}

func (r *TicketRepo) Get(_ context.Context, channelID string) (model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tickets[channelID]
	if !ok {
		return model.Ticket{}, model.ErrNotFound
	}
	return t, nil
}

func (r *TicketRepo) Delete(_ context.Context, channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tickets, channelID)
	return nil
}

func (r *TicketRepo) List(_ context.Context) ([]model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		out = append(out, t)
	}
	return out, nil
}

func (r *TicketRepo) FindOpenByOwner(_ context.Context, ownerID string, typ model.TypeKey) (model.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tickets {
		if t.OwnerID == ownerID && t.Type == typ && t.IsOpen() {
			return t, nil
		}
	}
	return model.Ticket{}, model.ErrNotFound
}

// Claim atomically transitions open -> claimed. Of two racing claims exactly
// one succeeds; the other observes the claimed state and gets ErrAlreadyClaimed.
func (r *TicketRepo) Claim(_ context.Context, channelID, userID string) (model.Ticket, error) {
	return r.transition(channelID, func(t model.Ticket) (model.Ticket, error) {
		return t.Claim(userID)
	})
}

func (r *TicketRepo) Unclaim(_ context.Context, channelID string) (model.Ticket, error) {
	return r.transition(channelID, model.Ticket.Unclaim)
}

func (r *TicketRepo) BeginClose(_ context.Context, channelID string) (model.Ticket, error) {
	return r.transition(channelID, model.Ticket.BeginClose)
}

func (r *TicketRepo) CancelClose(_ context.Context, channelID string) (model.Ticket, error) {
	return r.transition(channelID, model.Ticket.CancelClose)
}

func (r *TicketRepo) transition(channelID string, fn func(model.Ticket) (model.Ticket, error)) (model.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[channelID]
	if !ok {
		return model.Ticket{}, model.ErrNotFound
	}
	next, err := fn(t)
	if err != nil {
		return t, err
	}
	r.tickets[channelID] = next
	return next, nil
}
