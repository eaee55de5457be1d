package model

import "time"

type TicketState string

const (
	TicketStateOpen    TicketState = "open"
	TicketStateClaimed TicketState = "claimed"
	TicketStateClosing TicketState = "closing"
	TicketStateClosed  TicketState = "closed"
)

// Ticket is one support/request thread backed by a private channel. The
// channel ID is the identity; the channel object itself is owned by the
// platform and referenced by ID only.
type Ticket struct {
	ChannelID string      `json:"channel_id"`
	OwnerID   string      `json:"owner_id"`
	OwnerName string      `json:"owner_name"`
	Type      TypeKey     `json:"type"`
	State     TicketState `json:"state"`
	ClaimedBy string      `json:"claimed_by"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewTicket creates an open, unclaimed Ticket for the given channel.
func NewTicket(channelID, ownerID, ownerName string, typ TypeKey) Ticket {
	return Ticket{
		ChannelID: channelID,
		OwnerID:   ownerID,
		OwnerName: ownerName,
		Type:      typ,
		State:     TicketStateOpen,
		CreatedAt: time.Now().UTC(),
	}
}

// Claim transitions open -> claimed. Any other starting state is a conflict.
func (t Ticket) Claim(userID string) (Ticket, error) {
	switch t.State {
	case TicketStateOpen:
		t.State = TicketStateClaimed
		t.ClaimedBy = userID
		return t, nil
	case TicketStateClaimed:
		return t, ErrAlreadyClaimed
	default:
		return t, ErrInvalidTransition
	}
}

// Unclaim transitions claimed -> open and clears the claimer.
func (t Ticket) Unclaim() (Ticket, error) {
	if t.State != TicketStateClaimed {
		return t, ErrNotClaimed
	}
	t.State = TicketStateOpen
	t.ClaimedBy = ""
	return t, nil
}

// BeginClose transitions open|claimed -> closing. The claimer is retained so
// a cancelled close can restore the claimed state.
func (t Ticket) BeginClose() (Ticket, error) {
	switch t.State {
	case TicketStateOpen, TicketStateClaimed:
		t.State = TicketStateClosing
		return t, nil
	case TicketStateClosing:
		return t, ErrClosePending
	default:
		return t, ErrInvalidTransition
	}
}

// CancelClose reverts closing to the state implied by the recorded claimer.
func (t Ticket) CancelClose() (Ticket, error) {
	if t.State != TicketStateClosing {
		return t, ErrNoClosePending
	}
	if t.ClaimedBy != "" {
		t.State = TicketStateClaimed
	} else {
		t.State = TicketStateOpen
	}
	return t, nil
}

// IsOpen reports whether the ticket still accepts lifecycle commands.
func (t Ticket) IsOpen() bool {
	return t.State != TicketStateClosed
}
