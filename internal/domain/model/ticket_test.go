package model

import (
	"errors"
	"testing"
)

func TestNewTicket(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypeSupport)

	if tk.State != TicketStateOpen {
		t.Errorf("expected state open, got %s", tk.State)
	}
	if tk.ClaimedBy != "" {
		t.Errorf("expected no claimer, got %q", tk.ClaimedBy)
	}
	if tk.Type != TypeSupport {
		t.Errorf("expected type support, got %s", tk.Type)
	}
	if tk.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestTicketClaim(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypeSupport)

	claimed, err := tk.Claim("staff-1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.State != TicketStateClaimed {
		t.Errorf("expected state claimed, got %s", claimed.State)
	}
	if claimed.ClaimedBy != "staff-1" {
		t.Errorf("expected claimer staff-1, got %q", claimed.ClaimedBy)
	}

	// A second claim is rejected regardless of actor.
	if _, err := claimed.Claim("staff-2"); !errors.Is(err, ErrAlreadyClaimed) {
		t.Errorf("expected ErrAlreadyClaimed, got %v", err)
	}
}

func TestTicketUnclaim(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypeMiddleman)

	if _, err := tk.Unclaim(); !errors.Is(err, ErrNotClaimed) {
		t.Errorf("expected ErrNotClaimed on open ticket, got %v", err)
	}

	claimed, _ := tk.Claim("staff-1")
	open, err := claimed.Unclaim()
	if err != nil {
		t.Fatalf("unclaim: %v", err)
	}
	if open.State != TicketStateOpen {
		t.Errorf("expected state open, got %s", open.State)
	}
	if open.ClaimedBy != "" {
		t.Errorf("expected claimer cleared, got %q", open.ClaimedBy)
	}

	// Claim succeeds again after unclaim.
	if _, err := open.Claim("staff-2"); err != nil {
		t.Errorf("reclaim after unclaim: %v", err)
	}
}

func TestTicketCloseFlow(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypePartnership)

	closing, err := tk.BeginClose()
	if err != nil {
		t.Fatalf("begin close: %v", err)
	}
	if closing.State != TicketStateClosing {
		t.Errorf("expected state closing, got %s", closing.State)
	}

	if _, err := closing.BeginClose(); !errors.Is(err, ErrClosePending) {
		t.Errorf("expected ErrClosePending, got %v", err)
	}

	// Cancel reverts to open when unclaimed.
	reverted, err := closing.CancelClose()
	if err != nil {
		t.Fatalf("cancel close: %v", err)
	}
	if reverted.State != TicketStateOpen {
		t.Errorf("expected state open after cancel, got %s", reverted.State)
	}
}

func TestTicketCancelCloseRestoresClaim(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypeSupport)
	claimed, _ := tk.Claim("staff-1")
	closing, _ := claimed.BeginClose()

	reverted, err := closing.CancelClose()
	if err != nil {
		t.Fatalf("cancel close: %v", err)
	}
	if reverted.State != TicketStateClaimed {
		t.Errorf("expected state claimed after cancel, got %s", reverted.State)
	}
	if reverted.ClaimedBy != "staff-1" {
		t.Errorf("expected claimer retained, got %q", reverted.ClaimedBy)
	}
}

func TestTicketCancelCloseWithoutPending(t *testing.T) {
	tk := NewTicket("chan-1", "user-1", "alice", TypeSupport)
	if _, err := tk.CancelClose(); !errors.Is(err, ErrNoClosePending) {
		t.Errorf("expected ErrNoClosePending, got %v", err)
	}
}

func TestTypeByKey(t *testing.T) {
	for _, key := range []TypeKey{TypePartnership, TypeMiddleman, TypeSupport} {
		typ, err := TypeByKey(key)
		if err != nil {
			t.Errorf("TypeByKey(%s): %v", key, err)
		}
		if typ.Key != key {
			t.Errorf("expected key %s, got %s", key, typ.Key)
		}
		if typ.DisplayName == "" || typ.Description == "" {
			t.Errorf("type %s missing display metadata", key)
		}
	}

	if _, err := TypeByKey("billing"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestTypesStableOrder(t *testing.T) {
	types := Types()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	want := []TypeKey{TypePartnership, TypeMiddleman, TypeSupport}
	for i, typ := range types {
		if typ.Key != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], typ.Key)
		}
	}
}
