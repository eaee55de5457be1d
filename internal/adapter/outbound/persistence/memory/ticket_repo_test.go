package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

func TestTicketRepoCreateGet(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	ticket := model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport)
	if _, err := repo.Create(ctx, ticket); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "chan-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != model.TypeSupport || got.OwnerID != "user-1" {
		t.Errorf("unexpected ticket: %+v", got)
	}

	if _, err := repo.Create(ctx, ticket); !errors.Is(err, model.ErrDuplicateTicket) {
		t.Errorf("expected ErrDuplicateTicket, got %v", err)
	}

	if _, err := repo.Get(ctx, "chan-unknown"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestTicketRepoDelete(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))
	if err := repo.Delete(ctx, "chan-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "chan-1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent entry is a no-op.
	if err := repo.Delete(ctx, "chan-1"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestTicketRepoFindOpenByOwner(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))
	_, _ = repo.Create(ctx, model.NewTicket("chan-2", "user-1", "alice", model.TypeMiddleman))

	got, err := repo.FindOpenByOwner(ctx, "user-1", model.TypeSupport)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ChannelID != "chan-1" {
		t.Errorf("expected chan-1, got %s", got.ChannelID)
	}

	if _, err := repo.FindOpenByOwner(ctx, "user-2", model.TypeSupport); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other owner, got %v", err)
	}
	if _, err := repo.FindOpenByOwner(ctx, "user-1", model.TypePartnership); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound for other type, got %v", err)
	}
}

func TestTicketRepoClaimTransitions(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))

	claimed, err := repo.Claim(ctx, "chan-1", "staff-1")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.ClaimedBy != "staff-1" || claimed.State != model.TicketStateClaimed {
		t.Errorf("unexpected ticket after claim: %+v", claimed)
	}

	if _, err := repo.Claim(ctx, "chan-1", "staff-2"); !errors.Is(err, model.ErrAlreadyClaimed) {
		t.Errorf("expected ErrAlreadyClaimed, got %v", err)
	}

	open, err := repo.Unclaim(ctx, "chan-1")
	if err != nil {
		t.Fatalf("unclaim: %v", err)
	}
	if open.ClaimedBy != "" || open.State != model.TicketStateOpen {
		t.Errorf("unexpected ticket after unclaim: %+v", open)
	}

	if _, err := repo.Claim(ctx, "chan-unknown", "staff-1"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// Two racing claims on the same unclaimed ticket: exactly one wins, the other
// observes the claimed state. No error escapes besides ErrAlreadyClaimed.
func TestTicketRepoConcurrentClaims(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, staff := range []string{"staff-1", "staff-2"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := repo.Claim(ctx, "chan-1", id)
			results <- err
		}(staff)
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, model.ErrAlreadyClaimed):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Errorf("expected exactly one winner and one conflict, got %d/%d", wins, conflicts)
	}

	final, _ := repo.Get(ctx, "chan-1")
	if final.ClaimedBy != "staff-1" && final.ClaimedBy != "staff-2" {
		t.Errorf("unexpected final claimer %q", final.ClaimedBy)
	}
}

func TestTicketRepoCloseFlow(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))

	closing, err := repo.BeginClose(ctx, "chan-1")
	if err != nil {
		t.Fatalf("begin close: %v", err)
	}
	if closing.State != model.TicketStateClosing {
		t.Errorf("expected closing, got %s", closing.State)
	}

	if _, err := repo.BeginClose(ctx, "chan-1"); !errors.Is(err, model.ErrClosePending) {
		t.Errorf("expected ErrClosePending, got %v", err)
	}

	reverted, err := repo.CancelClose(ctx, "chan-1")
	if err != nil {
		t.Fatalf("cancel close: %v", err)
	}
	if reverted.State != model.TicketStateOpen {
		t.Errorf("expected open after cancel, got %s", reverted.State)
	}
}

func TestTicketRepoList(t *testing.T) {
	repo := NewTicketRepo()
	ctx := context.Background()

	_, _ = repo.Create(ctx, model.NewTicket("chan-1", "user-1", "alice", model.TypeSupport))
	_, _ = repo.Create(ctx, model.NewTicket("chan-2", "user-2", "bob", model.TypeMiddleman))
	_, _ = repo.Claim(ctx, "chan-2", "staff-1")

	tickets, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}

	claimed := 0
	for _, tk := range tickets {
		if tk.State == model.TicketStateClaimed {
			claimed++
		}
	}
	if claimed != 1 {
		t.Errorf("expected 1 claimed ticket, got %d", claimed)
	}
}
