package slack

import (
	"strings"
	"testing"

	slackapi "github.com/slack-go/slack"

	"github.com/jonny/ticketsbot/internal/domain/port/outbound"
)

func TestBuildTicketEventBlocks(t *testing.T) {
	ev := outbound.TicketEvent{
		ChannelName: "ticket-alice-support",
		Type:        "support",
		Actor:       "alice",
	}

	blocks := BuildTicketEventBlocks("Ticket Opened", ":ticket:", ev)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	header, ok := blocks[0].(*slackapi.SectionBlock)
	if !ok {
		t.Fatalf("expected section header, got %T", blocks[0])
	}
	if !strings.Contains(header.Text.Text, "Ticket Opened") || !strings.Contains(header.Text.Text, ":ticket:") {
		t.Errorf("unexpected header text %q", header.Text.Text)
	}

	fields, ok := blocks[1].(*slackapi.SectionBlock)
	if !ok {
		t.Fatalf("expected section fields, got %T", blocks[1])
	}
	if len(fields.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields.Fields))
	}
	wantSubstrings := []string{"ticket-alice-support", "support", "alice"}
	for i, f := range fields.Fields {
		if !strings.Contains(f.Text, wantSubstrings[i]) {
			t.Errorf("field %d = %q, want substring %q", i, f.Text, wantSubstrings[i])
		}
	}
}

func TestNewNotifierImplementsPort(t *testing.T) {
	n := NewNotifier(Config{BotToken: "xoxb-test", Channel: "#ops"})
	var _ outbound.Notifier = n
	if n.config.Channel != "#ops" {
		t.Errorf("channel not retained: %q", n.config.Channel)
	}
}
