package template

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

func buttonsOf(t *testing.T, components []discordgo.MessageComponent) []discordgo.Button {
	t.Helper()
	if len(components) != 1 {
		t.Fatalf("expected a single actions row, got %d components", len(components))
	}
	row, ok := components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("expected ActionsRow, got %T", components[0])
	}
	buttons := make([]discordgo.Button, 0, len(row.Components))
	for _, c := range row.Components {
		btn, ok := c.(discordgo.Button)
		if !ok {
			t.Fatalf("expected Button, got %T", c)
		}
		buttons = append(buttons, btn)
	}
	return buttons
}

func TestBuildPanel(t *testing.T) {
	embed, components := BuildPanel()

	if embed.Title == "" {
		t.Error("panel embed has no title")
	}
	if len(embed.Fields) != 3 {
		t.Errorf("expected 3 type fields, got %d", len(embed.Fields))
	}

	buttons := buttonsOf(t, components)
	if len(buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(buttons))
	}
	want := []string{"ticket_partnership", "ticket_middleman", "ticket_support"}
	for i, btn := range buttons {
		if btn.CustomID != want[i] {
			t.Errorf("button %d: custom ID %q, want %q", i, btn.CustomID, want[i])
		}
		if btn.Label == "" {
			t.Errorf("button %d has no label", i)
		}
	}
}

func TestBuildWelcome(t *testing.T) {
	typ, _ := model.TypeByKey(model.TypeMiddleman)
	embed, components := BuildWelcome("!", "user-1", typ)

	if !strings.Contains(embed.Description, "<@user-1>") {
		t.Errorf("welcome description does not mention owner: %q", embed.Description)
	}
	if embed.Color != typ.Color {
		t.Errorf("embed color %d, want type color %d", embed.Color, typ.Color)
	}
	if len(embed.Fields) == 0 || !strings.Contains(embed.Fields[0].Value, "!close") {
		t.Error("welcome commands field does not reflect the configured prefix")
	}

	buttons := buttonsOf(t, components)
	if len(buttons) != 1 || buttons[0].CustomID != "request_close" {
		t.Errorf("expected a single request_close button, got %+v", buttons)
	}
	if buttons[0].Style != discordgo.DangerButton {
		t.Errorf("close button style %v, want danger", buttons[0].Style)
	}
}

func TestBuildClosePrompt(t *testing.T) {
	embed, components := BuildClosePrompt()

	if embed.Color != model.ColorError {
		t.Errorf("prompt color %d, want %d", embed.Color, model.ColorError)
	}

	buttons := buttonsOf(t, components)
	if len(buttons) != 2 {
		t.Fatalf("expected confirm and cancel buttons, got %d", len(buttons))
	}
	if buttons[0].CustomID != "confirm_close" || buttons[0].Style != discordgo.DangerButton {
		t.Errorf("unexpected confirm button: %+v", buttons[0])
	}
	if buttons[1].CustomID != "cancel_close" {
		t.Errorf("unexpected cancel button: %+v", buttons[1])
	}
}

func TestBuildCloseRecord(t *testing.T) {
	embed := BuildCloseRecord("ticket-alice-support", "root", "support")

	if len(embed.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(embed.Fields))
	}
	values := []string{"ticket-alice-support", "root", "support"}
	for i, f := range embed.Fields {
		if f.Value != values[i] {
			t.Errorf("field %q = %q, want %q", f.Name, f.Value, values[i])
		}
	}
}

func TestBuildStats(t *testing.T) {
	embed := BuildStats(5, 2, 3, "root")

	values := []string{"`5`", "`2`", "`3`"}
	for i, f := range embed.Fields {
		if f.Value != values[i] {
			t.Errorf("field %q = %q, want %q", f.Name, f.Value, values[i])
		}
	}
	if embed.Footer == nil || !strings.Contains(embed.Footer.Text, "root") {
		t.Error("footer does not credit the requester")
	}
}

func TestAnnouncementColor(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"success", model.ColorSuccess},
		{"danger", model.ColorError},
		{"info", model.ColorInfo},
		{"", model.ColorInfo},
	}
	for _, tt := range tests {
		if got := AnnouncementColor(tt.level); got != tt.want {
			t.Errorf("AnnouncementColor(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}
