package discordbot

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		prefix   string
		wantCmd  string
		wantArgs []string
		wantOK   bool
	}{
		{
			name:    "bare command",
			content: ".help",
			prefix:  ".",
			wantCmd: "help",
			wantOK:  true,
		},
		{
			name:     "command with args",
			content:  ".new support",
			prefix:   ".",
			wantCmd:  "new",
			wantArgs: []string{"support"},
			wantOK:   true,
		},
		{
			name:     "extra whitespace collapsed",
			content:  ".rename   payment   dispute ",
			prefix:   ".",
			wantCmd:  "rename",
			wantArgs: []string{"payment", "dispute"},
			wantOK:   true,
		},
		{
			name:    "uppercase command lowered",
			content: ".CLAIM",
			prefix:  ".",
			wantCmd: "claim",
			wantOK:  true,
		},
		{
			name:     "mention preserved as arg",
			content:  "!add <@123456>",
			prefix:   "!",
			wantCmd:  "add",
			wantArgs: []string{"<@123456>"},
			wantOK:   true,
		},
		{
			name:    "missing prefix",
			content: "hello there",
			prefix:  ".",
			wantOK:  false,
		},
		{
			name:    "prefix only",
			content: ".",
			prefix:  ".",
			wantOK:  false,
		},
		{
			name:    "prefix then whitespace",
			content: ".   ",
			prefix:  ".",
			wantOK:  false,
		},
		{
			name:    "empty prefix disables parsing",
			content: "help",
			prefix:  "",
			wantOK:  false,
		},
		{
			name:    "multi-character prefix",
			content: "t!stats",
			prefix:  "t!",
			wantCmd: "stats",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, ok := parseCommand(tt.content, tt.prefix)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if cmd != tt.wantCmd {
				t.Errorf("command = %q, want %q", cmd, tt.wantCmd)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}
