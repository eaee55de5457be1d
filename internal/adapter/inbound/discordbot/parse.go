package discordbot

import "strings"

// parseCommand strips the configured prefix and tokenizes the rest on
// whitespace. ok is false when the prefix is absent or nothing follows it;
// such messages are ignored entirely.
func parseCommand(content, prefix string) (command string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}
