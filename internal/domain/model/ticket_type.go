package model

type TypeKey string

const (
	TypePartnership TypeKey = "partnership"
	TypeMiddleman   TypeKey = "middleman"
	TypeSupport     TypeKey = "support"
)

// TicketType is display metadata for one ticket category. The registry is
// static and immutable after init.
type TicketType struct {
	Key         TypeKey
	DisplayName string
	Emoji       string
	Color       int
	Description string
}

const (
	ColorPartnership = 0x5865F2
	ColorMiddleman   = 0xFEE75C
	ColorSupport     = 0x57F287
	ColorError       = 0xED4245
	ColorSuccess     = 0x57F287
	ColorInfo        = 0x5865F2
)

var ticketTypes = map[TypeKey]TicketType{
	TypePartnership: {
		Key:         TypePartnership,
		DisplayName: "Partnership",
		Emoji:       "\U0001F91D",
		Color:       ColorPartnership,
		Description: "Discuss partnership opportunities",
	},
	TypeMiddleman: {
		Key:         TypeMiddleman,
		DisplayName: "Middleman",
		Emoji:       "⚖️",
		Color:       ColorMiddleman,
		Description: "Request middleman services",
	},
	TypeSupport: {
		Key:         TypeSupport,
		DisplayName: "Support",
		Emoji:       "\U0001F3AB",
		Color:       ColorSupport,
		Description: "Get help and support",
	},
}

// TypeByKey resolves a type key to its registry entry.
func TypeByKey(key TypeKey) (TicketType, error) {
	t, ok := ticketTypes[key]
	if !ok {
		return TicketType{}, ErrUnknownType
	}
	return t, nil
}

// Types returns all registered ticket types in a stable order.
func Types() []TicketType {
	return []TicketType{
		ticketTypes[TypePartnership],
		ticketTypes[TypeMiddleman],
		ticketTypes[TypeSupport],
	}
}
