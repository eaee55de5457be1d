package inbound

// Component custom IDs. These travel inside button payloads and come back
// verbatim on interaction events; the dispatcher matches them by literal
// value or prefix.
const (
	// ComponentTicketPrefix + "<type>" opens a ticket of that type.
	ComponentTicketPrefix = "ticket_"

	ComponentRequestClose = "request_close"
	ComponentConfirmClose = "confirm_close"
	ComponentCancelClose  = "cancel_close"
)
