package template

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
)

// BuildWelcome constructs the introductory card for a new ticket channel,
// with a close button that opens the confirmation prompt.
func BuildWelcome(prefix, ownerID string, typ model.TicketType) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s Ticket", typ.Emoji, typ.DisplayName),
		Description: fmt.Sprintf(
			"Welcome <@%s>!\n\n**Ticket Type:** %s\n\nOur team will be with you shortly. Please describe your inquiry in detail.",
			ownerID, typ.Description,
		),
		Color: typ.Color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Commands",
				Value: "`" + prefix + "close` - Close this ticket\n" +
					"`" + prefix + "claim` - Claim this ticket\n" +
					"`" + prefix + "add <user>` - Add a user\n" +
					"`" + prefix + "remove <user>` - Remove a user",
			},
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Close Ticket",
					Style:    discordgo.DangerButton,
					CustomID: inbound.ComponentRequestClose,
					Emoji:    &discordgo.ComponentEmoji{Name: "\U0001F512"},
				},
			},
		},
	}

	return embed, components
}
