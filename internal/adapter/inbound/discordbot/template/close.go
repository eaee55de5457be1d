package template

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
)

// BuildClosePrompt constructs the two-step close confirmation card.
func BuildClosePrompt() (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ Close Ticket",
		Description: "Are you sure you want to close this ticket?",
		Color:       model.ColorError,
		Footer:      &discordgo.MessageEmbedFooter{Text: "This action cannot be undone"},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm Close",
					Style:    discordgo.DangerButton,
					CustomID: inbound.ComponentConfirmClose,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: inbound.ComponentCancelClose,
				},
			},
		},
	}

	return embed, components
}

// BuildCloseRecord constructs the structured summary sent to the audit log
// channel when a ticket closes.
func BuildCloseRecord(channelName, closedBy, ticketType string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "\U0001F3AB Ticket Closed",
		Color: model.ColorError,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Channel", Value: channelName, Inline: true},
			{Name: "Closed By", Value: closedBy, Inline: true},
			{Name: "Type", Value: ticketType, Inline: true},
		},
	}
}
