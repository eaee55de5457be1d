package template

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

// BuildHelp constructs the help embed listing the command surface.
func BuildHelp(prefix, requestedBy string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "\U0001F3AB Ticket System - Help",
		Description: "Ticket management for your server",
		Color:       model.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Ticket Commands",
				Value: "```\n" +
					prefix + "new <type> - Create a new ticket\n" +
					prefix + "close - Close current ticket\n" +
					prefix + "claim - Claim a ticket\n" +
					prefix + "unclaim - Unclaim a ticket\n" +
					prefix + "add <user> - Add user to ticket\n" +
					prefix + "remove <user> - Remove user from ticket\n" +
					prefix + "rename <name> - Rename ticket channel```",
			},
			{
				Name: "Ticket Types",
				Value: "```\npartnership - Partnership inquiries\n" +
					"middleman - Middleman services\n" +
					"support - General support```",
			},
			{
				Name: "Setup Commands",
				Value: "```\n" + prefix + "setup - Create ticket panel\n" +
					prefix + "stats - View ticket statistics```",
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Requested by " + requestedBy},
	}
}
