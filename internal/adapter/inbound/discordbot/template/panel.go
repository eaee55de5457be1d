package template

import (
	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
	"github.com/jonny/ticketsbot/internal/domain/port/inbound"
)

// BuildPanel constructs the ticket creation panel: one embed describing the
// ticket types and a button row, one button per type.
func BuildPanel() (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	fields := make([]*discordgo.MessageEmbedField, 0, len(model.Types()))
	buttons := make([]discordgo.MessageComponent, 0, len(model.Types()))

	styles := map[model.TypeKey]discordgo.ButtonStyle{
		model.TypePartnership: discordgo.PrimaryButton,
		model.TypeMiddleman:   discordgo.SecondaryButton,
		model.TypeSupport:     discordgo.SuccessButton,
	}

	for _, t := range model.Types() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   t.Emoji + " " + t.DisplayName,
			Value:  t.Description,
			Inline: true,
		})
		buttons = append(buttons, discordgo.Button{
			Label:    t.DisplayName,
			Style:    styles[t.Key],
			CustomID: inbound.ComponentTicketPrefix + string(t.Key),
			Emoji:    &discordgo.ComponentEmoji{Name: t.Emoji},
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "\U0001F3AB Create a Ticket",
		Description: "Click the button below to create a ticket based on your needs.\n\n**Available Ticket Types:**",
		Color:       model.ColorInfo,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Select a ticket type to get started"},
	}

	return embed, []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}
