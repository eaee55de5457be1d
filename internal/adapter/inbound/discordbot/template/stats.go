package template

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/jonny/ticketsbot/internal/domain/model"
)

// BuildStats constructs the ticket statistics snapshot embed.
func BuildStats(active, claimed, unclaimed int, requestedBy string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "\U0001F4CA Ticket Statistics",
		Color: model.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Active Tickets", Value: fmt.Sprintf("`%d`", active), Inline: true},
			{Name: "Claimed Tickets", Value: fmt.Sprintf("`%d`", claimed), Inline: true},
			{Name: "Unclaimed Tickets", Value: fmt.Sprintf("`%d`", unclaimed), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Requested by " + requestedBy},
	}
}

// BuildAnnouncement constructs a short in-channel status card.
func BuildAnnouncement(text string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Description: text,
		Color:       color,
	}
}

// AnnouncementColor maps an announcement level name to an embed color.
func AnnouncementColor(level string) int {
	switch level {
	case "success":
		return model.ColorSuccess
	case "danger":
		return model.ColorError
	default:
		return model.ColorInfo
	}
}
