package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// CreatePaginationComponents creates a row of prev/next buttons. Page state
// travels in the custom ID as "<prefix>:<page>[:<arg>...]" so the handler can
// rebuild the page without any server-side session.
func CreatePaginationComponents(currentPage, totalPages int, customIDPrefix string, args ...string) []discordgo.MessageComponent {
	if totalPages <= 1 {
		return nil
	}

	buttonArgs := ""
	for _, arg := range args {
		buttonArgs += ":" + arg
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "◀",
					Style:    discordgo.SecondaryButton,
					Disabled: currentPage == 1,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, currentPage-1, buttonArgs),
				},
				discordgo.Button{
					Label:    fmt.Sprintf("%d / %d", currentPage, totalPages),
					Style:    discordgo.SecondaryButton,
					Disabled: true,
					CustomID: customIDPrefix + ":noop",
				},
				discordgo.Button{
					Label:    "▶",
					Style:    discordgo.PrimaryButton,
					Disabled: currentPage == totalPages,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, currentPage+1, buttonArgs),
				},
			},
		},
	}
}

// UpdateComponentMessage edits the message a component interaction came from.
func UpdateComponentMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
