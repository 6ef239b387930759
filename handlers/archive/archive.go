// Package archive implements /archive and /archiveset: mirroring a
// channel's full history to a separate archive server through a webhook.
package archive

import (
	"fmt"
	"log"

	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes /archive. Admin-gated; the actual run sits behind a
// confirmation button because it can delete the source channel.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	gs, err := database.GetGuildSettings(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("archive: %v", err)
		utils.SendErrorResponse(s, i, "Could not load the archive settings.")
		return
	}
	if gs.ArchiveGuildID == "" {
		utils.SendErrorResponse(s, i, "No archive server configured. Set one with `/archiveset guild`.")
		return
	}

	warning := fmt.Sprintf("Archive <#%s> to the archive server?", i.ChannelID)
	if gs.ArchiveDelete {
		warning += " **The channel will be deleted afterwards.**"
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: warning,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Archive",
							Style:    discordgo.DangerButton,
							CustomID: "archive_confirm:" + i.ChannelID,
						},
						discordgo.Button{
							Label:    "Cancel",
							Style:    discordgo.SecondaryButton,
							CustomID: "archive_cancel",
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("archive: sending confirmation: %v", err)
	}
}

// HandleComponent reacts to the confirmation buttons. parts is the custom ID
// split on ":".
func HandleComponent(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
	switch parts[0] {
	case "archive_cancel":
		respondUpdate(s, i, "Archive cancelled.")
	case "archive_confirm":
		if len(parts) < 2 {
			return
		}
		// The allow-list may have changed since the prompt was shown.
		if !utils.RequireAdmin(b, s, i) {
			return
		}
		confirm(b, s, i, parts[1])
	}
}

func confirm(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) {
	gs, err := database.GetGuildSettings(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("archive: %v", err)
		respondUpdate(s, i, "❌ Could not load the archive settings.")
		return
	}
	source, err := s.Channel(channelID)
	if err != nil {
		log.Printf("archive: fetching channel %s: %v", channelID, err)
		respondUpdate(s, i, "❌ Could not fetch the channel.")
		return
	}

	respondUpdate(s, i, "📦 Archive started.")
	go run(b, gs, source)
}

func respondUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("archive: updating confirmation: %v", err)
	}
}

// HandleSet routes /archiveset. Admin-gated.
func HandleSet(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "guild":
		id := utils.OptionString(opts, "id")
		if _, err := s.Guild(id); err != nil {
			utils.SendErrorResponse(s, i, "The bot is not a member of that server.")
			return
		}
		updateArchiveSettings(b, s, i,
			func(gs *model.GuildSettings) { gs.ArchiveGuildID = id },
			"✅ Archive server set.")
	case "category":
		id := utils.OptionString(opts, "id")
		updateArchiveSettings(b, s, i,
			func(gs *model.GuildSettings) { gs.ArchiveCategoryID = id },
			"✅ Archive category set.")
	case "delete":
		enabled := opts["enabled"].BoolValue()
		msg := "✅ Source channels will be kept after archiving."
		if enabled {
			msg = "✅ Source channels will be deleted after archiving."
		}
		updateArchiveSettings(b, s, i,
			func(gs *model.GuildSettings) { gs.ArchiveDelete = enabled },
			msg)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func updateArchiveSettings(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, fn func(*model.GuildSettings), confirmation string) {
	if err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, fn); err != nil {
		log.Printf("archive: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the archive settings.")
		return
	}
	utils.SendSimpleResponse(s, i, confirmation)
}
