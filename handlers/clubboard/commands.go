package clubboard

import (
	"fmt"
	"log"

	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes the /clubboard subcommands. All of them are admin-gated.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "channel":
		handleChannel(b, s, i, opts)
	case "refresh":
		handleRefresh(b, s, i)
	case "start":
		setEnabled(b, s, i, true)
	case "stop":
		setEnabled(b, s, i, false)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func handleChannel(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	channel := opts["channel"].ChannelValue(s)

	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.BoardChannelID = channel.ID
		// The old message lives in the old channel; next render reposts.
		gs.BoardMessageID = ""
	})
	if err != nil {
		log.Printf("clubboard: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the board channel.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Board channel is now <#%s>.", channel.ID))

	go func() {
		if err := Render(b, i.GuildID); err != nil {
			log.Printf("clubboard: rendering after channel change: %v", err)
		}
	}()
}

func handleRefresh(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("clubboard: deferring response: %v", err)
		return
	}
	if err := Render(b, i.GuildID); err != nil {
		log.Printf("clubboard: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Could not render the board. Is a board channel set?")
		return
	}
	utils.SendFollowUp(s, i.Interaction, "✅ Board refreshed.")
}

func setEnabled(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, enabled bool) {
	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.BoardEnabled = enabled
	})
	if err != nil {
		log.Printf("clubboard: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the board settings.")
		return
	}
	if enabled {
		utils.SendSimpleResponse(s, i, "▶️ Periodic board refresh enabled.")
	} else {
		utils.SendSimpleResponse(s, i, "⏸️ Periodic board refresh disabled.")
	}
}
