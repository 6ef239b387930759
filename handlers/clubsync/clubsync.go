// Package clubsync implements /clubsync: the settings surface of the
// membership poller.
package clubsync

import (
	"fmt"
	"log"
	"strings"

	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Poll interval bounds in seconds.
const (
	MinInterval = 60
	MaxInterval = 900
)

// ClampInterval forces a poll interval into the allowed range.
func ClampInterval(seconds int) int {
	if seconds < MinInterval {
		return MinInterval
	}
	if seconds > MaxInterval {
		return MaxInterval
	}
	return seconds
}

// Handle routes the /clubsync subcommands. All of them are admin-gated.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "enable":
		setEnabled(b, s, i, true)
	case "disable":
		setEnabled(b, s, i, false)
	case "interval":
		handleInterval(b, s, i, opts)
	case "notify":
		handleNotify(b, s, i, opts)
	case "nickformat":
		handleNickFormat(b, s, i, opts)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func setEnabled(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, enabled bool) {
	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.SyncEnabled = enabled
	})
	if err != nil {
		log.Printf("clubsync: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the poller settings.")
		return
	}
	if enabled {
		utils.SendSimpleResponse(s, i, "▶️ Membership polling enabled.")
	} else {
		utils.SendSimpleResponse(s, i, "⏸️ Membership polling disabled.")
	}
}

func handleInterval(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	requested := utils.OptionInt(opts, "seconds", MinInterval)
	clamped := ClampInterval(requested)

	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.SyncInterval = clamped
	})
	if err != nil {
		log.Printf("clubsync: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the poll interval.")
		return
	}

	msg := fmt.Sprintf("✅ Poll interval set to %d seconds.", clamped)
	if clamped != requested {
		msg = fmt.Sprintf("✅ Poll interval clamped to %d seconds (allowed range %d-%d).",
			clamped, MinInterval, MaxInterval)
	}
	utils.SendSimpleResponse(s, i, msg)
}

func handleNotify(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	channel := opts["channel"].ChannelValue(s)

	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.NotifyChannelID = channel.ID
	})
	if err != nil {
		log.Printf("clubsync: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the notice channel.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Fallback notice channel is now <#%s>.", channel.ID))
}

func handleNickFormat(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	format := utils.OptionString(opts, "format")
	if !strings.Contains(format, "{IGN}") {
		utils.SendErrorResponse(s, i, "The format must contain the `{IGN}` placeholder.")
		return
	}

	err := database.UpdateGuildSettings(b.GetDB(), i.GuildID, func(gs *model.GuildSettings) {
		gs.NickFormat = format
	})
	if err != nil {
		log.Printf("clubsync: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the nickname format.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Nickname format is now `%s`.", format))
}
