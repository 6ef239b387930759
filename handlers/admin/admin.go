// Package admin implements /bsadmin: the per-guild allow-list that gates
// management commands, plus a host status readout.
package admin

import (
	"fmt"
	"log"
	"strings"

	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes the /bsadmin subcommands. All of them are admin-gated;
// note that Discord administrators always pass the gate, so a fresh guild
// can bootstrap its allow-list.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "allowrole":
		role := opts["role"].RoleValue(s, i.GuildID)
		mutateAllowlist(b, s, i, func() error { return database.AllowRole(b.GetDB(), i.GuildID, role.ID) },
			fmt.Sprintf("✅ <@&%s> can now use management commands.", role.ID))
	case "disallowrole":
		role := opts["role"].RoleValue(s, i.GuildID)
		mutateAllowlist(b, s, i, func() error { return database.DisallowRole(b.GetDB(), i.GuildID, role.ID) },
			fmt.Sprintf("🗑️ Removed <@&%s> from the allow-list.", role.ID))
	case "allowuser":
		user := opts["user"].UserValue(s)
		mutateAllowlist(b, s, i, func() error { return database.AllowUser(b.GetDB(), i.GuildID, user.ID) },
			fmt.Sprintf("✅ <@%s> can now use management commands.", user.ID))
	case "disallowuser":
		user := opts["user"].UserValue(s)
		mutateAllowlist(b, s, i, func() error { return database.DisallowUser(b.GetDB(), i.GuildID, user.ID) },
			fmt.Sprintf("🗑️ Removed <@%s> from the allow-list.", user.ID))
	case "list":
		handleList(b, s, i)
	case "check":
		handleCheck(b, s, i, opts)
	case "status":
		handleStatus(b, s, i)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func mutateAllowlist(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, fn func() error, confirmation string) {
	if err := fn(); err != nil {
		log.Printf("admin: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the allow-list.")
		return
	}
	utils.SendSimpleResponse(s, i, confirmation)
}

func handleList(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	allow, err := database.GetAllowlist(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("admin: %v", err)
		utils.SendErrorResponse(s, i, "Could not load the allow-list.")
		return
	}

	roles := "none"
	if len(allow.RoleIDs) > 0 {
		var mentions []string
		for _, id := range allow.RoleIDs {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
		}
		roles = strings.Join(mentions, " ")
	}
	users := "none"
	if len(allow.UserIDs) > 0 {
		var mentions []string
		for _, id := range allow.UserIDs {
			mentions = append(mentions, fmt.Sprintf("<@%s>", id))
		}
		users = strings.Join(mentions, " ")
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title: "Management Allow-List",
		Color: utils.ColorAccent,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Roles", Value: roles},
			{Name: "Users", Value: users},
		},
	})
}

func handleCheck(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	userID := utils.InteractionUserID(i)
	member := i.Member
	if opt, ok := opts["user"]; ok {
		target := opt.UserValue(s)
		userID = target.ID
		m, err := s.GuildMember(i.GuildID, target.ID)
		if err != nil {
			log.Printf("admin: fetching member %s: %v", target.ID, err)
			utils.SendErrorResponse(s, i, "Could not fetch that member.")
			return
		}
		member = m
	}

	allow, err := database.GetAllowlist(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("admin: %v", err)
		utils.SendErrorResponse(s, i, "Could not load the allow-list.")
		return
	}

	level := utils.CheckPermission(member, userID, b.GetConfig().DeveloperUserIDs, allow)
	utils.SendSimpleResponse(s, i, fmt.Sprintf("<@%s> has permission level **%s**.", userID, level))
}
