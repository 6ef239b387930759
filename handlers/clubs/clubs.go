// Package clubs implements /clubs: tracking club tags per guild and wiring
// each club to its member role, notice channel and leadership role.
package clubs

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/tasks"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes the /clubs subcommands. All of them are admin-gated.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !utils.RequireAdmin(b, s, i) {
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "add":
		handleAdd(b, s, i, opts)
	case "remove":
		handleRemove(b, s, i, opts)
	case "list":
		handleList(b, s, i)
	case "setrole":
		handleSetRole(b, s, i, opts)
	case "setlog":
		handleSetLog(b, s, i, opts)
	case "setlead":
		handleSetLead(b, s, i, opts)
	case "refresh":
		handleRefresh(b, s, i)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func handleAdd(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("clubs: deferring response: %v", err)
		return
	}

	// Validate against the API and pull the details worth caching.
	info, err := b.GetAPI().Club(tag)
	if err != nil {
		log.Printf("clubs: validating %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Club"))
		return
	}

	added, err := database.AddClub(b.GetDB(), model.Club{
		GuildID:          i.GuildID,
		Tag:              tag,
		Name:             info.Name,
		BadgeID:          info.BadgeID,
		RequiredTrophies: info.RequiredTrophies,
	})
	if err != nil {
		log.Printf("clubs: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Could not track the club.")
		return
	}
	if !added {
		utils.SendFollowUpError(s, i.Interaction, fmt.Sprintf("`%s` is already tracked.", brawlapi.PrettyTag(tag)))
		return
	}
	utils.SendFollowUp(s, i.Interaction,
		fmt.Sprintf("✅ Now tracking **%s** (`%s`).", info.Name, brawlapi.PrettyTag(tag)))
}

func handleRemove(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))

	removed, err := database.RemoveClub(b.GetDB(), i.GuildID, tag)
	if errors.Is(err, database.ErrClubNotTracked) {
		utils.SendErrorResponse(s, i, fmt.Sprintf("`%s` is not tracked.", brawlapi.PrettyTag(tag)))
		return
	}
	if err != nil {
		log.Printf("clubs: %v", err)
		utils.SendErrorResponse(s, i, "Could not remove the club.")
		return
	}
	utils.SendSimpleResponse(s, i,
		fmt.Sprintf("🗑️ Stopped tracking **%s** (`%s`).", removed.Name, brawlapi.PrettyTag(tag)))
}

func handleList(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	clubs, err := database.GetClubs(b.GetDB(), i.GuildID)
	if err != nil {
		log.Printf("clubs: %v", err)
		utils.SendErrorResponse(s, i, "Could not load the tracked clubs.")
		return
	}
	if len(clubs) == 0 {
		utils.SendSimpleResponse(s, i, "No clubs tracked yet. Add one with `/clubs add`.")
		return
	}

	sorted := make([]model.Club, 0, len(clubs))
	for _, c := range clubs {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Name < sorted[b].Name })

	var sb strings.Builder
	for _, c := range sorted {
		line := fmt.Sprintf("**%s** `%s` — required 🏆 %d", c.Name, brawlapi.PrettyTag(c.Tag), c.RequiredTrophies)
		var extras []string
		if c.RoleID != "" {
			extras = append(extras, fmt.Sprintf("role <@&%s>", c.RoleID))
		}
		if c.LogChannelID != "" {
			extras = append(extras, fmt.Sprintf("log <#%s>", c.LogChannelID))
		}
		if c.LeadershipRoleID != "" {
			extras = append(extras, fmt.Sprintf("lead <@&%s>", c.LeadershipRoleID))
		}
		if len(extras) > 0 {
			line += "\n· " + strings.Join(extras, " · ")
		}
		sb.WriteString(line + "\n")
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Tracked Clubs",
		Description: sb.String(),
		Color:       utils.ColorAccent,
	})
}

func updateClubField(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, tag string, fn func(*model.Club), confirmation string) {
	club, err := database.GetClub(b.GetDB(), i.GuildID, tag)
	if errors.Is(err, database.ErrClubNotTracked) {
		utils.SendErrorResponse(s, i, fmt.Sprintf("`%s` is not tracked. Add it with `/clubs add` first.", brawlapi.PrettyTag(tag)))
		return
	}
	if err != nil {
		log.Printf("clubs: %v", err)
		utils.SendErrorResponse(s, i, "Could not load the club.")
		return
	}
	fn(&club)
	if err := database.UpdateClub(b.GetDB(), club); err != nil {
		log.Printf("clubs: %v", err)
		utils.SendErrorResponse(s, i, "Could not update the club.")
		return
	}
	utils.SendSimpleResponse(s, i, confirmation)
}

func handleSetRole(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	role := opts["role"].RoleValue(s, i.GuildID)
	updateClubField(b, s, i, tag,
		func(c *model.Club) { c.RoleID = role.ID },
		fmt.Sprintf("✅ Members of `%s` now get <@&%s>.", brawlapi.PrettyTag(tag), role.ID))
}

func handleSetLog(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	channel := opts["channel"].ChannelValue(s)
	updateClubField(b, s, i, tag,
		func(c *model.Club) { c.LogChannelID = channel.ID },
		fmt.Sprintf("✅ Join/leave notices for `%s` go to <#%s>.", brawlapi.PrettyTag(tag), channel.ID))
}

func handleSetLead(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	role := opts["role"].RoleValue(s, i.GuildID)
	updateClubField(b, s, i, tag,
		func(c *model.Club) { c.LeadershipRoleID = role.ID },
		fmt.Sprintf("✅ Applications for `%s` now ping <@&%s>.", brawlapi.PrettyTag(tag), role.ID))
}

func handleRefresh(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("clubs: deferring response: %v", err)
		return
	}
	updated, err := tasks.RefreshClubCaches(b, i.GuildID)
	if err != nil {
		log.Printf("clubs: %v", err)
		utils.SendFollowUpError(s, i.Interaction, "Could not refresh the club caches.")
		return
	}
	utils.SendFollowUp(s, i.Interaction, fmt.Sprintf("✅ Refreshed %d club(s).", updated))
}
