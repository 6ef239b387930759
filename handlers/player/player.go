// Package player implements the read-only Brawl Stars lookups: player
// profiles, battle logs, club details, rosters, the brawler catalog and the
// event rotation.
package player

import (
	"log"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes the lookup subcommands of /bs.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "player":
		handlePlayer(b, s, i, opts)
	case "battlelog":
		handleBattlelog(b, s, i, opts)
	case "club":
		handleClub(b, s, i, opts)
	case "members":
		handleMembers(b, s, i, opts)
	case "brawlers":
		handleBrawlers(b, s, i)
	case "events":
		handleEvents(b, s, i)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

// resolveTag returns the tag option if given, otherwise the caller's default
// saved tag. An empty return means the error response has been sent.
func resolveTag(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) string {
	if tag := utils.OptionString(opts, "tag"); tag != "" {
		return brawlapi.NormalizeTag(tag)
	}
	rec, err := database.GetUser(b.GetDB(), utils.InteractionUserID(i))
	if err != nil {
		log.Printf("player: %v", err)
		utils.SendErrorResponse(s, i, "Could not load your saved tags.")
		return ""
	}
	tag := rec.DefaultTag()
	if tag == "" {
		utils.SendErrorResponse(s, i, "No tag given and no saved tag found. Save one with `/bs tags save`.")
		return ""
	}
	return tag
}

func handlePlayer(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := resolveTag(b, s, i, opts)
	if tag == "" {
		return
	}
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	p, err := b.GetAPI().Player(tag)
	if err != nil {
		log.Printf("player: fetching %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Player"))
		return
	}

	embed, totalPages := BuildPlayerEmbed(p, 1)
	components := utils.CreatePaginationComponents(1, totalPages, "bs_player", tag)
	utils.FollowUpEmbedWithComponents(s, i.Interaction, embed, components)
}

func handleBattlelog(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := resolveTag(b, s, i, opts)
	if tag == "" {
		return
	}
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	battles, err := b.GetAPI().Battlelog(tag)
	if err != nil {
		log.Printf("player: fetching battlelog of %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Player"))
		return
	}
	utils.FollowUpEmbed(s, i.Interaction, BuildBattlelogEmbed(tag, battles))
}

func handleClub(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	club, err := b.GetAPI().Club(tag)
	if err != nil {
		log.Printf("player: fetching club %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Club"))
		return
	}
	utils.FollowUpEmbed(s, i.Interaction, BuildClubEmbed(club))
}

func handleMembers(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	members, err := b.GetAPI().ClubMembers(tag)
	if err != nil {
		log.Printf("player: fetching members of %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Club"))
		return
	}

	embed, totalPages := BuildMembersEmbed(tag, members, 1)
	components := utils.CreatePaginationComponents(1, totalPages, "bs_members", tag)
	utils.FollowUpEmbedWithComponents(s, i.Interaction, embed, components)
}

func handleBrawlers(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	brawlers, err := b.GetAPI().Brawlers()
	if err != nil {
		log.Printf("player: fetching brawler catalog: %v", err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Catalog"))
		return
	}

	embed, totalPages := BuildBrawlersEmbed(brawlers, 1)
	components := utils.CreatePaginationComponents(1, totalPages, "bs_brawlers")
	utils.FollowUpEmbedWithComponents(s, i.Interaction, embed, components)
}

func handleEvents(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	events, err := b.GetAPI().Events()
	if err != nil {
		log.Printf("player: fetching event rotation: %v", err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Rotation"))
		return
	}
	utils.FollowUpEmbed(s, i.Interaction, BuildEventsEmbed(events))
}
