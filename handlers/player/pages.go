package player

import (
	"log"
	"strconv"

	"clubkeeper/model"
	"clubkeeper/utils"

	"github.com/bwmarrin/discordgo"
)

// HandlePage re-renders a paged embed when a pagination button is pressed.
// parts is the custom ID split on ":", e.g. ["bs_members", "2", "TAG"].
func HandlePage(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
	if len(parts) < 2 || parts[1] == "noop" {
		return
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil || page < 1 {
		return
	}

	switch parts[0] {
	case "bs_player":
		if len(parts) < 3 {
			return
		}
		playerPage(b, s, i, parts[2], page)
	case "bs_members":
		if len(parts) < 3 {
			return
		}
		membersPage(b, s, i, parts[2], page)
	case "bs_brawlers":
		brawlersPage(b, s, i, page)
	}
}

func playerPage(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, tag string, page int) {
	p, err := b.GetAPI().Player(tag)
	if err != nil {
		log.Printf("player: paging profile of %s: %v", tag, err)
		return
	}
	embed, totalPages := BuildPlayerEmbed(p, page)
	components := utils.CreatePaginationComponents(page, totalPages, "bs_player", tag)
	if err := utils.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Printf("player: updating profile page: %v", err)
	}
}

func membersPage(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, tag string, page int) {
	members, err := b.GetAPI().ClubMembers(tag)
	if err != nil {
		log.Printf("player: paging members of %s: %v", tag, err)
		return
	}
	embed, totalPages := BuildMembersEmbed(tag, members, page)
	components := utils.CreatePaginationComponents(page, totalPages, "bs_members", tag)
	if err := utils.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Printf("player: updating members page: %v", err)
	}
}

func brawlersPage(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, page int) {
	brawlers, err := b.GetAPI().Brawlers()
	if err != nil {
		log.Printf("player: paging brawler catalog: %v", err)
		return
	}
	embed, totalPages := BuildBrawlersEmbed(brawlers, page)
	components := utils.CreatePaginationComponents(page, totalPages, "bs_brawlers")
	if err := utils.UpdateComponentMessage(s, i, embed, components); err != nil {
		log.Printf("player: updating catalog page: %v", err)
	}
}
