package player

import (
	"fmt"
	"log"
	"strings"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleRankings routes the /bs rankings subcommand group.
func HandleRankings(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	group := i.ApplicationCommandData().Options[0]
	sub := group.Options[0]
	opts := utils.OptionMap(sub.Options)

	country := strings.ToLower(utils.OptionString(opts, "country"))
	if country == "" {
		country = "global"
	}
	limit := utils.OptionInt(opts, "limit", 10)

	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("player: deferring response: %v", err)
		return
	}

	switch sub.Name {
	case "players":
		rankings, err := b.GetAPI().RankingsPlayers(country, limit)
		if err != nil {
			log.Printf("player: fetching player rankings for %s: %v", country, err)
			utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Ranking"))
			return
		}
		utils.FollowUpEmbed(s, i.Interaction, buildPlayerRankingsEmbed(country, rankings))
	case "clubs":
		rankings, err := b.GetAPI().RankingsClubs(country, limit)
		if err != nil {
			log.Printf("player: fetching club rankings for %s: %v", country, err)
			utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Ranking"))
			return
		}
		utils.FollowUpEmbed(s, i.Interaction, buildClubRankingsEmbed(country, rankings))
	case "brawler":
		name := utils.OptionString(opts, "name")
		id, err := findBrawlerID(b, name)
		if err != nil {
			log.Printf("player: resolving brawler %q: %v", name, err)
			utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Catalog"))
			return
		}
		if id == 0 {
			utils.SendFollowUpError(s, i.Interaction, fmt.Sprintf("Unknown brawler `%s`.", name))
			return
		}
		rankings, err := b.GetAPI().RankingsBrawler(country, id, limit)
		if err != nil {
			log.Printf("player: fetching brawler rankings for %s: %v", country, err)
			utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Ranking"))
			return
		}
		utils.FollowUpEmbed(s, i.Interaction, buildBrawlerRankingsEmbed(country, name, id, rankings))
	}
}

// findBrawlerID resolves a brawler name case-insensitively against the
// catalog. Returns 0 when no brawler matches.
func findBrawlerID(b model.Bot, name string) (int, error) {
	brawlers, err := b.GetAPI().Brawlers()
	if err != nil {
		return 0, err
	}
	for _, br := range brawlers {
		if strings.EqualFold(br.Name, name) {
			return br.ID, nil
		}
	}
	return 0, nil
}

func rankingsTitle(kind, country string) string {
	if country == "global" {
		return fmt.Sprintf("Global Top %s", kind)
	}
	return fmt.Sprintf("Top %s (%s)", kind, strings.ToUpper(country))
}

func buildPlayerRankingsEmbed(country string, rankings []brawlapi.PlayerRanking) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, r := range rankings {
		line := fmt.Sprintf("`%2d.` **%s** — 🏆 %d", r.Rank, r.Name, r.Trophies)
		if r.Club.Name != "" {
			line += " · " + r.Club.Name
		}
		sb.WriteString(line + "\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("No entries.")
	}
	return &discordgo.MessageEmbed{
		Title:       rankingsTitle("Players", country),
		Description: sb.String(),
		Color:       utils.ColorGold,
	}
}

func buildClubRankingsEmbed(country string, rankings []brawlapi.ClubRanking) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, r := range rankings {
		fmt.Fprintf(&sb, "`%2d.` **%s** — 🏆 %d · %d members\n", r.Rank, r.Name, r.Trophies, r.MemberCount)
	}
	if sb.Len() == 0 {
		sb.WriteString("No entries.")
	}
	return &discordgo.MessageEmbed{
		Title:       rankingsTitle("Clubs", country),
		Description: sb.String(),
		Color:       utils.ColorGold,
	}
}

func buildBrawlerRankingsEmbed(country, brawler string, brawlerID int, rankings []brawlapi.BrawlerRanking) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, r := range rankings {
		fmt.Fprintf(&sb, "`%2d.` **%s** — 🏆 %d\n", r.Rank, r.Name, r.Trophies)
	}
	if sb.Len() == 0 {
		sb.WriteString("No entries.")
	}
	return &discordgo.MessageEmbed{
		Title:       rankingsTitle(strings.ToUpper(brawler), country),
		Description: sb.String(),
		Color:       utils.ColorGold,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: brawlapi.BrawlerIconURL(brawlerID),
		},
	}
}
