package player

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	brawlersPerPage = 10
	membersPerPage  = 10
	catalogPerPage  = 15
)

func pageCount(total, perPage int) int {
	if total == 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

func pageBounds(page, total, perPage int) (int, int) {
	start := (page - 1) * perPage
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}

// BuildPlayerEmbed renders a player profile. The brawler list is paged; the
// returned count is the number of brawler pages.
func BuildPlayerEmbed(p *brawlapi.Player, page int) (*discordgo.MessageEmbed, int) {
	totalPages := pageCount(len(p.Brawlers), brawlersPerPage)
	if page > totalPages {
		page = totalPages
	}

	club := p.Club.Name
	if club == "" {
		club = "—"
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s (%s)", p.Name, brawlapi.PrettyTag(p.Tag)),
		Color: utils.ColorAccent,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: brawlapi.PlayerAvatarURL(p.Icon.ID),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Trophies", Value: fmt.Sprintf("🏆 %d (best %d)", p.Trophies, p.HighestTrophies), Inline: true},
			{Name: "Level", Value: fmt.Sprintf("%d", p.ExpLevel), Inline: true},
			{Name: "Club", Value: club, Inline: true},
			{Name: "3v3 Wins", Value: fmt.Sprintf("%d", p.TrioVictories), Inline: true},
			{Name: "Solo Wins", Value: fmt.Sprintf("%d", p.SoloVictories), Inline: true},
			{Name: "Duo Wins", Value: fmt.Sprintf("%d", p.DuoVictories), Inline: true},
		},
	}

	if len(p.Brawlers) > 0 {
		brawlers := make([]brawlapi.PlayerBrawler, len(p.Brawlers))
		copy(brawlers, p.Brawlers)
		sort.Slice(brawlers, func(a, b int) bool {
			return brawlers[a].Trophies > brawlers[b].Trophies
		})

		start, end := pageBounds(page, len(brawlers), brawlersPerPage)
		var sb strings.Builder
		for _, br := range brawlers[start:end] {
			fmt.Fprintf(&sb, "**%s** — 🏆 %d · P%d · R%d\n", br.Name, br.Trophies, br.Power, br.Rank)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Brawlers (%d)", len(brawlers)),
			Value: sb.String(),
		})
	}

	return embed, totalPages
}

// BuildClubEmbed renders club details.
func BuildClubEmbed(c *brawlapi.Club) *discordgo.MessageEmbed {
	clubType := c.Type
	if clubType == "" {
		clubType = "unknown"
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (%s)", c.Name, brawlapi.PrettyTag(c.Tag)),
		Description: c.Description,
		Color:       utils.ColorAccent,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: brawlapi.ClubBadgeURL(c.BadgeID),
		},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Trophies", Value: fmt.Sprintf("🏆 %d", c.Trophies), Inline: true},
			{Name: "Required", Value: fmt.Sprintf("🏆 %d", c.RequiredTrophies), Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d / %d", len(c.Members), model.ClubCapacity), Inline: true},
			{Name: "Type", Value: clubType, Inline: true},
		},
	}
}

// BuildMembersEmbed renders one page of a club roster sorted by trophies.
func BuildMembersEmbed(tag string, members []brawlapi.ClubMember, page int) (*discordgo.MessageEmbed, int) {
	totalPages := pageCount(len(members), membersPerPage)
	if page > totalPages {
		page = totalPages
	}

	sorted := make([]brawlapi.ClubMember, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].Trophies > sorted[b].Trophies
	})

	start, end := pageBounds(page, len(sorted), membersPerPage)
	var sb strings.Builder
	for idx := start; idx < end; idx++ {
		m := sorted[idx]
		fmt.Fprintf(&sb, "`%2d.` **%s** — 🏆 %d · %s\n", idx+1, m.Name, m.Trophies, m.Role)
	}
	if sb.Len() == 0 {
		sb.WriteString("No members.")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Members of %s", brawlapi.PrettyTag(tag)),
		Description: sb.String(),
		Color:       utils.ColorAccent,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d members", len(members)),
		},
	}, totalPages
}

// BuildBrawlersEmbed renders one page of the global brawler catalog.
func BuildBrawlersEmbed(brawlers []brawlapi.Brawler, page int) (*discordgo.MessageEmbed, int) {
	totalPages := pageCount(len(brawlers), catalogPerPage)
	if page > totalPages {
		page = totalPages
	}

	start, end := pageBounds(page, len(brawlers), catalogPerPage)
	var sb strings.Builder
	for _, br := range brawlers[start:end] {
		fmt.Fprintf(&sb, "**%s** — %s\n", br.Name, br.Rarity.Name)
	}
	if sb.Len() == 0 {
		sb.WriteString("No brawlers.")
	}

	return &discordgo.MessageEmbed{
		Title:       "Brawler Catalog",
		Description: sb.String(),
		Color:       utils.ColorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d brawlers", len(brawlers)),
		},
	}, totalPages
}

// BuildEventsEmbed renders the current event rotation.
func BuildEventsEmbed(events []brawlapi.ScheduledEvent) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Event Rotation",
		Color: utils.ColorAccent,
	}
	if len(events) == 0 {
		embed.Description = "No events available."
		return embed
	}
	for _, ev := range events {
		value := ev.Event.Map
		if ts, err := time.Parse("20060102T150405.000Z", ev.EndTime); err == nil {
			value += fmt.Sprintf("\nends <t:%d:R>", ts.Unix())
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   ev.Event.Mode,
			Value:  value,
			Inline: true,
		})
	}
	return embed
}

// BuildBattlelogEmbed renders a player's recent battles.
func BuildBattlelogEmbed(tag string, battles []brawlapi.Battle) *discordgo.MessageEmbed {
	var sb strings.Builder
	shown := battles
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, bt := range shown {
		icon := "➖"
		switch bt.Battle.Result {
		case "victory":
			icon = "✅"
		case "defeat":
			icon = "❌"
		}
		line := fmt.Sprintf("%s **%s** on %s", icon, bt.Battle.Mode, bt.Event.Map)
		if bt.Battle.TrophyChange != 0 {
			line += fmt.Sprintf(" (%+d 🏆)", bt.Battle.TrophyChange)
		}
		sb.WriteString(line + "\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("No recent battles.")
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Battle Log %s", brawlapi.PrettyTag(tag)),
		Description: sb.String(),
		Color:       utils.ColorAccent,
	}
}
