// Package clubboard maintains a single live embed listing every tracked
// club with its current member count, sorted so the easiest club to join
// comes first.
package clubboard

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

type boardEntry struct {
	Club model.Club
	Live *brawlapi.Club
}

// Render re-draws the guild's board message. The per-guild lock keeps the
// scheduler and a manual /clubboard refresh from racing each other; the
// second caller simply skips.
func Render(b model.Bot, guildID string) error {
	if !b.TryLockBoard(guildID) {
		return nil
	}
	defer b.UnlockBoard(guildID)

	db := b.GetDB()
	gs, err := database.GetGuildSettings(db, guildID)
	if err != nil {
		return err
	}
	if gs.BoardChannelID == "" {
		return nil
	}

	clubs, err := database.GetClubs(db, guildID)
	if err != nil {
		return err
	}
	if len(clubs) == 0 {
		return nil
	}

	entries := make([]boardEntry, 0, len(clubs))
	for tag, club := range clubs {
		live, err := b.GetAPI().Club(tag)
		if err != nil {
			// Stale entry beats a missing one; render without live data.
			log.Printf("clubboard: fetching %s: %v", brawlapi.PrettyTag(tag), err)
			entries = append(entries, boardEntry{Club: club})
			continue
		}
		entries = append(entries, boardEntry{Club: club, Live: live})
	}
	sortEntries(entries)

	embed := BuildBoardEmbed(entries)
	s := b.GetSession()

	if gs.BoardMessageID != "" {
		if _, err := s.ChannelMessageEditEmbed(gs.BoardChannelID, gs.BoardMessageID, embed); err == nil {
			return nil
		}
		// Message was deleted or the channel changed; fall through and repost.
	}

	msg, err := s.ChannelMessageSendEmbed(gs.BoardChannelID, embed)
	if err != nil {
		return fmt.Errorf("posting board message: %w", err)
	}
	return database.UpdateGuildSettings(db, guildID, func(gs *model.GuildSettings) {
		gs.BoardMessageID = msg.ID
	})
}

// sortEntries orders clubs fewest members first, then highest requirement
// first, so the club with the most open seats tops the board. Entries
// without live data sink to the bottom.
func sortEntries(entries []boardEntry) {
	sort.Slice(entries, func(a, b int) bool {
		ea, eb := entries[a], entries[b]
		if (ea.Live == nil) != (eb.Live == nil) {
			return eb.Live == nil
		}
		if ea.Live == nil {
			return ea.Club.Name < eb.Club.Name
		}
		if len(ea.Live.Members) != len(eb.Live.Members) {
			return len(ea.Live.Members) < len(eb.Live.Members)
		}
		return ea.Live.RequiredTrophies > eb.Live.RequiredTrophies
	})
}

// BuildBoardEmbed renders the board for an already-sorted entry list.
func BuildBoardEmbed(entries []boardEntry) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, e := range entries {
		if e.Live == nil {
			fmt.Fprintf(&sb, "⚠️ **%s** `%s` — unavailable\n", e.Club.Name, brawlapi.PrettyTag(e.Club.Tag))
			continue
		}
		seats := model.ClubCapacity - len(e.Live.Members)
		icon := "🟢"
		if seats <= 0 {
			icon = "🔴"
		}
		fmt.Fprintf(&sb, "%s **%s** `%s` — %d/%d · required 🏆 %d · total 🏆 %d\n",
			icon, e.Live.Name, brawlapi.PrettyTag(e.Live.Tag),
			len(e.Live.Members), model.ClubCapacity, e.Live.RequiredTrophies, e.Live.Trophies)
	}
	if sb.Len() == 0 {
		sb.WriteString("No clubs tracked.")
	}
	return &discordgo.MessageEmbed{
		Title:       "Club Board",
		Description: sb.String(),
		Color:       utils.ColorAccent,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Updated",
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}
