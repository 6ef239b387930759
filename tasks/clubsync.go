package tasks

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// DiffMembers computes the set difference between the previous snapshot and
// the current roster. Results are sorted for deterministic output.
func DiffMembers(prev, curr []string) (joined, left []string) {
	prevSet := make(map[string]struct{}, len(prev))
	for _, t := range prev {
		prevSet[t] = struct{}{}
	}
	currSet := make(map[string]struct{}, len(curr))
	for _, t := range curr {
		currSet[t] = struct{}{}
	}

	for t := range currSet {
		if _, ok := prevSet[t]; !ok {
			joined = append(joined, t)
		}
	}
	for t := range prevSet {
		if _, ok := currSet[t]; !ok {
			left = append(left, t)
		}
	}
	sort.Strings(joined)
	sort.Strings(left)
	return joined, left
}

// FormatNick renders the guild's nickname format for a member that joined a
// club. Placeholders: {IGN} and {CLUB}.
func FormatNick(format, ign, clubName string) string {
	if format == "" {
		format = "{IGN} | {CLUB}"
	}
	out := strings.ReplaceAll(format, "{IGN}", ign)
	out = strings.ReplaceAll(out, "{CLUB}", clubName)
	return out
}

// SyncGuild runs one poll tick for a guild: fetch each tracked club's
// roster, diff against the stored snapshot, dispatch join/leave notices and
// role/nickname updates, then store the new snapshot. A failed fetch skips
// that club so its snapshot stays untouched until the next tick.
func SyncGuild(b model.Bot, guildID string) {
	db := b.GetDB()

	gs, err := database.GetGuildSettings(db, guildID)
	if err != nil {
		log.Printf("clubsync: loading settings for guild %s: %v", guildID, err)
		return
	}
	if !gs.SyncEnabled {
		return
	}

	clubs, err := database.GetClubs(db, guildID)
	if err != nil {
		log.Printf("clubsync: loading clubs for guild %s: %v", guildID, err)
		return
	}

	for tag, club := range clubs {
		members, err := b.GetAPI().ClubMembers(tag)
		if err != nil {
			log.Printf("clubsync: fetching members of %s: %v", brawlapi.PrettyTag(tag), err)
			utils.LogWarn(b.GetSession(), b.GetConfig().LogChannelID, "clubsync", "roster fetch failed",
				fmt.Sprintf("%s (%s): %v", club.Name, brawlapi.PrettyTag(tag), err))
			continue
		}

		curr := make([]string, 0, len(members))
		names := make(map[string]string, len(members))
		for _, m := range members {
			nt := brawlapi.NormalizeTag(m.Tag)
			curr = append(curr, nt)
			names[nt] = m.Name
		}

		prev, err := database.GetSnapshot(db, guildID, tag)
		if err != nil {
			log.Printf("clubsync: loading snapshot of %s: %v", brawlapi.PrettyTag(tag), err)
			continue
		}
		if prev == nil {
			// First poll for this club: record the baseline silently.
			if err := database.SaveSnapshot(db, guildID, tag, curr); err != nil {
				log.Printf("clubsync: %v", err)
			}
			continue
		}

		joined, left := DiffMembers(prev, curr)
		for _, jt := range joined {
			handleJoin(b, gs, club, jt, names[jt])
		}
		for _, lt := range left {
			notifyLeave(b.GetSession(), noticeChannel(gs, club), club, lt)
		}

		if err := database.SaveSnapshot(db, guildID, tag, curr); err != nil {
			log.Printf("clubsync: %v", err)
		}
	}
}

// noticeChannel picks the club's own log channel, falling back to the
// guild-wide notice channel.
func noticeChannel(gs model.GuildSettings, club model.Club) string {
	if club.LogChannelID != "" {
		return club.LogChannelID
	}
	return gs.NotifyChannelID
}

func handleJoin(b model.Bot, gs model.GuildSettings, club model.Club, tag, ign string) {
	s := b.GetSession()
	db := b.GetDB()

	if channelID := noticeChannel(gs, club); channelID != "" {
		embed := &discordgo.MessageEmbed{
			Title:       "Club Join",
			Description: fmt.Sprintf("`%s` joined **%s**", brawlapi.PrettyTag(tag), club.Name),
			Color:       utils.ColorSuccess,
		}
		if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
			log.Printf("clubsync: posting join notice for %s: %v", club.Tag, err)
		}
	}

	userID, err := database.FindUserByTag(db, tag)
	if err != nil {
		log.Printf("clubsync: %v", err)
		return
	}
	if userID == "" {
		return
	}

	if club.RoleID != "" {
		if err := s.GuildMemberRoleAdd(gs.GuildID, userID, club.RoleID); err != nil {
			log.Printf("clubsync: assigning role %s to %s: %v", club.RoleID, userID, err)
		}
	}

	if ign == "" {
		if rec, err := database.GetUser(db, userID); err == nil && rec.IGNCache != "" {
			ign = rec.IGNCache
		}
	}
	if ign != "" {
		nick := FormatNick(gs.NickFormat, ign, club.Name)
		if err := s.GuildMemberNickname(gs.GuildID, userID, nick); err != nil {
			log.Printf("clubsync: setting nickname for %s: %v", userID, err)
		}
	}

	// A pending application for this club is now fulfilled.
	if pending, err := database.GetApplication(db, gs.GuildID, userID); err == nil && pending == club.Tag {
		if err := database.ClearApplication(db, gs.GuildID, userID); err != nil {
			log.Printf("clubsync: %v", err)
		}
	}
}

func notifyLeave(s *discordgo.Session, channelID string, club model.Club, tag string) {
	if channelID == "" {
		return
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Club Leave",
		Description: fmt.Sprintf("`%s` left **%s**", brawlapi.PrettyTag(tag), club.Name),
		Color:       utils.ColorError,
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("clubsync: posting leave notice for %s: %v", club.Tag, err)
	}
}

// RefreshClubCaches re-pulls name/badge/required trophies for every tracked
// club in a guild. Used by the daily refresh and the /clubs refresh command.
func RefreshClubCaches(b model.Bot, guildID string) (int, error) {
	db := b.GetDB()
	clubs, err := database.GetClubs(db, guildID)
	if err != nil {
		return 0, err
	}
	updated := 0
	for tag, club := range clubs {
		info, err := b.GetAPI().Club(tag)
		if err != nil {
			log.Printf("clubsync: refreshing cache of %s: %v", brawlapi.PrettyTag(tag), err)
			continue
		}
		club.Name = info.Name
		club.BadgeID = info.BadgeID
		club.RequiredTrophies = info.RequiredTrophies
		if err := database.UpdateClub(db, club); err != nil {
			log.Printf("clubsync: %v", err)
			continue
		}
		updated++
	}
	return updated, nil
}
