// Package onboarding implements the club application flow: /bs verify for
// linking an account and a DM wizard that matches a player with the tracked
// club they can actually join.
package onboarding

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

type wizardStep int

const (
	stepAwaitTag wizardStep = iota
	stepChooseClub
)

type session struct {
	userID      string
	guildID     string
	dmChannelID string
	step        wizardStep

	// set once the tag has been validated
	tag      string
	ign      string
	trophies int

	expires time.Time
}

// The store hands out copies only; handlers mutate their copy and write it
// back with putSession, so no session struct is shared across goroutines.
// Last write wins, same as the rest of the per-guild state.
var (
	mu       sync.Mutex
	sessions = make(map[string]*session)
)

func getSession(userID string) (session, bool) {
	mu.Lock()
	defer mu.Unlock()
	sess, ok := sessions[userID]
	if !ok {
		return session{}, false
	}
	return *sess, true
}

func putSession(sess session) {
	mu.Lock()
	defer mu.Unlock()
	sessions[sess.userID] = &sess
}

func dropSession(userID string) {
	mu.Lock()
	defer mu.Unlock()
	delete(sessions, userID)
}

func wizardTimeout(b model.Bot) time.Duration {
	secs := b.GetConfig().Settings.WizardTimeoutS
	if secs <= 0 {
		secs = 180
	}
	return time.Duration(secs) * time.Second
}

// HandleStart starts the wizard for the caller of /bs start. The wizard
// itself runs in the user's DMs.
func HandleStart(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.GuildID == "" {
		utils.SendErrorResponse(s, i, "Run this in the server you want to join a club of.")
		return
	}
	userID := utils.InteractionUserID(i)

	if sess, ok := getSession(userID); ok && time.Now().Before(sess.expires) {
		utils.SendErrorResponse(s, i, "You already have an application running. Check your DMs.")
		return
	}
	dropSession(userID)

	sess := session{
		userID:  userID,
		guildID: i.GuildID,
		step:    stepAwaitTag,
		expires: time.Now().Add(wizardTimeout(b)),
	}

	// A saved default tag skips the ask-for-tag step.
	rec, err := database.GetUser(b.GetDB(), userID)
	if err != nil {
		log.Printf("onboarding: %v", err)
	}

	if tag := rec.DefaultTag(); tag != "" {
		utils.SendSimpleResponse(s, i, "📬 Check your DMs.")
		if err := startWithTag(b, &sess, tag); err != nil {
			log.Printf("onboarding: starting with saved tag: %v", err)
			utils.SendPrivateMessage(s, userID,
				"Your saved tag could not be verified. Reply here with your player tag (like `#2ABC`).")
			putSession(sess)
		}
		return
	}

	channelID, err := utils.SendPrivateEmbed(s, userID, &discordgo.MessageEmbed{
		Title:       "Club Application",
		Description: "Reply here with your player tag (like `#2ABC`) and I'll find a club for you.",
		Color:       utils.ColorAccent,
	})
	if err != nil {
		utils.SendErrorResponse(s, i, "I could not DM you. Allow direct messages from this server and try again.")
		return
	}
	sess.dmChannelID = channelID
	putSession(sess)
	utils.SendSimpleResponse(s, i, "📬 Check your DMs.")
}

// HandleDM consumes replies in the wizard's DM conversation.
func HandleDM(b model.Bot, s *discordgo.Session, m *discordgo.MessageCreate) {
	sess, ok := getSession(m.Author.ID)
	if !ok || sess.step != stepAwaitTag {
		return
	}
	if time.Now().After(sess.expires) {
		dropSession(m.Author.ID)
		s.ChannelMessageSend(m.ChannelID, "⏲️ The application timed out. Run `/bs start` again.")
		return
	}
	sess.dmChannelID = m.ChannelID
	putSession(sess)

	tag := brawlapi.NormalizeTag(m.Content)
	if tag == "" {
		s.ChannelMessageSend(m.ChannelID, "That does not look like a tag. Try something like `#2ABC`.")
		return
	}

	if err := startWithTag(b, &sess, tag); err != nil {
		s.ChannelMessageSend(m.ChannelID, "❌ "+utils.APIErrorMessage(err, "Player"))
	}
}

// startWithTag validates the tag and moves the session to club selection.
// When every club the player qualifies for is at capacity, leadership is
// notified so a seat can be freed.
func startWithTag(b model.Bot, sess *session, tag string) error {
	s := b.GetSession()

	p, err := b.GetAPI().Player(tag)
	if err != nil {
		return err
	}

	sess.tag = brawlapi.NormalizeTag(p.Tag)
	sess.ign = p.Name
	sess.trophies = p.Trophies

	// Remember the verified tag for next time. A full list is fine to skip.
	if err := database.AddUserTag(b.GetDB(), sess.userID, sess.tag); err != nil &&
		!errors.Is(err, database.ErrTagExists) && !errors.Is(err, database.ErrTagLimit) {
		log.Printf("onboarding: %v", err)
	}
	if err := database.CacheUserPlayer(b.GetDB(), sess.userID, p.Name, brawlapi.NormalizeTag(p.Club.Tag)); err != nil {
		log.Printf("onboarding: %v", err)
	}

	open, full, under, err := evaluateClubs(b, sess.guildID, p.Trophies)
	if err != nil {
		return err
	}

	if len(open) == 0 && len(full) > 0 {
		notifyWaitlist(b, *sess, full)
	}

	embed := buildEligibilityEmbed(p, open, full, under)
	components := buildChoiceComponents(sess.guildID, open)

	channelID, err := utils.SendPrivateEmbedWithComponents(s, sess.userID, embed, components)
	if err != nil {
		return err
	}
	sess.dmChannelID = channelID
	sess.step = stepChooseClub
	sess.expires = time.Now().Add(wizardTimeout(b))
	putSession(*sess)
	return nil
}

func evaluateClubs(b model.Bot, guildID string, trophies int) (open, full, under []ClubState, err error) {
	clubs, err := database.GetClubs(b.GetDB(), guildID)
	if err != nil {
		return nil, nil, nil, err
	}

	states := make([]ClubState, 0, len(clubs))
	for tag, club := range clubs {
		live, err := b.GetAPI().Club(tag)
		if err != nil {
			log.Printf("onboarding: fetching %s: %v", brawlapi.PrettyTag(tag), err)
			continue
		}
		states = append(states, ClubState{
			Club:     club,
			Members:  len(live.Members),
			Required: live.RequiredTrophies,
		})
	}

	open, full, under = SplitEligible(states, trophies)
	return open, full, under, nil
}

func clubLines(states []ClubState) string {
	var sb strings.Builder
	for _, st := range states {
		fmt.Fprintf(&sb, "**%s** — %d/%d · required 🏆 %d\n",
			st.Club.Name, st.Members, model.ClubCapacity, st.Required)
	}
	return sb.String()
}

func buildEligibilityEmbed(p *brawlapi.Player, open, full, under []ClubState) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Clubs for %s (🏆 %d)", p.Name, p.Trophies),
		Color: utils.ColorAccent,
	}
	switch {
	case len(open) > 0:
		embed.Description = "Pick a club below to apply."
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🟢 Open to you", Value: clubLines(open),
		})
	case len(full) > 0:
		embed.Description = "Every club you qualify for is at capacity right now. Leadership has been pinged and will make space."
		embed.Color = utils.ColorWarn
	default:
		embed.Description = "You don't meet the trophy requirement for any club yet. Keep pushing and try again soon."
		embed.Color = utils.ColorWarn
	}
	if len(full) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🔴 Currently full", Value: clubLines(full),
		})
	}
	if len(under) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "🏆 More trophies needed", Value: clubLines(under),
		})
	}
	return embed
}

// waitlistTarget picks where the all-clubs-full notice goes (the guild's
// notify channel, else the first full club's log channel) and collects the
// distinct leadership role mentions of the clubs the applicant qualifies for.
func waitlistTarget(gs model.GuildSettings, full []ClubState) (string, []string) {
	channelID := gs.NotifyChannelID
	var mentions []string
	seen := make(map[string]bool)
	for _, st := range full {
		if channelID == "" && st.Club.LogChannelID != "" {
			channelID = st.Club.LogChannelID
		}
		if id := st.Club.LeadershipRoleID; id != "" && !seen[id] {
			seen[id] = true
			mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
		}
	}
	return channelID, mentions
}

func buildWaitlistEmbed(ign, tag string, trophies int, full []ClubState) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Applicant waiting — all eligible clubs full",
		Description: fmt.Sprintf("**%s** (`%s` · 🏆 %d) qualifies, but every eligible club is at %d/%d.",
			ign, brawlapi.PrettyTag(tag), trophies, model.ClubCapacity, model.ClubCapacity),
		Color: utils.ColorError,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🔴 Full clubs", Value: clubLines(full)},
		},
	}
}

// notifyWaitlist tells leadership that a qualified applicant is stuck
// behind full clubs.
func notifyWaitlist(b model.Bot, sess session, full []ClubState) {
	gs, err := database.GetGuildSettings(b.GetDB(), sess.guildID)
	if err != nil {
		log.Printf("onboarding: %v", err)
		return
	}
	channelID, mentions := waitlistTarget(gs, full)
	if channelID == "" {
		return
	}
	_, err = b.GetSession().ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: strings.Join(mentions, " "),
		Embeds:  []*discordgo.MessageEmbed{buildWaitlistEmbed(sess.ign, sess.tag, sess.trophies, full)},
	})
	if err != nil {
		log.Printf("onboarding: posting waitlist notice for guild %s: %v", sess.guildID, err)
	}
}

func buildChoiceComponents(guildID string, open []ClubState) []discordgo.MessageComponent {
	var components []discordgo.MessageComponent
	if len(open) > 0 {
		options := make([]discordgo.SelectMenuOption, 0, len(open))
		for _, st := range open {
			options = append(options, discordgo.SelectMenuOption{
				Label:       st.Club.Name,
				Value:       st.Club.Tag,
				Description: fmt.Sprintf("%d/%d members, requires %d trophies", st.Members, model.ClubCapacity, st.Required),
			})
		}
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "onboard_pick:" + guildID,
					Placeholder: "Choose a club",
					Options:     options,
				},
			},
		})
	}
	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Cancel",
				Style:    discordgo.SecondaryButton,
				CustomID: "onboard_cancel",
			},
		},
	})
	return components
}

// HandleComponent reacts to the wizard's select menu and cancel button.
// parts is the custom ID split on ":".
func HandleComponent(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
	userID := utils.InteractionUserID(i)

	switch parts[0] {
	case "onboard_cancel":
		dropSession(userID)
		finishWizard(s, i, "Application cancelled.")
	case "onboard_pick":
		if len(parts) < 2 {
			return
		}
		sess, ok := getSession(userID)
		if !ok || sess.step != stepChooseClub {
			finishWizard(s, i, "This application is no longer active. Run `/bs start` again.")
			return
		}
		if time.Now().After(sess.expires) {
			dropSession(userID)
			finishWizard(s, i, "⏲️ The application timed out. Run `/bs start` again.")
			return
		}
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return
		}
		apply(b, s, i, sess, parts[1], values[0])
	}
}

func apply(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sess session, guildID, clubTag string) {
	club, err := database.GetClub(b.GetDB(), guildID, clubTag)
	if err != nil {
		log.Printf("onboarding: %v", err)
		finishWizard(s, i, "❌ That club is no longer tracked. Run `/bs start` again.")
		dropSession(sess.userID)
		return
	}

	if err := database.SetApplication(b.GetDB(), guildID, sess.userID, club.Tag); err != nil {
		log.Printf("onboarding: %v", err)
		finishWizard(s, i, "❌ Could not record your application. Try again later.")
		return
	}

	notifyLeadership(b, s, guildID, club, sess)
	dropSession(sess.userID)

	finishWizard(s, i, fmt.Sprintf(
		"✅ Applied to **%s**! Request to join `%s` in game with **%s**; your roles update automatically once you are in.",
		club.Name, brawlapi.PrettyTag(club.Tag), sess.ign))
}

// notifyLeadership pings the club's leadership role in its notice channel
// so someone accepts the in-game request.
func notifyLeadership(b model.Bot, s *discordgo.Session, guildID string, club model.Club, sess session) {
	channelID := club.LogChannelID
	if channelID == "" {
		if gs, err := database.GetGuildSettings(b.GetDB(), guildID); err == nil {
			channelID = gs.NotifyChannelID
		}
	}
	if channelID == "" {
		return
	}
	content := ""
	if club.LeadershipRoleID != "" {
		content = fmt.Sprintf("<@&%s>", club.LeadershipRoleID)
	}
	embed := &discordgo.MessageEmbed{
		Title: "New Application",
		Description: fmt.Sprintf("<@%s> wants to join **%s**\nIGN: **%s** `%s` · 🏆 %d",
			sess.userID, club.Name, sess.ign, brawlapi.PrettyTag(sess.tag), sess.trophies),
		Color: utils.ColorAccent,
	}
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		log.Printf("onboarding: notifying leadership of %s: %v", club.Tag, err)
	}
}

func finishWizard(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("onboarding: updating wizard message: %v", err)
	}
}

// sweepExpired removes sessions past their deadline and returns copies of
// them, taken while the lock is held.
func sweepExpired(now time.Time) []session {
	mu.Lock()
	defer mu.Unlock()
	var expired []session
	for id, sess := range sessions {
		if now.After(sess.expires) {
			expired = append(expired, *sess)
			delete(sessions, id)
		}
	}
	return expired
}

// Sweep expires idle wizard sessions; the scheduler calls this periodically.
func Sweep(b model.Bot) {
	for _, sess := range sweepExpired(time.Now()) {
		if sess.dmChannelID != "" {
			b.GetSession().ChannelMessageSend(sess.dmChannelID,
				"⏲️ The application timed out. Run `/bs start` again when you are ready.")
		}
	}
}
