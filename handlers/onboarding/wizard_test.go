package onboarding

import (
	"testing"
	"time"

	"clubkeeper/brawlapi"
	"clubkeeper/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetSessions() {
	mu.Lock()
	defer mu.Unlock()
	sessions = make(map[string]*session)
}

func TestSessionStoreCopies(t *testing.T) {
	resetSessions()

	putSession(session{userID: "u1", step: stepAwaitTag, expires: time.Now().Add(time.Minute)})

	got, ok := getSession("u1")
	require.True(t, ok)

	// Mutating the copy must not leak into the store until it is put back.
	got.dmChannelID = "dm-1"
	got.step = stepChooseClub

	stored, ok := getSession("u1")
	require.True(t, ok)
	assert.Empty(t, stored.dmChannelID)
	assert.Equal(t, stepAwaitTag, stored.step)

	putSession(got)
	stored, ok = getSession("u1")
	require.True(t, ok)
	assert.Equal(t, "dm-1", stored.dmChannelID)
	assert.Equal(t, stepChooseClub, stored.step)
}

func TestSweepExpired(t *testing.T) {
	resetSessions()
	now := time.Now()

	putSession(session{userID: "stale", dmChannelID: "dm-stale", expires: now.Add(-time.Second)})
	putSession(session{userID: "live", dmChannelID: "dm-live", expires: now.Add(time.Minute)})

	expired := sweepExpired(now)
	require.Len(t, expired, 1)
	assert.Equal(t, "stale", expired[0].userID)
	assert.Equal(t, "dm-stale", expired[0].dmChannelID)

	_, ok := getSession("stale")
	assert.False(t, ok)
	_, ok = getSession("live")
	assert.True(t, ok)

	assert.Empty(t, sweepExpired(now), "second sweep finds nothing new")
}

func fullState(name, logChannel, leadRole string) ClubState {
	return ClubState{
		Club: model.Club{
			Tag:              name,
			Name:             name,
			LogChannelID:     logChannel,
			LeadershipRoleID: leadRole,
		},
		Members:  model.ClubCapacity,
		Required: 10000,
	}
}

func TestWaitlistTarget(t *testing.T) {
	full := []ClubState{
		fullState("alpha", "log-a", "lead-1"),
		fullState("beta", "log-b", "lead-2"),
		fullState("gamma", "", "lead-1"),
	}

	// The guild-wide notice channel wins when set.
	channelID, mentions := waitlistTarget(model.GuildSettings{NotifyChannelID: "notify"}, full)
	assert.Equal(t, "notify", channelID)
	assert.Equal(t, []string{"<@&lead-1>", "<@&lead-2>"}, mentions,
		"duplicate leadership roles collapse to one mention")

	// Without it, the first full club's log channel is used.
	channelID, _ = waitlistTarget(model.GuildSettings{}, full)
	assert.Equal(t, "log-a", channelID)

	channelID, mentions = waitlistTarget(model.GuildSettings{}, []ClubState{fullState("gamma", "", "")})
	assert.Empty(t, channelID)
	assert.Empty(t, mentions)
}

func TestBuildWaitlistEmbed(t *testing.T) {
	full := []ClubState{fullState("alpha", "", "lead-1")}
	embed := buildWaitlistEmbed("Spike", "2ABC", 32000, full)

	assert.Equal(t, "Applicant waiting — all eligible clubs full", embed.Title)
	assert.Contains(t, embed.Description, "Spike")
	assert.Contains(t, embed.Description, "#2ABC")
	assert.Contains(t, embed.Description, "32000")
	require.Len(t, embed.Fields, 1)
	assert.Contains(t, embed.Fields[0].Value, "alpha")
}

func TestEligibilityEmbedAllFull(t *testing.T) {
	p := &brawlapi.Player{Name: "Spike", Trophies: 32000}
	full := []ClubState{fullState("alpha", "", "")}

	embed := buildEligibilityEmbed(p, nil, full, nil)
	assert.Contains(t, embed.Description, "at capacity")
	assert.Contains(t, embed.Description, "Leadership has been pinged")

	embed = buildEligibilityEmbed(p, nil, nil, []ClubState{state("sweaty", 10, 90000)})
	assert.Contains(t, embed.Description, "trophy requirement")
}
