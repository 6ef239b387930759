package model

// ClubCapacity is the member count at which a Brawl Stars club is full.
const ClubCapacity = 30

// Club is a tracked club record. Name, badge and required trophies are
// cached from the API and refreshed periodically; they are not authoritative.
type Club struct {
	GuildID          string `db:"guild_id"`
	Tag              string `db:"tag"`
	Name             string `db:"name"`
	BadgeID          int    `db:"badge_id"`
	RoleID           string `db:"role_id"`
	LogChannelID     string `db:"log_channel_id"`
	LeadershipRoleID string `db:"leadership_role_id"`
	RequiredTrophies int    `db:"required_trophies"`
}
