package model

// GuildSettings is the per-guild configuration row. A guild that has never
// been configured gets the zero value with defaults applied by the store.
type GuildSettings struct {
	GuildID           string `db:"guild_id"`
	BoardChannelID    string `db:"board_channel_id"`
	BoardMessageID    string `db:"board_message_id"`
	BoardEnabled      bool   `db:"board_enabled"`
	SyncEnabled       bool   `db:"sync_enabled"`
	SyncInterval      int    `db:"sync_interval"`
	NickFormat        string `db:"nick_format"`
	NotifyChannelID   string `db:"notify_channel_id"`
	ArchiveGuildID    string `db:"archive_guild_id"`
	ArchiveCategoryID string `db:"archive_category_id"`
	ArchiveDelete     bool   `db:"archive_delete"`
}

// Allowlist holds the roles and users permitted to run admin commands in a
// guild, on top of the administrator/manage-server fallback.
type Allowlist struct {
	RoleIDs []string
	UserIDs []string
}
