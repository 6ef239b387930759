package database

import (
	"database/sql"
	"errors"
	"fmt"

	"clubkeeper/model"

	"github.com/jmoiron/sqlx"
)

// GetGuildSettings returns the guild's settings row, or defaults if the
// guild has never been configured.
func GetGuildSettings(db *sqlx.DB, guildID string) (model.GuildSettings, error) {
	gs := model.GuildSettings{
		GuildID:       guildID,
		BoardEnabled:  true,
		SyncEnabled:   true,
		SyncInterval:  120,
		NickFormat:    "{IGN} | {CLUB}",
		ArchiveDelete: true,
	}
	err := db.Get(&gs, `SELECT * FROM guild_settings WHERE guild_id = ?`, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return gs, nil
	}
	if err != nil {
		return gs, fmt.Errorf("failed to load settings for guild %s: %w", guildID, err)
	}
	return gs, nil
}

// SaveGuildSettings upserts the full settings row.
func SaveGuildSettings(db *sqlx.DB, gs model.GuildSettings) error {
	_, err := db.NamedExec(`INSERT OR REPLACE INTO guild_settings
		(guild_id, board_channel_id, board_message_id, board_enabled,
		 sync_enabled, sync_interval, nick_format, notify_channel_id,
		 archive_guild_id, archive_category_id, archive_delete)
		VALUES (:guild_id, :board_channel_id, :board_message_id, :board_enabled,
		 :sync_enabled, :sync_interval, :nick_format, :notify_channel_id,
		 :archive_guild_id, :archive_category_id, :archive_delete)`, gs)
	if err != nil {
		return fmt.Errorf("failed to save settings for guild %s: %w", gs.GuildID, err)
	}
	return nil
}

// UpdateGuildSettings applies fn to the current settings and writes the
// result back. Read-modify-write with last write wins.
func UpdateGuildSettings(db *sqlx.DB, guildID string, fn func(*model.GuildSettings)) error {
	gs, err := GetGuildSettings(db, guildID)
	if err != nil {
		return err
	}
	fn(&gs)
	gs.GuildID = guildID
	return SaveGuildSettings(db, gs)
}

// GetAllowlist returns the admin allow-list for a guild.
func GetAllowlist(db *sqlx.DB, guildID string) (model.Allowlist, error) {
	var allow model.Allowlist
	if err := db.Select(&allow.RoleIDs, `SELECT role_id FROM allowlist_roles WHERE guild_id = ?`, guildID); err != nil {
		return allow, fmt.Errorf("failed to load allow-list roles: %w", err)
	}
	if err := db.Select(&allow.UserIDs, `SELECT user_id FROM allowlist_users WHERE guild_id = ?`, guildID); err != nil {
		return allow, fmt.Errorf("failed to load allow-list users: %w", err)
	}
	return allow, nil
}

// AllowRole adds a role to the guild's admin allow-list.
func AllowRole(db *sqlx.DB, guildID, roleID string) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO allowlist_roles (guild_id, role_id) VALUES (?, ?)`, guildID, roleID)
	return err
}

// DisallowRole removes a role from the guild's admin allow-list.
func DisallowRole(db *sqlx.DB, guildID, roleID string) error {
	_, err := db.Exec(`DELETE FROM allowlist_roles WHERE guild_id = ? AND role_id = ?`, guildID, roleID)
	return err
}

// AllowUser adds a user to the guild's admin allow-list.
func AllowUser(db *sqlx.DB, guildID, userID string) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO allowlist_users (guild_id, user_id) VALUES (?, ?)`, guildID, userID)
	return err
}

// DisallowUser removes a user from the guild's admin allow-list.
func DisallowUser(db *sqlx.DB, guildID, userID string) error {
	_, err := db.Exec(`DELETE FROM allowlist_users WHERE guild_id = ? AND user_id = ?`, guildID, userID)
	return err
}

// GuildsWithSettings lists every guild that has a settings row; used by the
// scheduler to find boards and pollers to run.
func GuildsWithSettings(db *sqlx.DB) ([]string, error) {
	var ids []string
	if err := db.Select(&ids, `SELECT guild_id FROM guild_settings UNION SELECT guild_id FROM clubs`); err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	return ids, nil
}
