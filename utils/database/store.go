package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the sqlite database and ensures all tables exist.
func Init(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != ":memory:" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schemas := []string{
		`CREATE TABLE IF NOT EXISTS guild_settings (
			guild_id TEXT NOT NULL PRIMARY KEY,
			board_channel_id TEXT NOT NULL DEFAULT '',
			board_message_id TEXT NOT NULL DEFAULT '',
			board_enabled INTEGER NOT NULL DEFAULT 1,
			sync_enabled INTEGER NOT NULL DEFAULT 1,
			sync_interval INTEGER NOT NULL DEFAULT 120,
			nick_format TEXT NOT NULL DEFAULT '{IGN} | {CLUB}',
			notify_channel_id TEXT NOT NULL DEFAULT '',
			archive_guild_id TEXT NOT NULL DEFAULT '',
			archive_category_id TEXT NOT NULL DEFAULT '',
			archive_delete INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS allowlist_roles (
			guild_id TEXT NOT NULL,
			role_id TEXT NOT NULL,
			PRIMARY KEY (guild_id, role_id)
		);`,
		`CREATE TABLE IF NOT EXISTS allowlist_users (
			guild_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			PRIMARY KEY (guild_id, user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS clubs (
			guild_id TEXT NOT NULL,
			tag TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			badge_id INTEGER NOT NULL DEFAULT 0,
			role_id TEXT NOT NULL DEFAULT '',
			log_channel_id TEXT NOT NULL DEFAULT '',
			leadership_role_id TEXT NOT NULL DEFAULT '',
			required_trophies INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (guild_id, tag)
		);`,
		`CREATE TABLE IF NOT EXISTS club_snapshots (
			guild_id TEXT NOT NULL,
			club_tag TEXT NOT NULL,
			member_tags TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (guild_id, club_tag)
		);`,
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT NOT NULL PRIMARY KEY,
			tags TEXT NOT NULL DEFAULT '',
			default_index INTEGER NOT NULL DEFAULT 0,
			ign_cache TEXT NOT NULL DEFAULT '',
			club_tag_cache TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS applications (
			guild_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			club_tag TEXT NOT NULL,
			PRIMARY KEY (guild_id, user_id)
		);`,
	}
	for _, schema := range schemas {
		if _, err := db.Exec(schema); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}

	return db, nil
}
