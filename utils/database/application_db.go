package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SetApplication records which club a member applied to.
func SetApplication(db *sqlx.DB, guildID, userID, clubTag string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO applications (guild_id, user_id, club_tag) VALUES (?, ?, ?)`,
		guildID, userID, clubTag)
	if err != nil {
		return fmt.Errorf("failed to save application for user %s: %w", userID, err)
	}
	return nil
}

// GetApplication returns the club tag a member applied to, or "".
func GetApplication(db *sqlx.DB, guildID, userID string) (string, error) {
	var tag string
	err := db.Get(&tag, `SELECT club_tag FROM applications WHERE guild_id = ? AND user_id = ?`, guildID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load application for user %s: %w", userID, err)
	}
	return tag, nil
}

// ClearApplication removes a member's pending application.
func ClearApplication(db *sqlx.DB, guildID, userID string) error {
	_, err := db.Exec(`DELETE FROM applications WHERE guild_id = ? AND user_id = ?`, guildID, userID)
	return err
}
