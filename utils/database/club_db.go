package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"clubkeeper/model"

	"github.com/jmoiron/sqlx"
)

// ErrClubNotTracked is returned when an operation references a club tag the
// guild does not track.
var ErrClubNotTracked = errors.New("club is not tracked")

// GetClubs returns every tracked club for a guild, keyed by normalized tag.
func GetClubs(db *sqlx.DB, guildID string) (map[string]model.Club, error) {
	var rows []model.Club
	if err := db.Select(&rows, `SELECT * FROM clubs WHERE guild_id = ?`, guildID); err != nil {
		return nil, fmt.Errorf("failed to load clubs for guild %s: %w", guildID, err)
	}
	clubs := make(map[string]model.Club, len(rows))
	for _, c := range rows {
		clubs[c.Tag] = c
	}
	return clubs, nil
}

// GetClub returns one tracked club, or ErrClubNotTracked.
func GetClub(db *sqlx.DB, guildID, tag string) (model.Club, error) {
	var c model.Club
	err := db.Get(&c, `SELECT * FROM clubs WHERE guild_id = ? AND tag = ?`, guildID, tag)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrClubNotTracked
	}
	if err != nil {
		return c, fmt.Errorf("failed to load club %s: %w", tag, err)
	}
	return c, nil
}

// AddClub inserts a tracked club. Returns false if the tag is already tracked.
func AddClub(db *sqlx.DB, club model.Club) (bool, error) {
	res, err := db.NamedExec(`INSERT OR IGNORE INTO clubs
		(guild_id, tag, name, badge_id, role_id, log_channel_id, leadership_role_id, required_trophies)
		VALUES (:guild_id, :tag, :name, :badge_id, :role_id, :log_channel_id, :leadership_role_id, :required_trophies)`, club)
	if err != nil {
		return false, fmt.Errorf("failed to add club %s: %w", club.Tag, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RemoveClub deletes a tracked club along with its snapshot.
func RemoveClub(db *sqlx.DB, guildID, tag string) (model.Club, error) {
	club, err := GetClub(db, guildID, tag)
	if err != nil {
		return club, err
	}
	tx, err := db.Beginx()
	if err != nil {
		return club, err
	}
	if _, err := tx.Exec(`DELETE FROM clubs WHERE guild_id = ? AND tag = ?`, guildID, tag); err != nil {
		tx.Rollback()
		return club, fmt.Errorf("failed to remove club %s: %w", tag, err)
	}
	if _, err := tx.Exec(`DELETE FROM club_snapshots WHERE guild_id = ? AND club_tag = ?`, guildID, tag); err != nil {
		tx.Rollback()
		return club, fmt.Errorf("failed to remove snapshot for club %s: %w", tag, err)
	}
	return club, tx.Commit()
}

// UpdateClub writes back a modified club row.
func UpdateClub(db *sqlx.DB, club model.Club) error {
	res, err := db.NamedExec(`UPDATE clubs SET
		name = :name, badge_id = :badge_id, role_id = :role_id,
		log_channel_id = :log_channel_id, leadership_role_id = :leadership_role_id,
		required_trophies = :required_trophies
		WHERE guild_id = :guild_id AND tag = :tag`, club)
	if err != nil {
		return fmt.Errorf("failed to update club %s: %w", club.Tag, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClubNotTracked
	}
	return nil
}

// GetSnapshot returns the last-seen member tags for a club, or nil if the
// club has never been polled.
func GetSnapshot(db *sqlx.DB, guildID, clubTag string) ([]string, error) {
	var joined string
	err := db.Get(&joined, `SELECT member_tags FROM club_snapshots WHERE guild_id = ? AND club_tag = ?`, guildID, clubTag)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for club %s: %w", clubTag, err)
	}
	if joined == "" {
		return []string{}, nil
	}
	return strings.Split(joined, ","), nil
}

// SaveSnapshot stores the member tags seen on the latest poll.
func SaveSnapshot(db *sqlx.DB, guildID, clubTag string, memberTags []string) error {
	_, err := db.Exec(`INSERT OR REPLACE INTO club_snapshots (guild_id, club_tag, member_tags) VALUES (?, ?, ?)`,
		guildID, clubTag, strings.Join(memberTags, ","))
	if err != nil {
		return fmt.Errorf("failed to save snapshot for club %s: %w", clubTag, err)
	}
	return nil
}
