package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"clubkeeper/model"

	"github.com/jmoiron/sqlx"
)

var (
	// ErrTagLimit is returned when a user already has the maximum number
	// of saved tags.
	ErrTagLimit = errors.New("tag limit reached")
	// ErrTagExists is returned when the tag is already in the user's list.
	ErrTagExists = errors.New("tag already saved")
)

type userRow struct {
	UserID       string `db:"user_id"`
	Tags         string `db:"tags"`
	DefaultIndex int    `db:"default_index"`
	IGNCache     string `db:"ign_cache"`
	ClubTagCache string `db:"club_tag_cache"`
}

func (r userRow) record() model.UserRecord {
	rec := model.UserRecord{
		UserID:       r.UserID,
		DefaultIndex: r.DefaultIndex,
		IGNCache:     r.IGNCache,
		ClubTagCache: r.ClubTagCache,
	}
	if r.Tags != "" {
		rec.Tags = strings.Split(r.Tags, ",")
	}
	return rec
}

// GetUser returns the user's tag record, or an empty record if none exists.
func GetUser(db *sqlx.DB, userID string) (model.UserRecord, error) {
	var row userRow
	err := db.Get(&row, `SELECT * FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserRecord{UserID: userID}, nil
	}
	if err != nil {
		return model.UserRecord{UserID: userID}, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return row.record(), nil
}

// SaveUser upserts the user's tag record.
func SaveUser(db *sqlx.DB, rec model.UserRecord) error {
	row := userRow{
		UserID:       rec.UserID,
		Tags:         strings.Join(rec.Tags, ","),
		DefaultIndex: rec.DefaultIndex,
		IGNCache:     rec.IGNCache,
		ClubTagCache: rec.ClubTagCache,
	}
	_, err := db.NamedExec(`INSERT OR REPLACE INTO users
		(user_id, tags, default_index, ign_cache, club_tag_cache)
		VALUES (:user_id, :tags, :default_index, :ign_cache, :club_tag_cache)`, row)
	if err != nil {
		return fmt.Errorf("failed to save user %s: %w", rec.UserID, err)
	}
	return nil
}

// AddUserTag appends a normalized tag to the user's list. The stored record
// is left untouched when the tag is a duplicate or the list is full.
func AddUserTag(db *sqlx.DB, userID, tag string) error {
	rec, err := GetUser(db, userID)
	if err != nil {
		return err
	}
	for _, t := range rec.Tags {
		if t == tag {
			return ErrTagExists
		}
	}
	if len(rec.Tags) >= model.MaxSavedTags {
		return ErrTagLimit
	}
	rec.Tags = append(rec.Tags, tag)
	return SaveUser(db, rec)
}

// CacheUserPlayer stores the validated IGN and club tag alongside the tags.
func CacheUserPlayer(db *sqlx.DB, userID, ign, clubTag string) error {
	rec, err := GetUser(db, userID)
	if err != nil {
		return err
	}
	rec.IGNCache = ign
	rec.ClubTagCache = clubTag
	return SaveUser(db, rec)
}

// FindUserByTag returns the user ID that has the given normalized tag saved,
// or "" when nobody has claimed it.
func FindUserByTag(db *sqlx.DB, tag string) (string, error) {
	var rows []userRow
	if err := db.Select(&rows, `SELECT * FROM users WHERE tags LIKE ?`, "%"+tag+"%"); err != nil {
		return "", fmt.Errorf("failed to search users by tag: %w", err)
	}
	for _, row := range rows {
		for _, t := range strings.Split(row.Tags, ",") {
			if t == tag {
				return row.UserID, nil
			}
		}
	}
	return "", nil
}
