package database

import (
	"testing"

	"clubkeeper/model"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGuildSettingsDefaults(t *testing.T) {
	db := testDB(t)

	gs, err := GetGuildSettings(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", gs.GuildID)
	assert.True(t, gs.SyncEnabled)
	assert.Equal(t, 120, gs.SyncInterval)
	assert.Equal(t, "{IGN} | {CLUB}", gs.NickFormat)
	assert.True(t, gs.ArchiveDelete)
}

func TestGuildSettingsRoundTrip(t *testing.T) {
	db := testDB(t)

	err := UpdateGuildSettings(db, "g1", func(gs *model.GuildSettings) {
		gs.BoardChannelID = "chan-1"
		gs.SyncInterval = 300
		gs.SyncEnabled = false
	})
	require.NoError(t, err)

	gs, err := GetGuildSettings(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, "chan-1", gs.BoardChannelID)
	assert.Equal(t, 300, gs.SyncInterval)
	assert.False(t, gs.SyncEnabled)
	// untouched fields keep their defaults
	assert.Equal(t, "{IGN} | {CLUB}", gs.NickFormat)
}

func TestAllowlist(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AllowRole(db, "g1", "r1"))
	require.NoError(t, AllowRole(db, "g1", "r1")) // idempotent
	require.NoError(t, AllowUser(db, "g1", "u1"))

	allow, err := GetAllowlist(db, "g1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, allow.RoleIDs)
	assert.Equal(t, []string{"u1"}, allow.UserIDs)

	require.NoError(t, DisallowRole(db, "g1", "r1"))
	allow, err = GetAllowlist(db, "g1")
	require.NoError(t, err)
	assert.Empty(t, allow.RoleIDs)
}

func TestAddUserTagLimit(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AddUserTag(db, "u1", "AAA"))
	require.NoError(t, AddUserTag(db, "u1", "BBB"))
	require.NoError(t, AddUserTag(db, "u1", "CCC"))

	err := AddUserTag(db, "u1", "DDD")
	assert.ErrorIs(t, err, ErrTagLimit)

	// rejected save must not mutate the stored record
	rec, err := GetUser(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, rec.Tags)

	assert.ErrorIs(t, AddUserTag(db, "u1", "BBB"), ErrTagExists)
}

func TestUserDefaultTagClamped(t *testing.T) {
	db := testDB(t)

	require.NoError(t, SaveUser(db, model.UserRecord{
		UserID:       "u1",
		Tags:         []string{"AAA", "BBB"},
		DefaultIndex: 7,
	}))
	rec, err := GetUser(db, "u1")
	require.NoError(t, err)
	assert.Equal(t, "BBB", rec.DefaultTag())
}

func TestClubLifecycle(t *testing.T) {
	db := testDB(t)

	club := model.Club{GuildID: "g1", Tag: "CLB", Name: "The Club", RequiredTrophies: 20000}
	added, err := AddClub(db, club)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = AddClub(db, club)
	require.NoError(t, err)
	assert.False(t, added, "second add of same tag should be a no-op")

	got, err := GetClub(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Equal(t, "The Club", got.Name)

	got.RoleID = "role-1"
	require.NoError(t, UpdateClub(db, got))
	got, err = GetClub(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Equal(t, "role-1", got.RoleID)

	_, err = GetClub(db, "g1", "NOPE")
	assert.ErrorIs(t, err, ErrClubNotTracked)

	removed, err := RemoveClub(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Equal(t, "The Club", removed.Name)
	_, err = GetClub(db, "g1", "CLB")
	assert.ErrorIs(t, err, ErrClubNotTracked)
}

func TestSnapshotRoundTrip(t *testing.T) {
	db := testDB(t)

	snap, err := GetSnapshot(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Nil(t, snap, "unpolled club has no snapshot")

	require.NoError(t, SaveSnapshot(db, "g1", "CLB", []string{"B", "C", "D"}))
	snap, err = GetSnapshot(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, snap)

	require.NoError(t, SaveSnapshot(db, "g1", "CLB", nil))
	snap, err = GetSnapshot(db, "g1", "CLB")
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestFindUserByTag(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AddUserTag(db, "u1", "AAA"))
	require.NoError(t, AddUserTag(db, "u2", "AAAB"))

	id, err := FindUserByTag(db, "AAA")
	require.NoError(t, err)
	assert.Equal(t, "u1", id, "substring matches must not count")

	id, err = FindUserByTag(db, "ZZZ")
	require.NoError(t, err)
	assert.Equal(t, "", id)
}
