package model

// MaxSavedTags caps how many player tags a user may save.
const MaxSavedTags = 3

// UserRecord is the per-user tag store: up to MaxSavedTags verified tags,
// which one is the default, and cached in-game name / club tag.
type UserRecord struct {
	UserID       string
	Tags         []string
	DefaultIndex int
	IGNCache     string
	ClubTagCache string
}

// DefaultTag returns the user's default tag, clamping the index into range.
// Returns "" when no tags are saved.
func (u *UserRecord) DefaultTag() string {
	if len(u.Tags) == 0 {
		return ""
	}
	i := u.DefaultIndex
	if i < 0 {
		i = 0
	}
	if i >= len(u.Tags) {
		i = len(u.Tags) - 1
	}
	return u.Tags[i]
}
