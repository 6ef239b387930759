package brawlapi

import "strings"

// NormalizeTag normalizes a Brawl Stars tag:
//   - strip surrounding whitespace
//   - drop any leading '#'
//   - uppercase
//   - convert letter 'O' to zero '0' (common user typo)
//
// Normalizing an already-normalized tag is a no-op.
func NormalizeTag(tag string) string {
	t := strings.TrimSpace(tag)
	t = strings.TrimLeft(t, "#")
	t = strings.ToUpper(t)
	return strings.ReplaceAll(t, "O", "0")
}

// PrettyTag renders a tag for display, with the leading '#'.
func PrettyTag(tag string) string {
	return "#" + NormalizeTag(tag)
}
