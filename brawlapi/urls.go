package brawlapi

import "fmt"

// Brawlify CDN endpoints for images the official API only returns IDs for.
const (
	brawlifyProfileURL = "https://cdn.brawlify.com/profile/%d.png"
	brawlifyBadgeURL   = "https://cdn.brawlify.com/club/%d.png"
	brawlifyBrawlerURL = "https://cdn.brawlify.com/brawler/%d.png"
)

func PlayerAvatarURL(iconID int) string {
	return fmt.Sprintf(brawlifyProfileURL, iconID)
}

func ClubBadgeURL(badgeID int) string {
	return fmt.Sprintf(brawlifyBadgeURL, badgeID)
}

func BrawlerIconURL(brawlerID int) string {
	return fmt.Sprintf(brawlifyBrawlerURL, brawlerID)
}
