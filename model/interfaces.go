package model

import (
	"clubkeeper/brawlapi"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// Bot provides an interface for bot functionality to avoid circular
// dependencies between the bot package and handler packages.
type Bot interface {
	GetConfig() *Config
	GetSession() *discordgo.Session
	GetDB() *sqlx.DB
	GetAPI() *brawlapi.Client
	// TryLockBoard claims the per-guild render flag; callers that get true
	// must call UnlockBoard when the render finishes.
	TryLockBoard(guildID string) bool
	UnlockBoard(guildID string)
}
