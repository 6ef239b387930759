// Package bot owns the Discord session, the shared service handles and the
// background scheduler.
package bot

import (
	"fmt"
	"sync"
	"sync/atomic"

	"clubkeeper/brawlapi"
	"clubkeeper/commands"
	"clubkeeper/model"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// Bot bundles the session with everything the handlers need.
type Bot struct {
	Session *discordgo.Session
	DB      *sqlx.DB
	API     *brawlapi.Client

	config atomic.Value // *model.Config

	// CommandHandlers maps a top-level command name to its handler.
	CommandHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)

	// ComponentHandlers maps a custom ID prefix to its handler; the full
	// custom ID arrives split on ":".
	ComponentHandlers map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string)

	scheduler *Scheduler

	boardMu   sync.Mutex
	boardBusy map[string]bool
}

// New creates the bot around an authenticated session.
func New(cfg *model.Config, db *sqlx.DB, api *brawlapi.Client) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	b := &Bot{
		Session:           session,
		DB:                db,
		API:               api,
		CommandHandlers:   make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)),
		ComponentHandlers: make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string)),
		boardBusy:         make(map[string]bool),
	}
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

// GetConfig returns the current configuration.
func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

// GetSession returns the Discord session.
func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

// GetDB returns the database handle.
func (b *Bot) GetDB() *sqlx.DB {
	return b.DB
}

// GetAPI returns the Brawl Stars API client.
func (b *Bot) GetAPI() *brawlapi.Client {
	return b.API
}

// TryLockBoard claims the board render flag for a guild. Returns false when
// a render is already in flight.
func (b *Bot) TryLockBoard(guildID string) bool {
	b.boardMu.Lock()
	defer b.boardMu.Unlock()
	if b.boardBusy[guildID] {
		return false
	}
	b.boardBusy[guildID] = true
	return true
}

// UnlockBoard releases the board render flag.
func (b *Bot) UnlockBoard(guildID string) {
	b.boardMu.Lock()
	defer b.boardMu.Unlock()
	delete(b.boardBusy, guildID)
}

// RefreshCommands overwrites the guild's slash commands with the current set.
func (b *Bot) RefreshCommands(guildID string) error {
	_, err := b.Session.ApplicationCommandBulkOverwrite(b.GetConfig().AppID, guildID, commands.Generate())
	if err != nil {
		return fmt.Errorf("registering commands for guild %s: %w", guildID, err)
	}
	return nil
}
