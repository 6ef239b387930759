// Package handlers wires the gateway events to the feature packages.
package handlers

import (
	"log"
	"strings"

	"clubkeeper/bot"
	"clubkeeper/handlers/admin"
	"clubkeeper/handlers/archive"
	"clubkeeper/handlers/clubboard"
	"clubkeeper/handlers/clubs"
	"clubkeeper/handlers/clubsync"
	"clubkeeper/handlers/onboarding"
	"clubkeeper/handlers/player"
	"clubkeeper/handlers/tags"

	"github.com/bwmarrin/discordgo"
)

// Register installs every command, component and gateway handler.
func Register(b *bot.Bot) {
	b.CommandHandlers["bs"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleBS(b, s, i)
	}
	b.CommandHandlers["clubs"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		clubs.Handle(b, s, i)
	}
	b.CommandHandlers["clubboard"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		clubboard.Handle(b, s, i)
	}
	b.CommandHandlers["clubsync"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		clubsync.Handle(b, s, i)
	}
	b.CommandHandlers["bsadmin"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		admin.Handle(b, s, i)
	}
	b.CommandHandlers["archive"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		archive.Handle(b, s, i)
	}
	b.CommandHandlers["archiveset"] = func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		archive.HandleSet(b, s, i)
	}

	pager := func(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
		player.HandlePage(b, s, i, parts)
	}
	b.ComponentHandlers["bs_player"] = pager
	b.ComponentHandlers["bs_members"] = pager
	b.ComponentHandlers["bs_brawlers"] = pager

	wizard := func(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
		onboarding.HandleComponent(b, s, i, parts)
	}
	b.ComponentHandlers["onboard_pick"] = wizard
	b.ComponentHandlers["onboard_cancel"] = wizard

	archiver := func(s *discordgo.Session, i *discordgo.InteractionCreate, parts []string) {
		archive.HandleComponent(b, s, i, parts)
	}
	b.ComponentHandlers["archive_confirm"] = archiver
	b.ComponentHandlers["archive_cancel"] = archiver

	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if err := b.RefreshCommands(g.ID); err != nil {
			log.Printf("handlers: %v", err)
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		dispatchInteraction(b, s, i)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		// DM replies feed the application wizard.
		if m.GuildID == "" {
			onboarding.HandleDM(b, s, m)
		}
	})
}

func dispatchInteraction(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if handler, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	case discordgo.InteractionMessageComponent:
		parts := strings.Split(i.MessageComponentData().CustomID, ":")
		if handler, ok := b.ComponentHandlers[parts[0]]; ok {
			handler(s, i, parts)
		}
	}
}

// handleBS fans /bs out to its feature packages by first-level option.
func handleBS(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}
	switch options[0].Name {
	case "tags":
		tags.Handle(b, s, i)
	case "rankings":
		player.HandleRankings(b, s, i)
	case "start":
		onboarding.HandleStart(b, s, i)
	case "verify":
		onboarding.HandleVerify(b, s, i)
	default:
		player.Handle(b, s, i)
	}
}
