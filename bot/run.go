package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"clubkeeper/utils"
)

// Run opens the gateway connection, registers the slash commands for every
// guild the bot is in, starts the scheduler and blocks until SIGINT/SIGTERM.
func (b *Bot) Run() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("opening gateway connection: %w", err)
	}
	defer b.Session.Close()

	for _, guild := range b.Session.State.Guilds {
		if err := b.RefreshCommands(guild.ID); err != nil {
			log.Printf("bot: %v", err)
		}
	}

	b.scheduler.Start()
	defer b.scheduler.Stop()

	log.Println("Bot is running. Press Ctrl+C to exit.")
	utils.LogInfo(b.Session, b.GetConfig().LogChannelID, "bot", "startup",
		fmt.Sprintf("connected to %d guild(s)", len(b.Session.State.Guilds)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	return nil
}
