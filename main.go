package main

import (
	"log"
	"time"

	"clubkeeper/bot"
	"clubkeeper/brawlapi"
	"clubkeeper/config"
	"clubkeeper/handlers"
	"clubkeeper/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.Init(cfg.Settings.DBPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	api := brawlapi.New(cfg.BrawlToken, time.Duration(cfg.Settings.APITimeoutS)*time.Second)

	b, err := bot.New(cfg, db, api)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	if err := b.Run(); err != nil {
		log.Fatalf("Error running bot: %v", err)
	}
}
