package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"clubkeeper/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the configuration from environment variables and the optional
// data/settings.yaml file.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		return nil, fmt.Errorf("APP_ID environment variable not set")
	}

	brawlToken := os.Getenv("BRAWL_API_TOKEN")
	if brawlToken == "" {
		return nil, fmt.Errorf("BRAWL_API_TOKEN environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	var developers []string
	if ids := os.Getenv("DEVELOPER_USER_IDS"); ids != "" {
		developers = strings.Split(ids, ",")
	}

	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	return &model.Config{
		BotToken:         token,
		AppID:            appID,
		BrawlToken:       brawlToken,
		LogChannelID:     logChannelID,
		DeveloperUserIDs: developers,
		Settings:         settings,
	}, nil
}

func loadSettings() (model.Settings, error) {
	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath("data")

	v.SetDefault("db_path", "data/clubkeeper.db")
	v.SetDefault("board_interval_seconds", 300)
	v.SetDefault("sync_tick_seconds", 30)
	v.SetDefault("wizard_timeout_seconds", 180)
	v.SetDefault("api_timeout_seconds", 15)
	v.SetDefault("archive_pause_ms", 100)
	v.SetDefault("default_nick_format", "{IGN} | {CLUB}")
	v.SetDefault("cache_sweep_hours", 1)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return model.Settings{}, fmt.Errorf("reading data/settings.yaml: %w", err)
		}
		log.Println("Warning: data/settings.yaml not found, using defaults")
	}

	var settings model.Settings
	if err := v.Unmarshal(&settings); err != nil {
		return model.Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	return settings, nil
}
