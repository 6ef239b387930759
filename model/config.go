package model

// Settings holds the tunables read from data/settings.yaml via viper.
// Every field has a default, so the file itself is optional.
type Settings struct {
	DBPath          string `mapstructure:"db_path"`
	BoardIntervalS  int    `mapstructure:"board_interval_seconds"`
	SyncTickS       int    `mapstructure:"sync_tick_seconds"`
	WizardTimeoutS  int    `mapstructure:"wizard_timeout_seconds"`
	APITimeoutS     int    `mapstructure:"api_timeout_seconds"`
	ArchivePauseMS  int    `mapstructure:"archive_pause_ms"`
	DefaultNickFmt  string `mapstructure:"default_nick_format"`
	CacheSweepHours int    `mapstructure:"cache_sweep_hours"`
}

// Config stores the application configuration.
type Config struct {
	BotToken         string
	AppID            string
	BrawlToken       string
	LogChannelID     string
	DeveloperUserIDs []string
	Settings         Settings
}
