package utils

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
)

type logLevel string

const (
	levelInfo  logLevel = "INFO"
	levelWarn  logLevel = "WARN"
	levelError logLevel = "ERROR"
)

func levelColor(level logLevel) int {
	switch level {
	case levelInfo:
		return ColorSuccess
	case levelWarn:
		return ColorWarn
	case levelError:
		return ColorError
	default:
		return ColorAccent
	}
}

func sendLog(s *discordgo.Session, channelID string, level logLevel, module, operation, extra string) error {
	if channelID == "" {
		return nil
	}
	embed := &discordgo.MessageEmbed{
		Title: string(level) + " Log",
		Color: levelColor(level),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module, Inline: true},
			{Name: "Operation", Value: operation, Inline: true},
			{Name: "Details", Value: extra},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// LogInfo posts an info embed to the configured log channel.
func LogInfo(s *discordgo.Session, channelID, module, operation, extra string) {
	if err := sendLog(s, channelID, levelInfo, module, operation, extra); err != nil {
		log.Printf("Failed to send info log to channel %s: %v", channelID, err)
	}
}

// LogWarn posts a warning embed to the configured log channel.
func LogWarn(s *discordgo.Session, channelID, module, operation, extra string) {
	if err := sendLog(s, channelID, levelWarn, module, operation, extra); err != nil {
		log.Printf("Failed to send warn log to channel %s: %v", channelID, err)
	}
}

// LogError posts an error embed to the configured log channel.
func LogError(s *discordgo.Session, channelID, module, operation, extra string) {
	if err := sendLog(s, channelID, levelError, module, operation, extra); err != nil {
		log.Printf("Failed to send error log to channel %s: %v", channelID, err)
	}
}
