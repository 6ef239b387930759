package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// SendPrivateMessage sends a direct message to a user.
func SendPrivateMessage(s *discordgo.Session, userID, message string) error {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error creating private channel with user %s: %v", userID, err)
		return err
	}
	_, err = s.ChannelMessageSend(channel.ID, message)
	if err != nil {
		log.Printf("Error sending private message to user %s: %v", userID, err)
	}
	return err
}

// SendPrivateEmbed sends a direct message with an embed to a user and
// returns the channel it was sent to.
func SendPrivateEmbed(s *discordgo.Session, userID string, embed *discordgo.MessageEmbed) (string, error) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error creating private channel with user %s: %v", userID, err)
		return "", err
	}
	_, err = s.ChannelMessageSendEmbed(channel.ID, embed)
	if err != nil {
		log.Printf("Error sending private embed to user %s: %v", userID, err)
		return "", err
	}
	return channel.ID, nil
}

// SendPrivateEmbedWithComponents sends an embed with components to a user's DM.
func SendPrivateEmbedWithComponents(s *discordgo.Session, userID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (string, error) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		log.Printf("Error creating private channel with user %s: %v", userID, err)
		return "", err
	}
	_, err = s.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		log.Printf("Error sending private message to user %s: %v", userID, err)
		return "", err
	}
	return channel.ID, nil
}
