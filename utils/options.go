package utils

import "github.com/bwmarrin/discordgo"

// OptionMap flattens interaction options into a map keyed by option name.
func OptionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// OptionString returns a string option value or "" when absent.
func OptionString(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := m[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// OptionInt returns an integer option value or the fallback when absent.
func OptionInt(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if opt, ok := m[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

// InteractionUserID returns the invoking user's ID in both guild and DM
// interactions.
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
