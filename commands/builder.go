package commands

import "github.com/bwmarrin/discordgo"

// Generate builds the full slash command surface registered per guild.
func Generate() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		bsCommand(),
		clubsCommand(),
		clubboardCommand(),
		clubsyncCommand(),
		bsadminCommand(),
		archiveCommand(),
		archivesetCommand(),
	}
}

func tagOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "tag",
		Description: "Player or club tag, with or without the leading #",
		Required:    required,
	}
}

func countryOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "country",
		Description: "Two-letter country code, or 'global' (default)",
	}
}

func limitOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "limit",
		Description: "How many entries to show (1-200)",
		MinValue:    float64Ptr(1),
		MaxValue:    200,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func bsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "bs",
		Description: "Brawl Stars lookups and account management",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "player",
				Description: "Show a player profile (your saved tag if omitted)",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(false)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "battlelog",
				Description: "Show a player's recent battles",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(false)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "club",
				Description: "Show club details",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "members",
				Description: "List a club's members",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "brawlers",
				Description: "Browse the brawler catalog",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "events",
				Description: "Show the current event rotation",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "start",
				Description: "Start the club application wizard in your DMs",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "verify",
				Description: "Link your Brawl Stars account to this server",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "tags",
				Description: "Manage your saved player tags",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "save",
						Description: "Save a player tag to your account",
						Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "list",
						Description: "List your saved tags",
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "setdefault",
						Description: "Choose which saved tag is your default",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "index",
								Description: "Position in your tag list (1-based)",
								Required:    true,
								MinValue:    float64Ptr(1),
								MaxValue:    3,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "move",
						Description: "Reorder your saved tags",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "from",
								Description: "Current position (1-based)",
								Required:    true,
								MinValue:    float64Ptr(1),
								MaxValue:    3,
							},
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "to",
								Description: "New position (1-based)",
								Required:    true,
								MinValue:    float64Ptr(1),
								MaxValue:    3,
							},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "remove",
						Description: "Remove a saved tag",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "index",
								Description: "Position in your tag list (1-based)",
								Required:    true,
								MinValue:    float64Ptr(1),
								MaxValue:    3,
							},
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "rankings",
				Description: "Leaderboards",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "players",
						Description: "Top players by trophies",
						Options:     []*discordgo.ApplicationCommandOption{countryOption(), limitOption()},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "clubs",
						Description: "Top clubs by trophies",
						Options:     []*discordgo.ApplicationCommandOption{countryOption(), limitOption()},
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "brawler",
						Description: "Top players on a single brawler",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionString,
								Name:        "name",
								Description: "Brawler name",
								Required:    true,
							},
							countryOption(),
							limitOption(),
						},
					},
				},
			},
		},
	}
}

func clubsCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "clubs",
		Description: "Manage the clubs tracked in this server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Track a club",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Stop tracking a club",
				Options:     []*discordgo.ApplicationCommandOption{tagOption(true)},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List tracked clubs",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "setrole",
				Description: "Set the member role granted on club join",
				Options: []*discordgo.ApplicationCommandOption{
					tagOption(true),
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to grant",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "setlog",
				Description: "Set the channel receiving join/leave notices for a club",
				Options: []*discordgo.ApplicationCommandOption{
					tagOption(true),
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Notice channel",
						Required:    true,
						ChannelTypes: []discordgo.ChannelType{
							discordgo.ChannelTypeGuildText,
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "setlead",
				Description: "Set the leadership role pinged by the application wizard",
				Options: []*discordgo.ApplicationCommandOption{
					tagOption(true),
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Leadership role",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "refresh",
				Description: "Re-pull cached club details from the API",
			},
		},
	}
}

func clubboardCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "clubboard",
		Description: "Manage the live club board",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "channel",
				Description: "Set the channel that hosts the board message",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Board channel",
						Required:    true,
						ChannelTypes: []discordgo.ChannelType{
							discordgo.ChannelTypeGuildText,
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "refresh",
				Description: "Re-render the board now",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "start",
				Description: "Enable the periodic board refresh",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stop",
				Description: "Disable the periodic board refresh",
			},
		},
	}
}

func clubsyncCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "clubsync",
		Description: "Manage the club membership poller",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "enable",
				Description: "Enable membership polling",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disable",
				Description: "Disable membership polling",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "interval",
				Description: "Set how often clubs are polled",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "seconds",
						Description: "Poll interval in seconds (60-900)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "notify",
				Description: "Set the fallback channel for join/leave notices",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionChannel,
						Name:        "channel",
						Description: "Channel used when a club has no log channel of its own",
						Required:    true,
						ChannelTypes: []discordgo.ChannelType{
							discordgo.ChannelTypeGuildText,
						},
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "nickformat",
				Description: "Set the nickname format applied on club join",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "format",
						Description: "Format with {IGN} and {CLUB} placeholders",
						Required:    true,
					},
				},
			},
		},
	}
}

func bsadminCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "bsadmin",
		Description: "Bot administration",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "allowrole",
				Description: "Grant a role access to management commands",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to allow",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disallowrole",
				Description: "Revoke a role's access to management commands",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionRole,
						Name:        "role",
						Description: "Role to remove",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "allowuser",
				Description: "Grant a user access to management commands",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to allow",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disallowuser",
				Description: "Revoke a user's access to management commands",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to remove",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show the current allow-list",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "check",
				Description: "Show the permission level of a member",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "Member to check (yourself if omitted)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Show bot host and runtime status",
			},
		},
	}
}

func archiveCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "archive",
		Description: "Archive this channel's history to the archive server",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "run",
				Description: "Archive the current channel",
			},
		},
	}
}

func archivesetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "archiveset",
		Description: "Configure the channel archiver",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "guild",
				Description: "Set the destination archive server",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "Guild ID of the archive server",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "category",
				Description: "Set the destination category for archived channels",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "id",
						Description: "Category ID in the archive server",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Choose whether the source channel is deleted after archiving",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "Delete the source channel when the archive completes",
						Required:    true,
					},
				},
			},
		},
	}
}
