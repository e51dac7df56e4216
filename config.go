package discord

import "github.com/bwmarrin/discordgo"

// Config contains configuration variables for the Discord Adapter.
type Config struct {
	// Token is the Discord bot token used for authentication.
	Token string `json:"token" yaml:"token"`

	// HelpCommand is the command string that triggers help.
	// When a user sends this exact string, the input is converted to sarah.HelpInput.
	// Leave it empty to disable help.
	HelpCommand string `json:"help_command" yaml:"help_command"`

	// Intents declares the Gateway Intents the bot requires.
	Intents discordgo.Intent `json:"intents" yaml:"intents"`

	// IgnoreBots drops every message authored by a bot account, not only the adapter's own.
	IgnoreBots bool `json:"ignore_bots" yaml:"ignore_bots"`
}

// MessageIntents is the intent set needed to read messages in guild channels and direct messages.
const MessageIntents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

// MemberIntents is the intent set needed to receive guild member join events.
const MemberIntents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

// NewConfig returns a Config for a bot that reads messages.
// Token is empty and must be set before use.
func NewConfig() *Config {
	return &Config{
		HelpCommand: ".help",
		Intents:     MessageIntents,
		IgnoreBots:  true,
	}
}
