// Package settings loads process configuration from flags, the environment and an optional .env file.
package settings

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// ErrMissingToken indicates that no bot token was given by flag, environment or env file.
var ErrMissingToken = errors.New("discord token is not set (--token or DISCORD_TOKEN)")

// ErrMissingGuildID indicates that the announcer was started without the guild to watch.
var ErrMissingGuildID = errors.New("announcement guild is not set (--guild-id or ANNOUNCE_GUILD_ID)")

// ErrMissingChannelID indicates that the announcer was started without the channel to post in.
var ErrMissingChannelID = errors.New("announcement channel is not set (--channel-id or ANNOUNCE_CHANNEL_ID)")

// Common holds the options shared by every process.
type Common struct {
	Token    string `long:"token" env:"DISCORD_TOKEN" description:"Discord bot token"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"Minimum log level"`
	EnvFile  string `long:"env-file" env:"ENV_FILE" default:".env" description:"Optional dotenv file read before the environment is consulted"`
}

func (c *Common) validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// Responder holds the options of the command responder.
type Responder struct {
	Common `group:"Common Options"`

	HelloTrigger string `long:"hello-trigger" env:"HELLO_TRIGGER" default:"/hello" description:"Exact message text that triggers the reply"`
	HelloReply   string `long:"hello-reply" env:"HELLO_REPLY" default:"HELLO!" description:"Reply sent to the originating channel"`
	HelpCommand  string `long:"help-command" env:"HELP_COMMAND" default:".help" description:"Message text that lists available commands; empty disables it"`
}

// Announcer holds the options of the join announcer.
type Announcer struct {
	Common `group:"Common Options"`

	GuildID   string `long:"guild-id" env:"ANNOUNCE_GUILD_ID" description:"Guild whose joins are announced"`
	ChannelID string `long:"channel-id" env:"ANNOUNCE_CHANNEL_ID" description:"Channel in that guild receiving announcements"`
	Suffix    string `long:"suffix" env:"ANNOUNCE_SUFFIX" default:"が参加しました！" description:"Text following the new member's mention"`
}

// LoadResponder parses args into Responder options and validates them.
func LoadResponder(args []string) (*Responder, error) {
	opts := &Responder{}
	if err := load(opts, &opts.Common, args); err != nil {
		return nil, err
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

// LoadAnnouncer parses args into Announcer options and validates them.
func LoadAnnouncer(args []string) (*Announcer, error) {
	opts := &Announcer{}
	if err := load(opts, &opts.Common, args); err != nil {
		return nil, err
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.GuildID == "" {
		return nil, ErrMissingGuildID
	}
	if opts.ChannelID == "" {
		return nil, ErrMissingChannelID
	}

	return opts, nil
}

// IsHelp reports whether err is the result of a --help request.
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// load parses twice: the first pass only locates the dotenv file,
// the second pass sees the variables that file defines.
func load(opts interface{}, common *Common, args []string) error {
	if _, err := flags.NewParser(opts, flags.IgnoreUnknown).ParseArgs(args); err == nil {
		if err := loadEnvFile(common.EnvFile); err != nil {
			return err
		}
	}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	return nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	// godotenv never overrides variables already present in the environment.
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("failed to load env file %s: %w", path, err)
}
