// Command announcer posts a greeting when a user joins the configured guild.
//
// Usage:
//
//	export DISCORD_TOKEN="your-bot-token"
//	export ANNOUNCE_GUILD_ID="guild id"
//	export ANNOUNCE_CHANNEL_ID="channel id in that guild"
//	go run ./cmd/announcer
//
// The bot must have the privileged Server Members intent enabled.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oklahomer/go-kasumi/logger"

	"github.com/oklahomer/go-sarah-greeter"
	"github.com/oklahomer/go-sarah-greeter/internal/commands"
	"github.com/oklahomer/go-sarah-greeter/internal/lifecycle"
	"github.com/oklahomer/go-sarah-greeter/internal/logging"
	"github.com/oklahomer/go-sarah-greeter/internal/settings"
)

func main() {
	opts, err := settings.LoadAnnouncer(os.Args[1:])
	if err != nil {
		if settings.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Failed to load settings: %s\n", err)
		os.Exit(1)
	}

	z, err := logging.Setup(opts.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = z.Sync()
	}()

	if err := run(opts); err != nil {
		logger.Errorf("Announcer stopped: %+v", err)
		_ = z.Sync()
		os.Exit(1)
	}
}

func run(opts *settings.Announcer) error {
	config := discord.NewConfig()
	config.Token = opts.Token
	config.Intents = discord.MemberIntents
	config.HelpCommand = ""

	adapter, err := discord.NewAdapter(config)
	if err != nil {
		return fmt.Errorf("failed to create adapter: %w", err)
	}

	announcement := commands.NewJoinAnnouncement(opts.GuildID, opts.ChannelID)
	announcement.Suffix = opts.Suffix

	props, err := announcement.Props()
	if err != nil {
		return fmt.Errorf("failed to build join announcement: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return lifecycle.Run(ctx, adapter, props)
}
