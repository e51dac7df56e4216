// Command responder replies HELLO! to anyone who types /hello.
//
// Usage:
//
//	export DISCORD_TOKEN="your-bot-token"
//	go run ./cmd/responder
//
// Then, in a Discord channel where the bot is present, type:
//
//	/hello
//	.help
//
// Messages authored by bots are ignored. Run with --help to list every option.
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
	opts, err := settings.LoadResponder(os.Args[1:])
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
		logger.Errorf("Responder stopped: %+v", err)
		_ = z.Sync()
		os.Exit(1)
	}
}

func run(opts *settings.Responder) error {
	config := discord.NewConfig()
	config.Token = opts.Token
	config.HelpCommand = opts.HelpCommand

	adapter, err := discord.NewAdapter(config)
	if err != nil {
		return fmt.Errorf("failed to create adapter: %w", err)
	}

	hello := &commands.HelloCommand{
		Trigger: opts.HelloTrigger,
		Reply:   opts.HelloReply,
	}
	props, err := hello.Props()
	if err != nil {
		return fmt.Errorf("failed to build hello command: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return lifecycle.Run(ctx, adapter, props)
}
