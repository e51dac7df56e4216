// Package commands defines the sarah commands served by the greeter bots.
//
// Each command is a pure function of its input: Match decides whether the
// command applies and Respond builds the response. Delivery is left to the
// Discord adapter.
package commands

import (
	"context"

	"github.com/oklahomer/go-sarah/v4"

	discord "github.com/oklahomer/go-sarah-greeter"
)

// HelloIdentifier is the identifier of the hello command.
const HelloIdentifier = "hello"

// HelloCommand replies with a fixed text when a message exactly equals the trigger.
type HelloCommand struct {
	Trigger string
	Reply   string
}

// NewHelloCommand returns a HelloCommand answering /hello with HELLO!.
func NewHelloCommand() *HelloCommand {
	return &HelloCommand{
		Trigger: "/hello",
		Reply:   "HELLO!",
	}
}

// Match reports whether the input is a Discord message whose text is exactly the trigger.
func (c *HelloCommand) Match(input sarah.Input) bool {
	if _, ok := input.(*discord.Input); !ok {
		return false
	}
	return input.Message() == c.Trigger
}

// Respond returns the reply addressed to the channel the message came from.
func (c *HelloCommand) Respond(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	return discord.NewResponse(input, c.Reply)
}

// Props builds the sarah command definition.
func (c *HelloCommand) Props() (*sarah.CommandProps, error) {
	return sarah.NewCommandPropsBuilder().
		BotType(discord.DISCORD).
		Identifier(HelloIdentifier).
		MatchFunc(c.Match).
		Func(c.Respond).
		Instruction("Input " + c.Trigger + " to receive a greeting.").
		Build()
}
