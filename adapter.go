package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

const (
	// DISCORD is a designated sarah.BotType for Discord integration.
	DISCORD sarah.BotType = "discord"
)

// session is the part of *discordgo.Session the Adapter talks to.
// Tests replace it with a fake.
type session interface {
	AddHandler(handler interface{}) func()
	Open() error
	Close() error
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// AdapterOption defines a function signature for Adapter's functional options.
type AdapterOption func(adapter *Adapter)

// WithSession creates an AdapterOption with the given *discordgo.Session.
// The session's state cache is used to resolve announcement channels.
// A nil session is ignored, so NewAdapter falls back to Config.Token.
func WithSession(session *discordgo.Session) AdapterOption {
	return func(adapter *Adapter) {
		if session == nil {
			return
		}
		adapter.session = session
		adapter.state = session.State
	}
}

// Adapter is a sarah.Adapter implementation for Discord.
// It feeds chat messages and guild member joins to the bot,
// and posts outputs addressed to a ChannelID or a GuildID.
type Adapter struct {
	config  *Config
	session session
	state   *discordgo.State
}

var _ sarah.Adapter = (*Adapter)(nil)

// NewAdapter creates a new Adapter with the given Config and options.
func NewAdapter(config *Config, options ...AdapterOption) (*Adapter, error) {
	adapter := &Adapter{
		config: config,
	}

	for _, opt := range options {
		opt(adapter)
	}

	if adapter.session != nil {
		return adapter, nil
	}

	if config.Token == "" {
		return nil, ErrEmptyToken
	}

	s, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	s.Identify.Intents = config.Intents
	adapter.session = s
	adapter.state = s.State

	return adapter, nil
}

// BotType returns a designated BotType for Discord integration.
func (a *Adapter) BotType() sarah.BotType {
	return DISCORD
}

// Run subscribes to gateway events, opens the connection and blocks until the context is canceled.
// A failure to open the connection is reported as sarah.BotNonContinuableError.
func (a *Adapter) Run(ctx context.Context, enqueueInput func(sarah.Input) error, notifyErr func(error)) {
	for _, handler := range a.handlers(enqueueInput) {
		a.session.AddHandler(handler)
	}

	if err := a.session.Open(); err != nil {
		notifyErr(sarah.NewBotNonContinuableError(fmt.Sprintf("failed to open Discord session: %s", err.Error())))
		return
	}

	<-ctx.Done()

	if err := a.session.Close(); err != nil {
		logger.Errorf("Failed to close Discord session: %+v", err)
	}
}

// handlers returns the gateway event handlers in the form discordgo's AddHandler accepts.
func (a *Adapter) handlers(enqueueInput func(sarah.Input) error) []interface{} {
	forward := func(input sarah.Input) {
		if input == nil {
			return
		}
		if err := enqueueInput(input); err != nil {
			logger.Errorf("Failed to enqueue %T: %+v", input, err)
		}
	}

	return []interface{}{
		func(_ *discordgo.Session, r *discordgo.Ready) {
			a.handleReady(r)
		},
		func(s *discordgo.Session, m *discordgo.MessageCreate) {
			forward(a.messageInput(s, m))
		},
		func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
			forward(a.memberInput(m))
		},
	}
}

func (a *Adapter) handleReady(r *discordgo.Ready) {
	if r == nil || r.User == nil {
		logger.Infof("Discord session is ready")
		return
	}
	logger.Infof("Discord session is ready. Logged in as %s", r.User.String())
}

// messageInput converts a received message to sarah.Input.
// It returns nil for messages the bot must not answer.
func (a *Adapter) messageInput(s *discordgo.Session, m *discordgo.MessageCreate) sarah.Input {
	input, err := MessageToInput(m)
	if err != nil {
		logger.Debugf("Skipping message: %+v", err)
		return nil
	}

	if isSelf(s, m.Author) {
		return nil
	}

	if a.config.IgnoreBots && m.Author.Bot {
		logger.Debugf("Ignoring message from bot %s in %s", m.Author.ID, m.ChannelID)
		return nil
	}

	if a.config.HelpCommand != "" && strings.TrimSpace(input.Message()) == a.config.HelpCommand {
		return sarah.NewHelpInput(input)
	}

	return input
}

// memberInput converts a guild member join to sarah.Input.
// It returns nil for events without a user.
func (a *Adapter) memberInput(m *discordgo.GuildMemberAdd) sarah.Input {
	input, err := MemberToInput(m)
	if err != nil {
		logger.Debugf("Skipping member event: %+v", err)
		return nil
	}
	return input
}

func isSelf(s *discordgo.Session, author *discordgo.User) bool {
	if s == nil || s.State == nil || s.State.User == nil {
		return false
	}
	return author.ID == s.State.User.ID
}

// SendMessage posts the given output to Discord.
// Outputs that cannot be posted are logged and dropped.
func (a *Adapter) SendMessage(_ context.Context, output sarah.Output) {
	channelID, text, err := a.render(output)
	if err != nil {
		logger.Errorf("Dropping output: %+v", err)
		return
	}

	if _, err := a.session.ChannelMessageSend(channelID, text); err != nil {
		logger.Errorf("Failed to send message to %s: %+v", channelID, err)
	}
}
