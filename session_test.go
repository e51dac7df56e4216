package discord

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// SentMessage is a message the Adapter posted through a fakeSession.
type SentMessage struct {
	ChannelID string
	Content   string
}

// fakeSession stands in for a Discord connection.
// It keeps the registered handlers and the posted messages, and answers channel lookups from channels.
type fakeSession struct {
	mu       sync.Mutex
	handlers []interface{}
	sent     []SentMessage
	closed   bool

	channels map[string]*discordgo.Channel
	openErr  error
	closeErr error
	sendErr  error
	opened   chan struct{}
}

var _ session = (*fakeSession)(nil)

func newFakeSession(channels ...*discordgo.Channel) *fakeSession {
	f := &fakeSession{
		channels: map[string]*discordgo.Channel{},
		opened:   make(chan struct{}, 1),
	}
	for _, ch := range channels {
		f.channels[ch.ID] = ch
	}
	return f
}

func (f *fakeSession) AddHandler(handler interface{}) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
	return func() {}
}

func (f *fakeSession) Open() error {
	select {
	case f.opened <- struct{}{}:
	default:
	}
	return f.openErr
}

func (f *fakeSession) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.closeErr
}

func (f *fakeSession) Channel(channelID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, fmt.Errorf("HTTP 404 Not Found: channel %s", channelID)
	}
	return ch, nil
}

func (f *fakeSession) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, SentMessage{ChannelID: channelID, Content: content})
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) messages() []SentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SentMessage(nil), f.sent...)
}

func (f *fakeSession) handlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}

func (f *fakeSession) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// dispatch hands event to every registered handler that accepts its type, as the gateway would.
func (f *fakeSession) dispatch(s *discordgo.Session, event interface{}) {
	f.mu.Lock()
	handlers := append([]interface{}(nil), f.handlers...)
	f.mu.Unlock()

	for _, h := range handlers {
		switch fn := h.(type) {
		case func(*discordgo.Session, *discordgo.Ready):
			if e, ok := event.(*discordgo.Ready); ok {
				fn(s, e)
			}
		case func(*discordgo.Session, *discordgo.MessageCreate):
			if e, ok := event.(*discordgo.MessageCreate); ok {
				fn(s, e)
			}
		case func(*discordgo.Session, *discordgo.GuildMemberAdd):
			if e, ok := event.(*discordgo.GuildMemberAdd); ok {
				fn(s, e)
			}
		}
	}
}
