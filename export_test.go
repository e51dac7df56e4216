package discord

import "github.com/bwmarrin/discordgo"

// Gateway lets tests outside this package drive an Adapter without a Discord connection.
type Gateway struct {
	fake *fakeSession
}

// NewGateway returns a Gateway that knows the given channels.
func NewGateway(channels ...*discordgo.Channel) *Gateway {
	return &Gateway{fake: newFakeSession(channels...)}
}

// Adapter returns an Adapter bound to the gateway.
func (g *Gateway) Adapter(config *Config) *Adapter {
	return &Adapter{config: config, session: g.fake}
}

// Opened receives once the Adapter has subscribed to events and opened the connection.
func (g *Gateway) Opened() <-chan struct{} {
	return g.fake.opened
}

// Dispatch delivers a gateway event to the Adapter.
func (g *Gateway) Dispatch(event interface{}) {
	g.fake.dispatch(nil, event)
}

// Sent returns the messages posted so far.
func (g *Gateway) Sent() []SentMessage {
	return g.fake.messages()
}
