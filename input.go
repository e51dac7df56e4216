package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"
)

// origin carries what every Discord input knows about its sender.
type origin struct {
	senderKey string
	at        time.Time
}

// SenderKey returns a key that identifies the sender within a channel or guild.
func (o origin) SenderKey() string {
	return o.senderKey
}

// SentAt returns when the event happened.
func (o origin) SentAt() time.Time {
	return o.at
}

// Input is a sarah.Input implementation that represents a received Discord message.
type Input struct {
	origin
	Event     *discordgo.MessageCreate
	text      string
	channelID ChannelID
}

var _ sarah.Input = (*Input)(nil)

// Message returns the message text as typed.
func (i *Input) Message() string {
	return i.text
}

// ReplyTo returns the channel the message was posted in.
func (i *Input) ReplyTo() sarah.OutputDestination {
	return i.channelID
}

// MessageToInput converts a *discordgo.MessageCreate event to *Input.
// Events without an author, such as some system messages, yield ErrNoAuthor.
func MessageToInput(m *discordgo.MessageCreate) (*Input, error) {
	if m == nil || m.Message == nil || m.Author == nil {
		return nil, ErrNoAuthor
	}

	return &Input{
		origin: origin{
			senderKey: m.ChannelID + "_" + m.Author.ID,
			at:        m.Timestamp,
		},
		Event:     m,
		text:      m.Content,
		channelID: ChannelID(m.ChannelID),
	}, nil
}

// NewResponse creates a *sarah.CommandResponse that answers input with content.
// A reply to *Input is usually a string, and a reply to *MemberJoinInput must be an *Announcement.
func NewResponse(input sarah.Input, content interface{}) (*sarah.CommandResponse, error) {
	switch input.(type) {
	case *Input, *MemberJoinInput:
		return &sarah.CommandResponse{Content: content}, nil

	default:
		return nil, fmt.Errorf("%T is not a Discord input", input)
	}
}
