package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-sarah/v4"
)

// MemberJoinInput is a sarah.Input implementation that represents a user joining a guild.
// Its message text is always empty, so text-matching commands never fire on it.
type MemberJoinInput struct {
	origin
	Event   *discordgo.GuildMemberAdd
	guildID GuildID
	userID  string
	mention string
}

var _ sarah.Input = (*MemberJoinInput)(nil)

// Message returns an empty string.
func (i *MemberJoinInput) Message() string {
	return ""
}

// ReplyTo returns the guild the user joined.
func (i *MemberJoinInput) ReplyTo() sarah.OutputDestination {
	return i.guildID
}

// GuildID returns the guild the user joined.
func (i *MemberJoinInput) GuildID() GuildID {
	return i.guildID
}

// UserID returns the ID of the joining user.
func (i *MemberJoinInput) UserID() string {
	return i.userID
}

// Mention returns the mention string of the joining user, e.g. <@1234>.
func (i *MemberJoinInput) Mention() string {
	return i.mention
}

// MemberToInput converts a *discordgo.GuildMemberAdd event to *MemberJoinInput.
// A missing join time is replaced with the time of conversion.
func MemberToInput(m *discordgo.GuildMemberAdd) (*MemberJoinInput, error) {
	if m == nil || m.Member == nil || m.User == nil {
		return nil, ErrNoMember
	}

	joinedAt := m.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}

	return &MemberJoinInput{
		origin: origin{
			senderKey: m.GuildID + "_" + m.User.ID,
			at:        joinedAt,
		},
		Event:   m,
		guildID: GuildID(m.GuildID),
		userID:  m.User.ID,
		mention: m.User.Mention(),
	}, nil
}
