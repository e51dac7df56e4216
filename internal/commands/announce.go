package commands

import (
	"context"
	"fmt"

	"github.com/oklahomer/go-sarah/v4"

	discord "github.com/oklahomer/go-sarah-greeter"
)

// AnnounceIdentifier is the identifier of the join announcement command.
const AnnounceIdentifier = "join-announcement"

// DefaultAnnounceSuffix follows the joining user's mention.
const DefaultAnnounceSuffix = "が参加しました！"

// JoinAnnouncement posts a message to a fixed channel when a user joins a fixed guild.
type JoinAnnouncement struct {
	GuildID   discord.GuildID
	ChannelID discord.ChannelID
	Suffix    string
}

// NewJoinAnnouncement returns a JoinAnnouncement with the default suffix.
func NewJoinAnnouncement(guildID, channelID string) *JoinAnnouncement {
	return &JoinAnnouncement{
		GuildID:   discord.GuildID(guildID),
		ChannelID: discord.ChannelID(channelID),
		Suffix:    DefaultAnnounceSuffix,
	}
}

// Match reports whether the input is a member join in the configured guild.
func (a *JoinAnnouncement) Match(input sarah.Input) bool {
	join, ok := input.(*discord.MemberJoinInput)
	if !ok {
		return false
	}
	return join.GuildID() == a.GuildID
}

// Respond returns an announcement naming the new member, addressed to the configured channel.
func (a *JoinAnnouncement) Respond(_ context.Context, input sarah.Input) (*sarah.CommandResponse, error) {
	join, ok := input.(*discord.MemberJoinInput)
	if !ok {
		return nil, fmt.Errorf("%T is not a member join input", input)
	}

	return discord.NewResponse(input, &discord.Announcement{
		ChannelID: a.ChannelID,
		Content:   join.Mention() + a.Suffix,
	})
}

// Props builds the sarah command definition.
func (a *JoinAnnouncement) Props() (*sarah.CommandProps, error) {
	return sarah.NewCommandPropsBuilder().
		BotType(discord.DISCORD).
		Identifier(AnnounceIdentifier).
		MatchFunc(a.Match).
		Func(a.Respond).
		Instruction("Announces members joining the server.").
		Build()
}
