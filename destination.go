package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/oklahomer/go-kasumi/logger"
	"github.com/oklahomer/go-sarah/v4"
)

// ChannelID represents a Discord channel as sarah.OutputDestination.
type ChannelID string

var _ sarah.OutputDestination = ChannelID("")

// GuildID represents a Discord guild as sarah.OutputDestination.
// An output addressed to a GuildID must carry an *Announcement that names the channel to post in.
type GuildID string

var _ sarah.OutputDestination = GuildID("")

// Announcement is an output content posted to a channel of the destination guild.
type Announcement struct {
	ChannelID ChannelID
	Content   string
}

// resolveChannel looks up the channel in the state cache, then falls back to the REST API.
// The channel must belong to the given guild.
func (a *Adapter) resolveChannel(guildID GuildID, channelID ChannelID) (*discordgo.Channel, error) {
	var ch *discordgo.Channel
	if a.state != nil {
		cached, err := a.state.Channel(string(channelID))
		if err == nil {
			ch = cached
		} else if !errors.Is(err, discordgo.ErrStateNotFound) {
			logger.Debugf("State lookup for channel %s failed: %+v", channelID, err)
		}
	}

	if ch == nil {
		fetched, err := a.session.Channel(string(channelID))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrChannelNotFound, channelID, err)
		}
		if fetched == nil {
			return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
		}
		ch = fetched
	}

	if ch.GuildID != string(guildID) {
		return nil, fmt.Errorf("%w: channel %s, guild %s", ErrChannelNotInGuild, channelID, guildID)
	}

	return ch, nil
}

// render decides which channel an output is posted to and the text to post.
func (a *Adapter) render(output sarah.Output) (string, string, error) {
	switch destination := output.Destination().(type) {
	case ChannelID:
		text, err := channelText(output.Content())
		if err != nil {
			return "", "", err
		}
		return string(destination), text, nil

	case GuildID:
		announcement, ok := output.Content().(*Announcement)
		if !ok || announcement == nil {
			return "", "", fmt.Errorf("%w: guild %s needs *Announcement, got %T", ErrUnsupportedOutput, destination, output.Content())
		}

		ch, err := a.resolveChannel(destination, announcement.ChannelID)
		if err != nil {
			return "", "", err
		}
		return ch.ID, announcement.Content, nil

	default:
		return "", "", fmt.Errorf("%w: destination %#v", ErrUnsupportedOutput, output.Destination())
	}
}

func channelText(content interface{}) (string, error) {
	switch c := content.(type) {
	case string:
		return c, nil

	case *sarah.CommandHelps:
		lines := make([]string, 0, len(*c))
		for _, h := range *c {
			lines = append(lines, fmt.Sprintf("**%s**: %s", h.Identifier, h.Instruction))
		}
		return strings.Join(lines, "\n"), nil

	default:
		return "", fmt.Errorf("%w: content %T", ErrUnsupportedOutput, content)
	}
}
