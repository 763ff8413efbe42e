package bot

import (
	"context"
	"errors"
	"fmt"

	"blight/internal/lists"

	"github.com/bwmarrin/discordgo"
)

// The channel of a list message belongs to a guild other than the configured one
var ErrWrongGuild = errors.New("channel is not in the configured guild")

// The lists are stored as the first embed of messages written by the bot.
// Guild channels are only used if they belong to the configured guild
type sessionPlatform struct {
	session *discordgo.Session
	guildID string
}

// Check the channel is a DM or a channel of the configured guild.
// The state cache is tried first, then the API
func (platform sessionPlatform) checkChannel(ctx context.Context, channelID string) error {

	if platform.guildID == "" {
		return nil
	}
	channel, err := platform.session.State.Channel(channelID)
	if err != nil {
		channel, err = platform.session.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("could not find channel %s: %w", channelID, err)
		}
	}
	if channel.GuildID != "" && channel.GuildID != platform.guildID {
		return fmt.Errorf("%w: channel %s is in guild %s", ErrWrongGuild, channelID, channel.GuildID)
	}
	return nil
}

func (platform sessionPlatform) FetchBlock(ctx context.Context, ref lists.Ref) (lists.Block, error) {
	if err := platform.checkChannel(ctx, ref.ChannelID); err != nil {
		return lists.Block{}, err
	}
	message, err := platform.session.ChannelMessage(ref.ChannelID, ref.MessageID, discordgo.WithContext(ctx))
	if err != nil {
		return lists.Block{}, err
	}
	if len(message.Embeds) == 0 {
		return lists.Block{}, nil
	}
	return lists.Block{Title: message.Embeds[0].Title, Body: message.Embeds[0].Description}, nil
}

func (platform sessionPlatform) SendBlock(ctx context.Context, channelID string, block lists.Block) (lists.Ref, error) {
	message, err := platform.session.ChannelMessageSendEmbed(channelID, ListEmbed(block), discordgo.WithContext(ctx))
	if err != nil {
		return lists.Ref{}, err
	}
	return lists.Ref{ChannelID: channelID, MessageID: message.ID}, nil
}

func (platform sessionPlatform) EditBlock(ctx context.Context, ref lists.Ref, block lists.Block) error {
	if err := platform.checkChannel(ctx, ref.ChannelID); err != nil {
		return err
	}
	_, err := platform.session.ChannelMessageEditEmbed(ref.ChannelID, ref.MessageID, ListEmbed(block), discordgo.WithContext(ctx))
	return err
}
