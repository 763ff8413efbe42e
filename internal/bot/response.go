package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Translate a reply into the response the platform expects
func (reply Reply) InteractionResponse() *discordgo.InteractionResponse {

	if reply.Modal != nil {
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID:   reply.Modal.CustomID,
				Title:      reply.Modal.Title,
				Components: reply.Modal.Components,
			},
		}
	}

	data := discordgo.InteractionResponseData{
		Content:    reply.Content,
		Components: reply.Components,
	}
	if reply.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{reply.Embed}
	}
	if reply.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &data,
	}
}
