package bot

import (
	"blight/internal/lists"

	"github.com/bwmarrin/discordgo"
)

const (
	INTERACTION_COMMAND   = iota // Slash command, Name is the command name
	INTERACTION_COMPONENT = iota // Button press, Name is the custom id
	INTERACTION_MODAL     = iota // Modal submit, Name is the custom id
)

// An interaction as received from the platform, keeping only what the
// handler needs
type Interaction struct {
	Type      int
	Name      string
	UserID    string
	ChannelID string
	GuildID   string
	Values    map[string]string // Text inputs of a submitted modal
}

// Interactions outside a guild work on the lists of their DM channel
func (in Interaction) Scope() lists.Scope {
	if in.GuildID == "" {
		return lists.PrivateScope(in.ChannelID)
	}
	return lists.GuildScope()
}

type Modal struct {
	CustomID   string
	Title      string
	Components []discordgo.MessageComponent
}

// Reply to an interaction: a message, or a modal to open
type Reply struct {
	Content    string
	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent
	Modal      *Modal
	Ephemeral  bool
}

type Respond func(reply Reply) error
