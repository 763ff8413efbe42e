package bot

import (
	"context"
	"fmt"
	"time"

	"blight/internal/access"
	"blight/internal/build"
	"blight/internal/common"
	"blight/internal/config"
	"blight/internal/lists"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Time given to every interaction to talk to the platform
const interactionTimeout = 10 * time.Second

var commands = []*discordgo.ApplicationCommand{
	{Name: COMMAND_INTERFACE, Description: "Show the BlightV1 interface with Allies/Enemies."},
	{Name: COMMAND_PRIVATE_INTERFACE, Description: "Show the private BlightV1 interface (restricted)."},
}

type Bot struct {
	token   string
	session *discordgo.Session
	handler *Handler
	ctx     context.Context
}

func CreateBot(cfg config.Config, bindings lists.Bindings, roller *build.Roller) (*Bot, error) {

	var bot Bot

	bot.token = cfg.Token
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("could not create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages
	bot.session = session

	// The guild lists live in fixed messages
	guild := map[lists.Kind]lists.Ref{
		lists.Allies:  {ChannelID: cfg.Allies.ChannelID, MessageID: cfg.Allies.MessageID},
		lists.Enemies: {ChannelID: cfg.Enemies.ChannelID, MessageID: cfg.Enemies.MessageID},
	}
	locator := lists.NewLocator(sessionPlatform{session: session, guildID: cfg.GuildID}, guild, bindings)

	appearance := Appearance{StickerEmoji: cfg.StickerEmoji, ImageURL: cfg.ImageURL, Contact: cfg.Contact}
	limiter := common.NewRateLimiter(cfg.Restrictions)
	bot.handler = NewHandler(appearance, access.NewGate(cfg.AllowedUserID), locator, roller, limiter, cfg.Housekeeping)

	return &bot, nil
}

// Run connects to discord and serves interactions until the context is done
func (bot *Bot) Run(ctx context.Context) error {

	bot.ctx = ctx
	bot.session.AddHandler(bot.ready)
	bot.session.AddHandler(bot.receive)

	if err := bot.session.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer bot.session.Close()

	log.Info().Msg("Waiting for interactions")
	<-ctx.Done()
	log.Info().Msg("Shutting down")
	return nil
}

func (bot *Bot) ready(discord *discordgo.Session, ready *discordgo.Ready) {

	log.Info().Msg(fmt.Sprintf("Logged in as %s", ready.User.Username))
	if _, err := discord.ApplicationCommandBulkOverwrite(ready.User.ID, "", commands); err != nil {
		log.Error().Msg(fmt.Sprintf("Could not sync slash commands: %v", err))
		return
	}
	log.Info().Msg("Slash commands synced and ready.")
}

func (bot *Bot) receive(discord *discordgo.Session, event *discordgo.InteractionCreate) {

	in, ok := convert(event.Interaction)
	if !ok {
		log.Debug().Msg(fmt.Sprintf("Ignoring interaction of type %s", event.Type))
		return
	}

	ctx, cancel := context.WithTimeout(bot.ctx, interactionTimeout)
	defer cancel()

	respond := func(reply Reply) error {
		return discord.InteractionRespond(event.Interaction, reply.InteractionResponse(), discordgo.WithContext(ctx))
	}
	if err := bot.handler.Handle(ctx, in, respond); err != nil {
		log.Error().Msg(fmt.Sprintf("Could not handle interaction %s: %v", in.Name, err))
	}
}

// Keep only what the handler needs from a discord interaction
func convert(interaction *discordgo.Interaction) (Interaction, bool) {

	in := Interaction{
		ChannelID: interaction.ChannelID,
		GuildID:   interaction.GuildID,
	}
	// Members in guilds, users in DMs
	if interaction.Member != nil && interaction.Member.User != nil {
		in.UserID = interaction.Member.User.ID
	} else if interaction.User != nil {
		in.UserID = interaction.User.ID
	}

	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		in.Type = INTERACTION_COMMAND
		in.Name = interaction.ApplicationCommandData().Name
	case discordgo.InteractionMessageComponent:
		in.Type = INTERACTION_COMPONENT
		in.Name = interaction.MessageComponentData().CustomID
	case discordgo.InteractionModalSubmit:
		data := interaction.ModalSubmitData()
		in.Type = INTERACTION_MODAL
		in.Name = data.CustomID
		in.Values = textInputs(data.Components)
	default:
		return Interaction{}, false
	}
	return in, true
}

func textInputs(components []discordgo.MessageComponent) map[string]string {
	values := map[string]string{}
	for _, component := range components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}
