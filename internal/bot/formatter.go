package bot

import (
	"fmt"
	"math"
	"time"

	"blight/internal/build"
	"blight/internal/lists"

	"github.com/bwmarrin/discordgo"
)

// Use "purple" color for the bot
const color int = 0x9B59B6

// Text of every message, so the interface can be restyled in one place
type Appearance struct {
	StickerEmoji string
	ImageURL     string
	Contact      string
}

func Welcome(appearance Appearance) Reply {

	embed := discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome! %s", appearance.StickerEmoji),
		Description: fmt.Sprintf("**Interface of BlightV1.**\nDM **%s** for problems.", appearance.Contact),
		Color:       color,
	}
	if appearance.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: appearance.ImageURL}
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{Label: "Allies", Style: discordgo.PrimaryButton, CustomID: ListButtonID(lists.Allies)},
		discordgo.Button{Label: "Enemies", Style: discordgo.DangerButton, CustomID: ListButtonID(lists.Enemies)},
		discordgo.Button{Label: "Random Build", Style: discordgo.SecondaryButton, CustomID: RandomBuildButtonID()},
	}}
	return Reply{Embed: &embed, Components: []discordgo.MessageComponent{row}}
}

func PrivateWelcome(appearance Appearance) Reply {

	embed := discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome author! %s", appearance.StickerEmoji),
		Description: "**BlightV1 is ready to edit.**",
		Color:       color,
	}
	if appearance.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: appearance.ImageURL}
	}
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		editButton(lists.Add, lists.Allies, discordgo.PrimaryButton),
		editButton(lists.Remove, lists.Allies, discordgo.SecondaryButton),
		editButton(lists.Add, lists.Enemies, discordgo.DangerButton),
		editButton(lists.Remove, lists.Enemies, discordgo.SecondaryButton),
	}}
	return Reply{Embed: &embed, Components: []discordgo.MessageComponent{row}, Ephemeral: true}
}

func editButton(op lists.Operation, kind lists.Kind, style discordgo.ButtonStyle) discordgo.Button {
	return discordgo.Button{Label: editTitle(op, kind), Style: style, CustomID: EditButtonID(op, kind)}
}

// "Add Ally", "Remove Enemy"...
func editTitle(op lists.Operation, kind lists.Kind) string {
	verb := "Add"
	if op == lists.Remove {
		verb = "Remove"
	}
	return fmt.Sprintf("%s %s", verb, kind.Singular())
}

func EditModal(op lists.Operation, kind lists.Kind) Reply {

	input := discordgo.TextInput{
		CustomID: nameInput,
		Label:    fmt.Sprintf("%s Name", kind.Singular()),
		Style:    discordgo.TextInputShort,
		Required: true,
	}
	return Reply{Modal: &Modal{
		CustomID:   ModalID(op, kind),
		Title:      editTitle(op, kind),
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}},
	}}
}

func ListEmbed(block lists.Block) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{Title: block.Title, Description: block.Body, Color: color}
}

func ListMessage(block lists.Block) Reply {
	return Reply{Embed: ListEmbed(block), Ephemeral: true}
}

func NoListMessage(kind lists.Kind) Reply {
	return Reply{Content: fmt.Sprintf("No %s message found.", kind), Ephemeral: true}
}

func RandomBuild(b build.Build) Reply {
	embed := discordgo.MessageEmbed{
		Title:       "🎲 Random Build",
		Description: fmt.Sprintf("**Weapon:** %s\n**Attunement:** %s", b.Weapon, b.Attunement),
		Color:       color,
	}
	return Reply{Embed: &embed, Ephemeral: true}
}

func MutationResult(outcome lists.Outcome, kind lists.Kind, value string) Reply {
	var content string
	switch outcome {
	case lists.Added:
		content = fmt.Sprintf("Added %s to %s!", value, kind)
	case lists.Removed:
		content = fmt.Sprintf("Removed %s from %s!", value, kind)
	case lists.NotPresent:
		content = fmt.Sprintf("%s not found in %s.", value, kind)
	default:
		return NoListMessage(kind)
	}
	return Reply{Content: content, Ephemeral: true}
}

func Unauthorized() Reply {
	return Reply{Content: "🚫 You are not authorized to use this command.", Ephemeral: true}
}

func SlowDown(wait time.Duration) Reply {
	seconds := int(math.Ceil(wait.Seconds()))
	return Reply{Content: fmt.Sprintf("Slow down, try again in %d seconds.", seconds), Ephemeral: true}
}

func InputNotValid(errorMessage string) Reply {
	return Reply{Content: fmt.Sprintf("Input not valid: \n> %s", errorMessage), Ephemeral: true}
}

func CommandNotRecognised(name string) Reply {
	return Reply{Content: fmt.Sprintf("Command `%s` not recognised", name), Ephemeral: true}
}
