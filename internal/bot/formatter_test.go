package bot

import (
	"testing"
	"time"

	"blight/internal/build"
	"blight/internal/lists"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appearance = Appearance{StickerEmoji: ":sticker:", ImageURL: "https://example.com/a.jpeg", Contact: "someone"}

func buttons(t *testing.T, reply Reply) []discordgo.Button {
	t.Helper()
	require.Len(t, reply.Components, 1)
	row, ok := reply.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	result := []discordgo.Button{}
	for _, component := range row.Components {
		button, ok := component.(discordgo.Button)
		require.True(t, ok)
		result = append(result, button)
	}
	return result
}

func TestWelcome(t *testing.T) {
	reply := Welcome(appearance)

	assert.False(t, reply.Ephemeral)
	require.NotNil(t, reply.Embed)
	assert.Equal(t, "Welcome! :sticker:", reply.Embed.Title)
	assert.Equal(t, "**Interface of BlightV1.**\nDM **someone** for problems.", reply.Embed.Description)
	assert.Equal(t, color, reply.Embed.Color)
	assert.Equal(t, "https://example.com/a.jpeg", reply.Embed.Image.URL)

	row := buttons(t, reply)
	require.Len(t, row, 3)
	assert.Equal(t, "Allies", row[0].Label)
	assert.Equal(t, discordgo.PrimaryButton, row[0].Style)
	assert.Equal(t, ListButtonID(lists.Allies), row[0].CustomID)
	assert.Equal(t, "Enemies", row[1].Label)
	assert.Equal(t, discordgo.DangerButton, row[1].Style)
	assert.Equal(t, "Random Build", row[2].Label)
	assert.Equal(t, RandomBuildButtonID(), row[2].CustomID)
}

func TestPrivateWelcome(t *testing.T) {
	reply := PrivateWelcome(Appearance{StickerEmoji: ":sticker:"})

	assert.True(t, reply.Ephemeral)
	assert.Equal(t, "Welcome author! :sticker:", reply.Embed.Title)
	assert.Equal(t, "**BlightV1 is ready to edit.**", reply.Embed.Description)
	assert.Nil(t, reply.Embed.Image)

	labels := []string{}
	for _, button := range buttons(t, reply) {
		labels = append(labels, button.Label)
	}
	assert.Equal(t, []string{"Add Ally", "Remove Ally", "Add Enemy", "Remove Enemy"}, labels)
}

func TestEditModal(t *testing.T) {
	reply := EditModal(lists.Remove, lists.Enemies)

	require.NotNil(t, reply.Modal)
	assert.Equal(t, "Remove Enemy", reply.Modal.Title)
	assert.Equal(t, ModalID(lists.Remove, lists.Enemies), reply.Modal.CustomID)
	row := reply.Modal.Components[0].(discordgo.ActionsRow)
	input := row.Components[0].(discordgo.TextInput)
	assert.Equal(t, "Enemy Name", input.Label)
	assert.Equal(t, nameInput, input.CustomID)
	// Discord's default length applies
	assert.Zero(t, input.MaxLength)
}

func TestMutationResult(t *testing.T) {
	assert.Equal(t, "Added Alice to Allies!", MutationResult(lists.Added, lists.Allies, "Alice").Content)
	assert.Equal(t, "Removed Bob from Enemies!", MutationResult(lists.Removed, lists.Enemies, "Bob").Content)
	assert.Equal(t, "Bob not found in Enemies.", MutationResult(lists.NotPresent, lists.Enemies, "Bob").Content)
	assert.Equal(t, "No Allies message found.", MutationResult(lists.NotFound, lists.Allies, "Bob").Content)
	assert.True(t, MutationResult(lists.Added, lists.Allies, "Alice").Ephemeral)
}

func TestRandomBuild(t *testing.T) {
	reply := RandomBuild(build.Build{Weapon: "Gun", Attunement: "Frostdraw"})
	assert.True(t, reply.Ephemeral)
	assert.Equal(t, "🎲 Random Build", reply.Embed.Title)
	assert.Equal(t, "**Weapon:** Gun\n**Attunement:** Frostdraw", reply.Embed.Description)
}

func TestSlowDown(t *testing.T) {
	assert.Equal(t, "Slow down, try again in 3 seconds.", SlowDown(2100*time.Millisecond).Content)
}

func TestInteractionResponse(t *testing.T) {
	response := ListMessage(lists.Encode("Allies", []string{"Alice"})).InteractionResponse()
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, response.Type)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
	require.Len(t, response.Data.Embeds, 1)
	assert.Equal(t, "1. Alice", response.Data.Embeds[0].Description)

	response = Welcome(appearance).InteractionResponse()
	assert.Equal(t, discordgo.MessageFlags(0), response.Data.Flags)
	assert.Len(t, response.Data.Components, 1)

	response = EditModal(lists.Add, lists.Allies).InteractionResponse()
	assert.Equal(t, discordgo.InteractionResponseModal, response.Type)
	assert.Equal(t, "Add Ally", response.Data.Title)
	assert.Equal(t, "blight:submit:add:Allies", response.Data.CustomID)
}
