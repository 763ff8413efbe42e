package bot

import (
	"testing"

	"blight/internal/lists"

	"github.com/stretchr/testify/assert"
)

func TestParseButtonIDs(t *testing.T) {
	for _, kind := range lists.Kinds {
		result := Parse(ListButtonID(kind))
		assert.Equal(t, PARSEID_OK, result.parseid)
		assert.Equal(t, ACTION_SHOW_LIST, result.action)
		assert.Equal(t, kind, result.kind)

		for _, op := range []lists.Operation{lists.Add, lists.Remove} {
			result = Parse(EditButtonID(op, kind))
			assert.Equal(t, PARSEID_OK, result.parseid)
			assert.Equal(t, ACTION_OPEN_MODAL, result.action)
			assert.Equal(t, kind, result.kind)
			assert.Equal(t, op, result.operation)

			result = Parse(ModalID(op, kind))
			assert.Equal(t, PARSEID_OK, result.parseid)
			assert.Equal(t, ACTION_SUBMIT_MODAL, result.action)
			assert.Equal(t, kind, result.kind)
			assert.Equal(t, op, result.operation)
		}
	}

	result := Parse(RandomBuildButtonID())
	assert.Equal(t, PARSEID_OK, result.parseid)
	assert.Equal(t, ACTION_RANDOM_BUILD, result.action)
}

func TestParseIDFormat(t *testing.T) {
	assert.Equal(t, "blight:list:Allies", ListButtonID(lists.Allies))
	assert.Equal(t, "blight:random", RandomBuildButtonID())
	assert.Equal(t, "blight:edit:add:Enemies", EditButtonID(lists.Add, lists.Enemies))
	assert.Equal(t, "blight:submit:remove:Allies", ModalID(lists.Remove, lists.Allies))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		customID string
		parseid  int
		message  string
	}{
		{"other:list:Allies", PARSEID_NO_BOT_PREFIX, "Control `other:list:Allies` does not belong to this bot"},
		{"", PARSEID_NO_BOT_PREFIX, "Control `` does not belong to this bot"},
		{"blight", PARSEID_NO_ACTION, "No action provided"},
		{"blight:", PARSEID_NO_ACTION, "No action provided"},
		{"blight:dance", PARSEID_ACTION_NOT_RECOGNISED, "Action `dance` not recognised"},
		{"blight:list:Friends", PARSEID_KIND_NOT_RECOGNISED, "List `Friends` not recognised"},
		{"blight:list", PARSEID_KIND_NOT_RECOGNISED, "List `` not recognised"},
		{"blight:edit:rename:Allies", PARSEID_OPERATION_NOT_RECOGNISED, "Operation `rename` not recognised"},
		{"blight:submit:add", PARSEID_OPERATION_NOT_RECOGNISED, "Operation `add` not recognised"},
		{"blight:submit:add:Friends", PARSEID_KIND_NOT_RECOGNISED, "List `Friends` not recognised"},
	}
	for _, c := range cases {
		result := Parse(c.customID)
		assert.Equal(t, c.parseid, result.parseid, c.customID)
		assert.Equal(t, c.message, result.errorMessage, c.customID)
	}
}
