package bot

import (
	"fmt"
	"strings"

	"blight/internal/lists"

	"github.com/rs/zerolog/log"
)

// Every custom id of the bot starts with this prefix
const prefix string = "blight"

const separator string = ":"

// Custom id of the text input of the edit modals
const nameInput string = "name"

const (
	ACTION_SHOW_LIST    = iota
	ACTION_RANDOM_BUILD = iota
	ACTION_OPEN_MODAL   = iota
	ACTION_SUBMIT_MODAL = iota
)

var actionNames = map[int]string{
	ACTION_SHOW_LIST:    "list",
	ACTION_RANDOM_BUILD: "random",
	ACTION_OPEN_MODAL:   "edit",
	ACTION_SUBMIT_MODAL: "submit",
}

const (
	PARSEID_OK                       = iota
	PARSEID_NO_BOT_PREFIX            = iota
	PARSEID_NO_ACTION                = iota
	PARSEID_ACTION_NOT_RECOGNISED    = iota
	PARSEID_KIND_NOT_RECOGNISED      = iota
	PARSEID_OPERATION_NOT_RECOGNISED = iota
)

var errorMessages map[int]string = map[int]string{
	PARSEID_NO_BOT_PREFIX:            "Control `%s` does not belong to this bot",
	PARSEID_NO_ACTION:                "No action provided",
	PARSEID_ACTION_NOT_RECOGNISED:    "Action `%s` not recognised",
	PARSEID_KIND_NOT_RECOGNISED:      "List `%s` not recognised",
	PARSEID_OPERATION_NOT_RECOGNISED: "Operation `%s` not recognised",
}

type ParseResult struct {
	action       int
	parseid      int
	errorMessage string
	kind         lists.Kind
	operation    lists.Operation
}

func ListButtonID(kind lists.Kind) string {
	return strings.Join([]string{prefix, actionNames[ACTION_SHOW_LIST], string(kind)}, separator)
}

func RandomBuildButtonID() string {
	return strings.Join([]string{prefix, actionNames[ACTION_RANDOM_BUILD]}, separator)
}

func EditButtonID(op lists.Operation, kind lists.Kind) string {
	return strings.Join([]string{prefix, actionNames[ACTION_OPEN_MODAL], op.String(), string(kind)}, separator)
}

func ModalID(op lists.Operation, kind lists.Kind) string {
	return strings.Join([]string{prefix, actionNames[ACTION_SUBMIT_MODAL], op.String(), string(kind)}, separator)
}

// Parse the custom id of a button or a modal
func Parse(customID string) ParseResult {

	failed := func(parseid int, args ...any) ParseResult {
		return ParseResult{parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], args...)}
	}

	words := strings.Split(customID, separator)
	if words[0] != prefix {
		log.Debug().Msg(fmt.Sprintf("Reject custom id %s not created by the bot", customID))
		return failed(PARSEID_NO_BOT_PREFIX, customID)
	}
	words = words[1:]
	if len(words) == 0 || words[0] == "" {
		return failed(PARSEID_NO_ACTION)
	}
	actionString := words[0]
	words = words[1:]

	switch actionString {
	case actionNames[ACTION_SHOW_LIST]:
		// blight:list:<kind>
		if len(words) != 1 {
			return failed(PARSEID_KIND_NOT_RECOGNISED, strings.Join(words, separator))
		}
		kind, ok := lists.ParseKind(words[0])
		if !ok {
			return failed(PARSEID_KIND_NOT_RECOGNISED, words[0])
		}
		return ParseResult{action: ACTION_SHOW_LIST, parseid: PARSEID_OK, kind: kind}
	case actionNames[ACTION_RANDOM_BUILD]:
		// blight:random
		return ParseResult{action: ACTION_RANDOM_BUILD, parseid: PARSEID_OK}
	case actionNames[ACTION_OPEN_MODAL]:
		// blight:edit:<operation>:<kind>
		return parseEdit(ACTION_OPEN_MODAL, words)
	case actionNames[ACTION_SUBMIT_MODAL]:
		// blight:submit:<operation>:<kind>
		return parseEdit(ACTION_SUBMIT_MODAL, words)
	default:
		return failed(PARSEID_ACTION_NOT_RECOGNISED, actionString)
	}
}

func parseEdit(action int, words []string) ParseResult {

	failed := func(parseid int, word string) ParseResult {
		return ParseResult{action: action, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], word)}
	}

	if len(words) != 2 {
		return failed(PARSEID_OPERATION_NOT_RECOGNISED, strings.Join(words, separator))
	}
	var operation lists.Operation
	switch words[0] {
	case lists.Add.String():
		operation = lists.Add
	case lists.Remove.String():
		operation = lists.Remove
	default:
		return failed(PARSEID_OPERATION_NOT_RECOGNISED, words[0])
	}
	kind, ok := lists.ParseKind(words[1])
	if !ok {
		return failed(PARSEID_KIND_NOT_RECOGNISED, words[1])
	}
	return ParseResult{action: action, parseid: PARSEID_OK, kind: kind, operation: operation}
}
