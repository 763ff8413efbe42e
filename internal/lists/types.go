package lists

import "fmt"

type Kind string

const (
	Allies  Kind = "Allies"
	Enemies Kind = "Enemies"
)

// Kinds in the order their messages are created
var Kinds = []Kind{Allies, Enemies}

func ParseKind(s string) (Kind, bool) {
	for _, kind := range Kinds {
		if string(kind) == s {
			return kind, true
		}
	}
	return "", false
}

// Singular name of one entry of the list, as shown on buttons and modals
func (kind Kind) Singular() string {
	switch kind {
	case Allies:
		return "Ally"
	case Enemies:
		return "Enemy"
	default:
		return string(kind)
	}
}

// A scope decides which message holds a list. The guild scope is shared
// by everybody, a private scope belongs to a single DM channel
type Scope struct {
	ChannelID string
}

func GuildScope() Scope {
	return Scope{}
}

func PrivateScope(channelID string) Scope {
	return Scope{ChannelID: channelID}
}

func (scope Scope) Private() bool {
	return scope.ChannelID != ""
}

func (scope Scope) String() string {
	if scope.Private() {
		return fmt.Sprintf("dm:%s", scope.ChannelID)
	}
	return "guild"
}

// Address of a message holding a list
type Ref struct {
	ChannelID string
	MessageID string
}

func (ref Ref) String() string {
	return fmt.Sprintf("%s/%s", ref.ChannelID, ref.MessageID)
}

// The serialized form of a list: the title and description of an embed
type Block struct {
	Title string
	Body  string
}
