package lists

import (
	"context"
	"fmt"

	"blight/internal/common"

	"github.com/rs/zerolog/log"
)

type Operation int

const (
	Add Operation = iota
	Remove
)

func (op Operation) String() string {
	switch op {
	case Add:
		return "add"
	case Remove:
		return "remove"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

type Outcome int

const (
	NotFound   Outcome = iota // The list message is unreachable
	NotPresent                // Removing a value that is not in the list
	Added
	Removed
)

func (outcome Outcome) String() string {
	switch outcome {
	case NotFound:
		return "not found"
	case NotPresent:
		return "not present"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("outcome(%d)", int(outcome))
	}
}

// Mutator applies add and remove operations to the lists.
// Every operation fetches the current block, changes it and writes it back.
// Operations on the same list and scope are serialized, so concurrent
// writers in this process do not overwrite each other
type Mutator struct {
	locator *Locator
	locks   *common.KeyedMutex
}

func NewMutator(locator *Locator) *Mutator {
	return &Mutator{locator: locator, locks: common.NewKeyedMutex()}
}

func (mutator *Mutator) Apply(ctx context.Context, op Operation, kind Kind, scope Scope, value string) Outcome {

	unlock, err := mutator.locks.Lock(ctx, fmt.Sprintf("%s@%s", kind, scope))
	if err != nil {
		// Gave up waiting for another change to the same list
		log.Warn().Msg(fmt.Sprintf("Cannot %s %q in %s of %s: %v", op, value, kind, scope, err))
		return NotFound
	}
	defer unlock()

	ref, block, err := mutator.locator.Locate(ctx, scope, kind)
	if err != nil {
		log.Debug().Msg(fmt.Sprintf("Cannot %s %q: %v", op, value, err))
		return NotFound
	}

	entries, outcome := applyOperation(op, Decode(&block), value)
	if outcome == NotPresent {
		log.Debug().Msg(fmt.Sprintf("%q is not in %s of %s", value, kind, scope))
		return outcome
	}

	if err := mutator.locator.Store(ctx, ref, Encode(string(kind), entries)); err != nil {
		// Nothing was changed locally, so the list stays as it was
		log.Warn().Msg(fmt.Sprintf("Could not %s %q in %s of %s: %v", op, value, kind, scope, err))
		return NotFound
	}
	log.Info().Msg(fmt.Sprintf("%s %q in %s of %s: %s", op, value, kind, scope, outcome))
	return outcome
}

// Apply the operation to a decoded list. Add always appends, remove
// drops the first exact match only
func applyOperation(op Operation, entries []string, value string) ([]string, Outcome) {
	switch op {
	case Add:
		return append(entries, value), Added
	case Remove:
		for i, entry := range entries {
			if entry == value {
				result := make([]string, 0, len(entries)-1)
				result = append(result, entries[:i]...)
				return append(result, entries[i+1:]...), Removed
			}
		}
		return entries, NotPresent
	default:
		panic(fmt.Sprintf("Operation %d is not one of the possible ones", op))
	}
}
