package lists

import (
	"context"
	"fmt"

	"blight/internal/common"

	"github.com/rs/zerolog/log"
)

type Locator struct {
	platform Platform
	guild    map[Kind]Ref
	bindings Bindings
	locks    *common.KeyedMutex
}

// NewLocator creates a locator using the provided fixed messages for
// the guild scope, and the bindings for private scopes
func NewLocator(platform Platform, guild map[Kind]Ref, bindings Bindings) *Locator {
	return &Locator{
		platform: platform,
		guild:    guild,
		bindings: bindings,
		locks:    common.NewKeyedMutex(),
	}
}

// Resolve finds the address of the message holding the list,
// without contacting the platform
func (locator *Locator) Resolve(ctx context.Context, scope Scope, kind Kind) (Ref, error) {

	ref, found, err := locator.resolve(ctx, scope, kind)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if !found {
		return Ref{}, fmt.Errorf("%w: no %s message in %s", ErrNotFound, kind, scope)
	}
	return ref, nil
}

func (locator *Locator) resolve(ctx context.Context, scope Scope, kind Kind) (Ref, bool, error) {

	if !scope.Private() {
		ref, ok := locator.guild[kind]
		if !ok || ref.ChannelID == "" || ref.MessageID == "" {
			return Ref{}, false, nil
		}
		return ref, true, nil
	}

	messageID, found, err := locator.bindings.Get(ctx, scope.ChannelID, kind)
	if err != nil {
		return Ref{}, false, fmt.Errorf("could not read binding of %s in %s: %w", kind, scope, err)
	}
	if !found {
		return Ref{}, false, nil
	}
	return Ref{ChannelID: scope.ChannelID, MessageID: messageID}, true, nil
}

// Locate resolves and fetches the current block of a list. Every failure
// is reported as ErrNotFound, with the cause wrapped
func (locator *Locator) Locate(ctx context.Context, scope Scope, kind Kind) (Ref, Block, error) {

	ref, err := locator.Resolve(ctx, scope, kind)
	if err != nil {
		return Ref{}, Block{}, err
	}

	block, err := locator.platform.FetchBlock(ctx, ref)
	if err != nil {
		fetchErr := &FetchError{Ref: ref, Err: err}
		return Ref{}, Block{}, fmt.Errorf("%w: %w", ErrNotFound, fetchErr)
	}
	return ref, block, nil
}

// Store writes a new block over the message
func (locator *Locator) Store(ctx context.Context, ref Ref, block Block) error {
	if err := locator.platform.EditBlock(ctx, ref, block); err != nil {
		return fmt.Errorf("could not edit message %s: %w", ref, err)
	}
	return nil
}

// Ensure creates the empty lists of a private scope that do not have a
// message yet. The guild scope is never created, so this is a no-op there
func (locator *Locator) Ensure(ctx context.Context, scope Scope) error {

	if !scope.Private() {
		return nil
	}

	// Two first-time calls in the same channel must not both create messages
	unlock, err := locator.locks.Lock(ctx, scope.ChannelID)
	if err != nil {
		return fmt.Errorf("could not wait for the lists of %s: %w", scope, err)
	}
	defer unlock()

	for _, kind := range Kinds {
		_, found, err := locator.resolve(ctx, scope, kind)
		if err != nil {
			return err
		}
		if found {
			continue
		}

		ref, err := locator.platform.SendBlock(ctx, scope.ChannelID, Encode(string(kind), nil))
		if err != nil {
			return fmt.Errorf("could not create %s message in %s: %w", kind, scope, err)
		}
		if err := locator.bindings.Set(ctx, scope.ChannelID, kind, ref.MessageID); err != nil {
			return fmt.Errorf("could not bind %s message %s: %w", kind, ref, err)
		}
		log.Info().Msg(fmt.Sprintf("Created %s message %s in %s", kind, ref, scope))
	}
	return nil
}
