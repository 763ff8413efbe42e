// Package liststest provides an in-memory chat platform for tests.
package liststest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"blight/internal/lists"
)

var ErrUnknownMessage = errors.New("unknown message")

// Platform stores blocks in memory, addressed like real messages
type Platform struct {
	mu       sync.Mutex
	blocks   map[lists.Ref]lists.Block
	order    map[string][]lists.Ref
	next     int
	Sends    int
	Edits    int
	FailGet  error
	FailSend error
	FailEdit error
	// Called after a fetch is served, outside the lock
	AfterFetch func(ref lists.Ref)
}

func NewPlatform() *Platform {
	return &Platform{blocks: map[lists.Ref]lists.Block{}, order: map[string][]lists.Ref{}}
}

// Put stores a block at a fixed address, like a pre-existing guild message
func (p *Platform) Put(ref lists.Ref, block lists.Block) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.blocks[ref] = block
	p.order[ref.ChannelID] = append(p.order[ref.ChannelID], ref)
}

// Block returns what is currently stored at the address
func (p *Platform) Block(ref lists.Ref) (lists.Block, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	block, ok := p.blocks[ref]
	return block, ok
}

// Delete removes a message, like a user deleting it
func (p *Platform) Delete(ref lists.Ref) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.blocks, ref)
}

// Messages returns the addresses of the messages sent to a channel, oldest first
func (p *Platform) Messages(channelID string) []lists.Ref {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]lists.Ref(nil), p.order[channelID]...)
}

func (p *Platform) FetchBlock(ctx context.Context, ref lists.Ref) (lists.Block, error) {
	p.mu.Lock()
	if p.FailGet != nil {
		p.mu.Unlock()
		return lists.Block{}, p.FailGet
	}
	block, ok := p.blocks[ref]
	after := p.AfterFetch
	p.mu.Unlock()
	if !ok {
		return lists.Block{}, fmt.Errorf("%w: %s", ErrUnknownMessage, ref)
	}
	if after != nil {
		after(ref)
	}
	return block, nil
}

func (p *Platform) SendBlock(ctx context.Context, channelID string, block lists.Block) (lists.Ref, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailSend != nil {
		return lists.Ref{}, p.FailSend
	}
	p.next++
	ref := lists.Ref{ChannelID: channelID, MessageID: fmt.Sprintf("m-%d", p.next)}
	p.blocks[ref] = block
	p.order[channelID] = append(p.order[channelID], ref)
	p.Sends++
	return ref, nil
}

func (p *Platform) EditBlock(ctx context.Context, ref lists.Ref, block lists.Block) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailEdit != nil {
		return p.FailEdit
	}
	if _, ok := p.blocks[ref]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMessage, ref)
	}
	p.blocks[ref] = block
	p.Edits++
	return nil
}
