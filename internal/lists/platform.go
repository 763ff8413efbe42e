package lists

import "context"

// Platform is the chat platform storing the blocks
type Platform interface {
	FetchBlock(ctx context.Context, ref Ref) (Block, error)
	SendBlock(ctx context.Context, channelID string, block Block) (Ref, error)
	EditBlock(ctx context.Context, ref Ref, block Block) error
}

// Bindings remembers which messages hold the lists of every DM channel
type Bindings interface {
	Get(ctx context.Context, channelID string, kind Kind) (messageID string, found bool, err error)
	Set(ctx context.Context, channelID string, kind Kind, messageID string) error
}
