package bot

import (
	"context"
	"fmt"
	"time"

	"blight/internal/access"
	"blight/internal/build"
	"blight/internal/common"
	"blight/internal/lists"

	"github.com/rs/zerolog/log"
)

const (
	COMMAND_INTERFACE         = "interface"
	COMMAND_PRIVATE_INTERFACE = "private_interface"
)

// Handler turns interactions into replies, without knowledge of the
// platform connection
type Handler struct {
	appearance   Appearance
	gate         access.Gate
	locator      *lists.Locator
	mutator      *lists.Mutator
	roller       *build.Roller
	limiter      *common.RateLimiter
	housekeeping *common.TimedExecutor
}

func NewHandler(appearance Appearance, gate access.Gate, locator *lists.Locator, roller *build.Roller, limiter *common.RateLimiter, housekeeping time.Duration) *Handler {
	handler := &Handler{
		appearance: appearance,
		gate:       gate,
		locator:    locator,
		mutator:    lists.NewMutator(locator),
		roller:     roller,
		limiter:    limiter,
	}
	handler.housekeeping = common.NewTimedExecutor(housekeeping, func() { limiter.Prune() })
	return handler
}

func (handler *Handler) Handle(ctx context.Context, in Interaction, respond Respond) error {

	handler.housekeeping.Execute()

	switch in.Type {
	case INTERACTION_COMMAND:
		return handler.command(ctx, in, respond)
	case INTERACTION_COMPONENT, INTERACTION_MODAL:
		parseResult := Parse(in.Name)
		if parseResult.parseid != PARSEID_OK {
			log.Warn().Msg(fmt.Sprintf("Wrong input: '%s'. Reason: %s", in.Name, parseResult.errorMessage))
			return respond(InputNotValid(parseResult.errorMessage))
		}
		return handler.control(ctx, in, parseResult, respond)
	default:
		return fmt.Errorf("interaction type %d is not one of the possible ones", in.Type)
	}
}

func (handler *Handler) command(ctx context.Context, in Interaction, respond Respond) error {

	log.Info().Msg(fmt.Sprintf("Received command %s from user %s in %s", in.Name, in.UserID, in.Scope()))
	switch in.Name {
	case COMMAND_INTERFACE:
		if err := respond(Welcome(handler.appearance)); err != nil {
			return err
		}
		// In DMs the lists live right below the interface
		if err := handler.locator.Ensure(ctx, in.Scope()); err != nil {
			return fmt.Errorf("could not create the lists of %s: %w", in.Scope(), err)
		}
		return nil
	case COMMAND_PRIVATE_INTERFACE:
		if err := handler.gate.Check(in.UserID); err != nil {
			return respond(Unauthorized())
		}
		return respond(PrivateWelcome(handler.appearance))
	default:
		log.Warn().Msg(fmt.Sprintf("Command %s is not one of the possible ones", in.Name))
		return respond(CommandNotRecognised(in.Name))
	}
}

func (handler *Handler) control(ctx context.Context, in Interaction, parseResult ParseResult, respond Respond) error {

	switch parseResult.action {
	case ACTION_SHOW_LIST:
		return respond(handler.showList(ctx, in.Scope(), parseResult.kind))
	case ACTION_RANDOM_BUILD:
		if analysis := handler.limiter.Allow(in.UserID); !analysis.Allowed {
			return respond(SlowDown(analysis.Wait))
		}
		return respond(RandomBuild(handler.roller.Roll()))
	case ACTION_OPEN_MODAL:
		if err := handler.gate.Check(in.UserID); err != nil {
			return respond(Unauthorized())
		}
		return respond(EditModal(parseResult.operation, parseResult.kind))
	case ACTION_SUBMIT_MODAL:
		if err := handler.gate.Check(in.UserID); err != nil {
			return respond(Unauthorized())
		}
		if analysis := handler.limiter.Allow(in.UserID); !analysis.Allowed {
			return respond(SlowDown(analysis.Wait))
		}
		value, ok := in.Values[nameInput]
		if !ok || value == "" {
			return respond(InputNotValid(fmt.Sprintf("%s name is required", parseResult.kind.Singular())))
		}
		outcome := handler.mutator.Apply(ctx, parseResult.operation, parseResult.kind, in.Scope(), value)
		return respond(MutationResult(outcome, parseResult.kind, value))
	default:
		panic(fmt.Sprintf("Action %d is not one of the possible ones", parseResult.action))
	}
}

func (handler *Handler) showList(ctx context.Context, scope lists.Scope, kind lists.Kind) Reply {

	_, block, err := handler.locator.Locate(ctx, scope, kind)
	if err != nil {
		log.Debug().Msg(fmt.Sprintf("No %s message for %s: %v", kind, scope, err))
		return NoListMessage(kind)
	}
	// A message that lost its embed is shown as an empty list
	if block.Title == "" {
		block = lists.Encode(string(kind), lists.Decode(&block))
	}
	return ListMessage(block)
}
