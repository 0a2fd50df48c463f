package texasholdem

import (
	"context"

	"holdemsim/pkg/playable/poker"
	"holdemsim/pkg/playable/poker/action"
)

// HumanActor is asked for a decision whenever a human player is on the clock
// RequestAction blocks until a decision is made. For a raise, amount is the number of
// chips to add. An error aborts the hand.
type HumanActor interface {
	RequestAction(ctx context.Context, state poker.State) (act action.Action, amount int, err error)
}

// HumanActorFunc is an adapter to allow the use of an ordinary function as a HumanActor
type HumanActorFunc func(ctx context.Context, state poker.State) (action.Action, int, error)

// RequestAction calls f(ctx, state)
func (f HumanActorFunc) RequestAction(ctx context.Context, state poker.State) (action.Action, int, error) {
	return f(ctx, state)
}
