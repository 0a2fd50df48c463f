package poker

import (
	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable/poker/potmanager"
)

// State provides the current state data for common poker values
// It is the view a player is given when asked to act
type State struct {
	HandID       string          `json:"handId"`
	PlayerID     int             `json:"playerId"`
	Street       string          `json:"street"`
	BigBlind     int             `json:"bigBlind"`
	AmountToCall int             `json:"amountToCall"`
	Contributed  int             `json:"contributed"`
	Stack        int             `json:"stack"`
	Pots         potmanager.Pots `json:"pots"`
	Community    deck.Hand       `json:"community"`
	HoleCards    deck.Hand       `json:"holeCards"`
}

// ToCall returns what the player must add to stay in the hand
func (s State) ToCall() int {
	if s.AmountToCall <= s.Contributed {
		return 0
	}

	return s.AmountToCall - s.Contributed
}

// CanCheck returns true if the player can stay in without adding chips
func (s State) CanCheck() bool {
	return s.ToCall() == 0
}
