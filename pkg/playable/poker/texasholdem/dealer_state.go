package texasholdem

import (
	"encoding/json"
)

// DealerState represents the state of a hand
type DealerState int

// constants for DealerState
const (
	DealerStateStart DealerState = iota
	DealerStatePreFlopBettingRound
	DealerStateFlopBettingRound
	DealerStateTurnBettingRound
	DealerStateFinalBettingRound
	DealerStateRevealWinner
	DealerStateEnd
)

func (d DealerState) String() string {
	switch d {
	case DealerStateStart:
		return "start"
	case DealerStatePreFlopBettingRound:
		return "pre-flop-betting-round"
	case DealerStateFlopBettingRound:
		return "flop-betting-round"
	case DealerStateTurnBettingRound:
		return "turn-betting-round"
	case DealerStateFinalBettingRound:
		return "final-betting-round"
	case DealerStateRevealWinner:
		return "reveal-winner"
	case DealerStateEnd:
		return "end"
	}

	return ""
}

// Street returns the name of the street for a betting round
func (d DealerState) Street() string {
	switch d {
	case DealerStatePreFlopBettingRound:
		return "pre-flop"
	case DealerStateFlopBettingRound:
		return "flop"
	case DealerStateTurnBettingRound:
		return "turn"
	case DealerStateFinalBettingRound:
		return "river"
	}

	return ""
}

// CommunityCardsShown returns how many community cards are face up during the state
func (d DealerState) CommunityCardsShown() int {
	switch d {
	case DealerStateStart, DealerStatePreFlopBettingRound:
		return 0
	case DealerStateFlopBettingRound:
		return 3
	case DealerStateTurnBettingRound:
		return 4
	}

	return 5
}

// InBettingRound returns true if the state is a betting round
func (d DealerState) InBettingRound() bool {
	return d >= DealerStatePreFlopBettingRound && d <= DealerStateFinalBettingRound
}

// MarshalJSON encodes JSON
func (d DealerState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}
