package texasholdem

import (
	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable/poker/action"
	"holdemsim/pkg/playable/poker/betting"
	"holdemsim/pkg/playable/poker/handanalyzer"
	"holdemsim/pkg/playable/poker/potmanager"
)

// ActionEvent is a single applied action
type ActionEvent struct {
	Street       string           `json:"street"`
	PlayerID     int              `json:"playerId"`
	Action       action.Action    `json:"action"`
	Requested    action.Action    `json:"requested"`
	Added        int              `json:"added"`
	Contributed  int              `json:"contributed"`
	AmountToCall int              `json:"amountToCall"`
	Decision     betting.Decision `json:"decision"`
}

// ShowdownEntry is a hand revealed at showdown
type ShowdownEntry struct {
	PlayerID  int                   `json:"playerId"`
	HoleCards deck.Hand             `json:"holeCards"`
	BestCards deck.Hand             `json:"bestCards"`
	Category  handanalyzer.Category `json:"category"`
	Rank      handanalyzer.HandRank `json:"rank"`
}

// HandResult is the record of a finished hand
type HandResult struct {
	ID           string                `json:"id"`
	Number       int                   `json:"number"`
	ButtonID     int                   `json:"buttonId"`
	SmallBlindID int                   `json:"smallBlindId"`
	BigBlindID   int                   `json:"bigBlindId"`
	Community    deck.Hand             `json:"community"`
	HoleCards    map[int]deck.Hand     `json:"holeCards"`
	Actions      []ActionEvent         `json:"actions"`
	Showdown     []ShowdownEntry       `json:"showdown"`
	Settlement   *potmanager.Settlement `json:"settlement"`
	// Winners are the players who won chips from a pot, starting left of the button
	Winners     []int       `json:"winners"`
	Uncontested bool        `json:"uncontested"`
	Stacks      map[int]int `json:"stacks"`
	Busted      []int       `json:"busted"`
}

// Pot returns the number of chips that went into pots, excluding refunds
func (r *HandResult) Pot() int {
	if r.Settlement == nil {
		return 0
	}

	total := 0
	for _, pot := range r.Settlement.Pots {
		total += pot.Amount
	}

	return total
}
