package texasholdem

import (
	"holdemsim/pkg/playable"
)

// Participant represents an individual player seated at the table
type Participant struct {
	PlayerID int `json:"playerId"`
	// Stack persists across hands
	Stack int `json:"stack"`
	// BuyIn is the stack the participant sat down with
	BuyIn int `json:"buyIn"`
	// Removed is set once the participant busts. Removed participants stay in place
	// until the table is compacted between hands
	Removed bool `json:"removed"`
}

func newParticipant(p playable.Player) *Participant {
	return &Participant{
		PlayerID: p.GetPlayerID(),
		Stack:    p.GetTableStake(),
		BuyIn:    p.GetTableStake(),
	}
}

// GetPlayerID returns the player ID
func (p *Participant) GetPlayerID() int {
	return p.PlayerID
}

// GetTableStake returns the current stack
func (p *Participant) GetTableStake() int {
	return p.Stack
}

// Net returns how many chips the participant won or lost since sitting down
func (p *Participant) Net() int {
	return p.Stack - p.BuyIn
}
