package potmanager

import (
	"errors"
	"fmt"
)

// ErrInvariant is an error when chips would be created or lost while settling a hand
var ErrInvariant = errors.New("pot invariant violated")

// WinnersFunc picks the winners of a pot from its eligible participants
// The returned winners must be a subset of eligible, in the same order
type WinnersFunc func(eligible []int) []int

// PotResult is how a single pot was paid out
type PotResult struct {
	Amount   int         `json:"amount"`
	Eligible []int       `json:"eligible"`
	Winners  []int       `json:"winners"`
	Shares   map[int]int `json:"shares"`
}

// Settlement is the payout schedule for a hand
type Settlement struct {
	Pots    []PotResult `json:"pots"`
	Refunds []Refund    `json:"refunds"`
	// Payouts is the total each participant receives, refunds included
	Payouts map[int]int `json:"payouts"`
}

// Won returns how much the participant won from pots, excluding refunds
func (s *Settlement) Won(id int) int {
	won := 0
	for _, pot := range s.Pots {
		won += pot.Shares[id]
	}

	return won
}

// Settle builds the pots for the contributions and pays each one to its winners
//
// A pot that cannot be split evenly gives the odd chips to the first winner in contribution
// order, so callers should list contributions starting from the seat after the button.
func Settle(contributions []Contribution, winnersOf WinnersFunc) (*Settlement, error) {
	total := 0
	for _, c := range contributions {
		if c.Amount < 0 {
			return nil, fmt.Errorf("%w: participant %d contributed %d", ErrInvariant, c.ID, c.Amount)
		}

		total += c.Amount
	}

	pots, refunds := BuildPots(contributions)

	s := &Settlement{
		Pots:    make([]PotResult, 0, len(pots)),
		Refunds: refunds,
		Payouts: make(map[int]int),
	}

	for _, r := range refunds {
		s.Payouts[r.ID] += r.Amount
	}

	for i, pot := range pots {
		winners := winnersOf(pot.Eligible)
		if len(winners) == 0 {
			return nil, fmt.Errorf("%w: pot %d of %d has no winner", ErrInvariant, i, pot.Amount)
		}

		for _, w := range winners {
			if !pot.IsEligible(w) {
				return nil, fmt.Errorf("%w: participant %d cannot win pot %d", ErrInvariant, w, i)
			}
		}

		result := PotResult{
			Amount:   pot.Amount,
			Eligible: pot.Eligible,
			Winners:  winners,
			Shares:   make(map[int]int, len(winners)),
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for j, w := range winners {
			amount := share
			if j == 0 {
				amount += remainder
			}

			result.Shares[w] += amount
			s.Payouts[w] += amount
		}

		s.Pots = append(s.Pots, result)
	}

	paid := 0
	for _, amount := range s.Payouts {
		paid += amount
	}

	if paid != total {
		return nil, fmt.Errorf("%w: paid %d of %d", ErrInvariant, paid, total)
	}

	return s, nil
}
