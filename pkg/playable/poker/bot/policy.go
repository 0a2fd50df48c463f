package bot

import (
	"errors"
	"fmt"
	"math"

	"holdemsim/internal/rng"
	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable/poker/action"
	"holdemsim/pkg/playable/poker/handanalyzer"
)

// ErrNoRow is an error when the policy has no probabilities for a street
var ErrNoRow = errors.New("no probability row")

// Bucket is a coarse hand strength
type Bucket int

// Bucket constants
const (
	Weak Bucket = iota
	Strong
)

func (b Bucket) String() string {
	if b == Strong {
		return "strong"
	}

	return "weak"
}

// Row is the probability of each action, in the order of action.All
type Row [4]float64

// Sum returns the total probability of the row
func (r Row) Sum() float64 {
	return r[0] + r[1] + r[2] + r[3]
}

// Rows are the weak and strong rows for one street
type Rows struct {
	Weak   Row
	Strong Row
}

// Policy decides what a bot does
type Policy struct {
	// PreFlopThreshold is the highest strength still considered weak before the flop
	PreFlopThreshold int
	// PostFlopThreshold is the highest strength still considered weak once the flop is out
	PostFlopThreshold int
	// Table is keyed by the number of community cards shown
	Table map[int]Rows
	// RaiseMean and RaiseStdDev are fractions of the stack
	RaiseMean   float64
	RaiseStdDev float64
}

// DefaultPolicy returns the default bot policy
func DefaultPolicy() *Policy {
	return &Policy{
		PreFlopThreshold:  6,
		PostFlopThreshold: 13,
		Table:             DefaultTable(),
		RaiseMean:         0.2,
		RaiseStdDev:       0.1,
	}
}

// DefaultTable returns the default probabilities
func DefaultTable() map[int]Rows {
	return map[int]Rows{
		0: {Weak: Row{0.2, 0.7, 0.09, 0.01}, Strong: Row{0.08, 0.8, 0.1, 0.02}},
		3: {Weak: Row{0.3, 0.6, 0.09, 0.01}, Strong: Row{0.05, 0.75, 0.19, 0.01}},
		4: {Weak: Row{0.8, 0.18, 0.01, 0.01}, Strong: Row{0.1, 0.8, 0.09, 0.01}},
		5: {Weak: Row{0.9, 0.08, 0.01, 0.01}, Strong: Row{0.1, 0.8, 0.09, 0.01}},
	}
}

// Validate returns an error if any row does not sum to 1
func (p *Policy) Validate() error {
	for _, shown := range []int{0, 3, 4, 5} {
		rows, ok := p.Table[shown]
		if !ok {
			return fmt.Errorf("%w for %d community cards", ErrNoRow, shown)
		}

		for bucket, row := range map[Bucket]Row{Weak: rows.Weak, Strong: rows.Strong} {
			for _, prob := range row {
				if prob < 0 {
					return fmt.Errorf("%s row for %d community cards has a negative probability", bucket, shown)
				}
			}

			if math.Abs(row.Sum()-1) > 1e-9 {
				return fmt.Errorf("%s row for %d community cards sums to %g", bucket, shown, row.Sum())
			}
		}
	}

	if p.RaiseMean <= 0 || p.RaiseStdDev < 0 {
		return errors.New("raise sizing fractions must be positive")
	}

	return nil
}

// Bucket returns the strength bucket for a strength score
func (p *Policy) Bucket(strength, cardsShown int) Bucket {
	threshold := p.PostFlopThreshold
	if cardsShown == 0 {
		threshold = p.PreFlopThreshold
	}

	if strength > threshold {
		return Strong
	}

	return Weak
}

// Action samples an action for the bucket and street
// It draws exactly one number from r
func (p *Policy) Action(bucket Bucket, cardsShown int, r rng.Source) (action.Action, error) {
	rows, ok := p.Table[cardsShown]
	if !ok {
		return "", fmt.Errorf("%w for %d community cards", ErrNoRow, cardsShown)
	}

	row := rows.Weak
	if bucket == Strong {
		row = rows.Strong
	}

	u := r.Float64()
	cumulative := 0.0
	for i, prob := range row {
		cumulative += prob
		if u < cumulative {
			return action.All[i], nil
		}
	}

	// rows that sum slightly below 1 fall through to the last action with any weight
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] > 0 {
			return action.All[i], nil
		}
	}

	return action.Call, nil
}

// Decide evaluates the bot's cards against the community cards shown and samples an action
func (p *Policy) Decide(hole, community deck.Hand, r rng.Source) (action.Action, error) {
	strength, err := Strength(hole, community)
	if err != nil {
		return "", err
	}

	return p.Action(p.Bucket(strength, len(community)), len(community), r)
}

// Size returns how many chips a raise adds: a draw from a normal distribution around a
// fraction of the stack, clamped between the larger of the amount to call and the big
// blind, and the stack. A stack below that floor goes all in.
func (p *Policy) Size(stack, amountToCall, bigBlind int, r rng.Source) int {
	floor := max(amountToCall, bigBlind)
	if stack <= floor {
		return stack
	}

	mean := float64(stack) * p.RaiseMean
	stdDev := float64(stack) * p.RaiseStdDev
	amount := int(math.Round(mean + stdDev*r.NormFloat64()))

	return min(max(amount, floor), stack)
}

// Strength returns the strength score of the hole cards combined with the community cards
func Strength(hole, community deck.Hand) (int, error) {
	cards := make(deck.Hand, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)

	h, err := handanalyzer.New(cards)
	if err != nil {
		return 0, err
	}

	return h.GetStrength(), nil
}
