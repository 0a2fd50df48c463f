package handanalyzer

import (
	"fmt"
	"strings"

	"holdemsim/pkg/deck"
)

// HandRank is a totally ordered hand strength
// Fields are compared in order: Category, Primary, Secondary, then Kickers element by element.
// What Primary and Secondary hold depends on the category:
//
//	StraightFlush, RoyalFlush, Straight: Primary is the high card of the run (Five for the wheel)
//	FourOfAKind:  Primary is the quad rank
//	FullHouse:    Primary is the trip rank, Secondary the pair rank
//	Flush:        Primary is the highest flush card
//	ThreeOfAKind: Primary is the trip rank
//	TwoPair:      Primary is the high pair, Secondary the low pair
//	OnePair:      Primary is the pair rank
//	HighCard:     Primary is the highest card
//
// Kickers hold the remaining ranks of the best five cards, highest first.
// Secondary is -1 when the category doesn't use it
type HandRank struct {
	Category  Category    `json:"category"`
	Primary   deck.Rank   `json:"primary"`
	Secondary deck.Rank   `json:"secondary"`
	Kickers   []deck.Rank `json:"kickers"`
}

const noRank deck.Rank = -1

// Compare returns 1 if h beats other, -1 if other beats h, and 0 on a true tie
func (h HandRank) Compare(other HandRank) int {
	if c := compareInt(int(h.Category), int(other.Category)); c != 0 {
		return c
	}

	if c := compareInt(int(h.Primary), int(other.Primary)); c != 0 {
		return c
	}

	if c := compareInt(int(h.Secondary), int(other.Secondary)); c != 0 {
		return c
	}

	return compareKickers(h.Kickers, other.Kickers)
}

// Beats returns true if h is strictly stronger than other
func (h HandRank) Beats(other HandRank) bool {
	return h.Compare(other) > 0
}

// Ties returns true if neither hand is stronger
func (h HandRank) Ties(other HandRank) bool {
	return h.Compare(other) == 0
}

// compareKickers walks both kicker arrays from the highest kicker down
// A hand with more kickers wins if the common prefix is equal, which only happens
// when comparing partial hands of different sizes
func compareKickers(a, b []deck.Rank) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if c := compareInt(int(a[i]), int(b[i])); c != 0 {
			return c
		}
	}

	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}

	return 0
}

func (h HandRank) String() string {
	kickers := make([]string, len(h.Kickers))
	for i, k := range h.Kickers {
		kickers[i] = k.String()
	}

	secondary := "-"
	if h.Secondary != noRank {
		secondary = h.Secondary.String()
	}

	return fmt.Sprintf("%s(%s,%s,[%s])", h.Category, h.Primary, secondary, strings.Join(kickers, ","))
}
