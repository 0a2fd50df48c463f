package handanalyzer

import (
	"math/rand"
	"testing"

	"holdemsim/pkg/deck"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
)

func randomHand(r *rand.Rand, n int) deck.Hand {
	d := deck.New()
	d.Shuffle(r)
	hand, _ := d.Deal(n)
	return hand
}

// bestOfSubsets evaluates every five-card subset of cards and returns the strongest
func bestOfSubsets(t *testing.T, cards deck.Hand) HandRank {
	t.Helper()

	var best HandRank
	found := false
	n := len(cards)
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				for d := c + 1; d < n; d++ {
					for e := d + 1; e < n; e++ {
						r, err := Evaluate(deck.Hand{cards[a], cards[b], cards[c], cards[d], cards[e]})
						if !assert.NoError(t, err) {
							t.FailNow()
						}

						if !found || r.Rank.Beats(best) {
							best = r.Rank
							found = true
						}
					}
				}
			}
		}
	}

	return best
}

func TestEvaluate_bestOfSubsets(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		cards := randomHand(r, 7)
		got, err := Evaluate(cards)
		assert.NoError(t, err)

		want := bestOfSubsets(t, cards)
		assert.Equal(t, 0, got.Rank.Compare(want), "%s: got %s, want %s", cards, got.Rank, want)

		// the chosen cards must themselves evaluate to the same rank
		again, err := Evaluate(got.Cards)
		assert.NoError(t, err)
		assert.Equal(t, 0, got.Rank.Compare(again.Rank), "%s", cards)
	}
}

func toOracle(t *testing.T, cards deck.Hand) *[7]poker.Card {
	t.Helper()

	var out [7]poker.Card
	for i, c := range cards {
		// the oracle ranks the ace as 1 and the king as 13
		rank := c.Rank.Face()
		if c.Rank == deck.Ace {
			rank = 1
		}

		card, err := poker.MakeCard(poker.Suit(c.Suit), poker.Rank(rank))
		if !assert.NoError(t, err) {
			t.FailNow()
		}

		out[i] = card
	}

	return &out
}

func TestEvaluate_matchesOracle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		h1 := randomHand(r, 7)
		h2 := randomHand(r, 7)

		r1, err := Evaluate(h1)
		assert.NoError(t, err)
		r2, err := Evaluate(h2)
		assert.NoError(t, err)

		o1 := poker.Eval7(toOracle(t, h1))
		o2 := poker.Eval7(toOracle(t, h2))

		assert.Equal(t, compareInt(int(o1), int(o2)), r1.Rank.Compare(r2.Rank), "%s vs %s", h1, h2)
	}
}
