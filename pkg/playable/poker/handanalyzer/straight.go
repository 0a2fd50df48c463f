package handanalyzer

import (
	"holdemsim/pkg/deck"
)

// findStraight finds the highest five-card run in cards, which must be sorted by rank, highest first
// The ace also plays low to complete A-2-3-4-5, in which case the high card is the Five
func findStraight(cards deck.Hand) (deck.Rank, deck.Hand, bool) {
	if len(cards) < handSize {
		return 0, nil, false
	}

	// first card seen of each rank; cards are sorted so this keeps suit order stable
	var present [deck.NumRanks]bool
	var first [deck.NumRanks]deck.Card
	for _, card := range cards {
		if !present[card.Rank] {
			present[card.Rank] = true
			first[card.Rank] = card
		}
	}

	for high := deck.Ace; high >= deck.Five; high-- {
		run := make(deck.Hand, 0, handSize)
		for i := 0; i < handSize; i++ {
			rank := lowAceRank(high - deck.Rank(i))
			if !present[rank] {
				break
			}

			run = append(run, first[rank])
		}

		if len(run) == handSize {
			return high, run, true
		}
	}

	return 0, nil, false
}

// lowAceRank wraps the rank below Two around to the Ace
func lowAceRank(rank deck.Rank) deck.Rank {
	if rank < deck.Two {
		return deck.Ace
	}

	return rank
}
