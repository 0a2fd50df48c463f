package handanalyzer

import "holdemsim/pkg/deck"

// royalFlushScore is the top of the scalar strength scale
const royalFlushScore = int(RoyalFlush) * deck.NumRanks

// Score collapses the rank into the coarse 0-117 scale bots use to pick a strategy:
// 13 points per category plus the primary rank. Kickers are ignored so unrelated
// hands can share a score, which is why Compare is the only way to decide a showdown
func (h HandRank) Score() int {
	if h.Category == RoyalFlush {
		return royalFlushScore
	}

	return int(h.Category)*deck.NumRanks + int(h.Primary)
}
