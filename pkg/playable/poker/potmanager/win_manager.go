package potmanager

import (
	"sort"

	"holdemsim/pkg/playable/poker/handanalyzer"
)

type tier struct {
	rank         handanalyzer.HandRank
	participants []int
}

// WinManager groups showdown participants into tiers of equal hand strength
type WinManager struct {
	tiers []*tier
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{}
}

// AddParticipant records the participant's best hand
func (w *WinManager) AddParticipant(id int, rank handanalyzer.HandRank) {
	for _, t := range w.tiers {
		if t.rank.Ties(rank) {
			t.participants = append(t.participants, id)
			return
		}
	}

	w.tiers = append(w.tiers, &tier{
		rank:         rank,
		participants: []int{id},
	})
}

// GetSortedTiers returns the participants grouped by hand strength, strongest first
func (w *WinManager) GetSortedTiers() [][]int {
	tiers := make([]*tier, len(w.tiers))
	copy(tiers, w.tiers)

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].rank.Beats(tiers[j].rank)
	})

	tieredParticipants := make([][]int, len(tiers))
	for i, t := range tiers {
		tieredParticipants[i] = t.participants
	}

	return tieredParticipants
}

// Winners returns the strongest of the eligible participants, keeping the order of eligible
// It satisfies WinnersFunc
func (w *WinManager) Winners(eligible []int) []int {
	for _, participants := range w.GetSortedTiers() {
		inTier := make(map[int]bool, len(participants))
		for _, id := range participants {
			inTier[id] = true
		}

		winners := make([]int, 0, len(participants))
		for _, id := range eligible {
			if inTier[id] {
				winners = append(winners, id)
			}
		}

		if len(winners) > 0 {
			return winners
		}
	}

	return nil
}
