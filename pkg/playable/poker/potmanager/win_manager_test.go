package potmanager

import (
	"strconv"
	"strings"
	"testing"

	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable/poker/handanalyzer"

	"github.com/stretchr/testify/assert"
)

func rankOf(t *testing.T, cards string) handanalyzer.HandRank {
	t.Helper()

	r, err := handanalyzer.Evaluate(deck.CardsFromString(cards))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return r.Rank
}

func TestNewWinManager(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddParticipant(1, rankOf(t, "2c,5d,7h,9s,11c"))
	wm.AddParticipant(2, rankOf(t, "2c,2d,7h,9s,11c"))
	wm.AddParticipant(3, rankOf(t, "2c,2d,2h,9s,11c"))
	wm.AddParticipant(4, rankOf(t, "2h,2s,7c,9d,11d"))
	wm.AddParticipant(5, rankOf(t, "2s,2d,2c,9h,11h"))

	tiers := wm.GetSortedTiers()
	a.Equal("3-5|2-4|1", tiersToString(tiers))
}

func TestWinManager_Winners(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddParticipant(1, rankOf(t, "14c,14d,14h,9s,11c"))
	wm.AddParticipant(2, rankOf(t, "2c,2d,7h,9s,11c"))
	wm.AddParticipant(3, rankOf(t, "2h,2s,7c,9d,11d"))

	a.Equal([]int{1}, wm.Winners([]int{1, 2, 3}))
	a.Equal([]int{3, 2}, wm.Winners([]int{3, 2}))
	a.Nil(wm.Winners([]int{9}))

	s, err := Settle([]Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 300},
		{ID: 3, Amount: 301},
	}, wm.Winners)
	a.NoError(err)
	a.Equal(300, s.Payouts[1])
	a.Equal(200, s.Payouts[2])
	a.Equal(201, s.Payouts[3])
}

func tiersToString(tiers [][]int) string {
	s := make([]string, len(tiers))
	for i, participants := range tiers {
		ids := make([]string, len(participants))
		for j, id := range participants {
			ids[j] = strconv.Itoa(id)
		}

		s[i] = strings.Join(ids, "-")
	}

	return strings.Join(s, "|")
}
