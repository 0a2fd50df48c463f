package potmanager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedWinners(order ...int) WinnersFunc {
	return func(eligible []int) []int {
		for _, id := range order {
			for _, e := range eligible {
				if e == id {
					return []int{id}
				}
			}
		}

		return nil
	}
}

func TestSettle_allInPlayerWinsMainPotOnly(t *testing.T) {
	a := assert.New(t)

	contributions := []Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 300},
		{ID: 3, Amount: 300},
	}

	s, err := Settle(contributions, fixedWinners(1, 3, 2))
	a.NoError(err)
	a.Equal(300, s.Payouts[1])
	a.Equal(0, s.Payouts[2])
	a.Equal(400, s.Payouts[3])
	a.Equal(300, s.Won(1))
	a.Equal([]int{1}, s.Pots[0].Winners)
	a.Equal([]int{3}, s.Pots[1].Winners)
}

func TestSettle_splitPotOddChip(t *testing.T) {
	a := assert.New(t)

	contributions := []Contribution{
		{ID: 1, Amount: 101},
		{ID: 2, Amount: 101},
		{ID: 3, Amount: 101},
	}

	s, err := Settle(contributions, func(eligible []int) []int {
		return []int{1, 3}
	})
	a.NoError(err)
	a.Equal(152, s.Payouts[1])
	a.Equal(151, s.Payouts[3])
	a.Equal(0, s.Payouts[2])
}

func TestSettle_refundIsPaidOut(t *testing.T) {
	a := assert.New(t)

	s, err := Settle([]Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 500},
	}, fixedWinners(1))
	a.NoError(err)
	a.Equal(200, s.Payouts[1])
	a.Equal(400, s.Payouts[2])
	a.Equal(0, s.Won(2))
	a.Equal([]Refund{{ID: 2, Amount: 400}}, s.Refunds)
}

func TestSettle_errors(t *testing.T) {
	a := assert.New(t)

	contributions := []Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 300},
		{ID: 3, Amount: 300},
	}

	_, err := Settle(contributions, func([]int) []int { return nil })
	a.True(errors.Is(err, ErrInvariant))

	// participant 1 is not eligible for the side pot
	_, err = Settle(contributions, func([]int) []int { return []int{1} })
	a.True(errors.Is(err, ErrInvariant))

	_, err = Settle([]Contribution{{ID: 1, Amount: -1}}, fixedWinners(1))
	a.True(errors.Is(err, ErrInvariant))
}
