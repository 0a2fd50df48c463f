package potmanager

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPots_sidePot(t *testing.T) {
	a := assert.New(t)

	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 300},
		{ID: 3, Amount: 300},
	})

	a.Nil(refunds)
	a.Equal(2, len(pots))
	a.Equal(300, pots[0].Amount)
	a.Equal([]int{1, 2, 3}, pots[0].Eligible)
	a.Equal(400, pots[1].Amount)
	a.Equal([]int{2, 3}, pots[1].Eligible)
	a.Equal(700, pots.Total())
}

func TestBuildPots_singlePot(t *testing.T) {
	a := assert.New(t)

	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 200},
		{ID: 2, Amount: 200},
		{ID: 3, Amount: 50, Folded: true},
	})

	a.Nil(refunds)
	a.Equal(1, len(pots))
	a.Equal(450, pots[0].Amount)
	a.Equal([]int{1, 2}, pots[0].Eligible)
}

func TestBuildPots_foldedContributorsMerge(t *testing.T) {
	a := assert.New(t)

	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 300},
		{ID: 3, Amount: 300},
		{ID: 4, Amount: 200, Folded: true},
	})

	a.Nil(refunds)
	a.Equal(2, len(pots))
	a.Equal(400, pots[0].Amount)
	a.Equal([]int{1, 2, 3}, pots[0].Eligible)
	a.Equal(500, pots[1].Amount)
	a.Equal([]int{2, 3}, pots[1].Eligible)
}

func TestBuildPots_refundsUncalledBet(t *testing.T) {
	a := assert.New(t)

	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 100},
		{ID: 2, Amount: 500},
		{ID: 3, Amount: 300},
	})

	a.Equal([]Refund{{ID: 2, Amount: 200}}, refunds)
	a.Equal(2, len(pots))
	a.Equal(300, pots[0].Amount)
	a.Equal(400, pots[1].Amount)
	a.Equal([]int{2, 3}, pots[1].Eligible)
}

func TestBuildPots_foldedTopContributorIsNotRefunded(t *testing.T) {
	a := assert.New(t)

	// small blind folds before the big blind has put anything in
	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 0, Folded: true},
		{ID: 2, Amount: 100, Folded: true},
		{ID: 3, Amount: 0},
	})

	a.Nil(refunds)
	a.Equal(1, len(pots))
	a.Equal(100, pots[0].Amount)
	a.Equal([]int{3}, pots[0].Eligible)
}

func TestBuildPots_unwinnableTierRollsDown(t *testing.T) {
	a := assert.New(t)

	pots, refunds := BuildPots([]Contribution{
		{ID: 1, Amount: 200},
		{ID: 2, Amount: 600, Folded: true},
		{ID: 3, Amount: 200, Folded: true},
	})

	a.Nil(refunds)
	a.Equal(1, len(pots))
	a.Equal(1000, pots[0].Amount)
	a.Equal([]int{1}, pots[0].Eligible)
}

func TestBuildPots_empty(t *testing.T) {
	pots, refunds := BuildPots(nil)
	assert.Equal(t, 0, len(pots))
	assert.Nil(t, refunds)
}

func TestBuildPots_conservesChips(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		n := 2 + r.Intn(8)
		contributions := make([]Contribution, n)
		total := 0
		for j := range contributions {
			contributions[j] = Contribution{
				ID:     j,
				Amount: r.Intn(5) * 100,
				Folded: j > 0 && r.Intn(3) == 0,
			}
			total += contributions[j].Amount
		}

		pots, refunds := BuildPots(contributions)
		paid := pots.Total()
		for _, refund := range refunds {
			assert.True(t, refund.Amount > 0)
			paid += refund.Amount
		}

		assert.Equal(t, total, paid, "%+v", contributions)
		for _, pot := range pots {
			assert.True(t, pot.Amount > 0, "%+v", contributions)
			assert.NotEmpty(t, pot.Eligible, "%+v", contributions)
		}
	}
}

func TestPot_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Pot{Amount: 10})
	assert.NoError(t, err)
	assert.Equal(t, `{"amount":10,"eligible":[]}`, string(b))
}
