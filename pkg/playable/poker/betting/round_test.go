package betting

import (
	"errors"
	"math/rand"
	"testing"

	"holdemsim/pkg/playable/poker/action"

	"github.com/stretchr/testify/assert"
)

func newSeats(stacks ...int) []*Seat {
	seats := make([]*Seat, len(stacks))
	for i, stack := range stacks {
		seats[i] = NewSeat(i, stack)
	}

	return seats
}

// act asserts that id is next to act and applies the action
func act(t *testing.T, r *Round, id int, a action.Action, amount int) *Result {
	t.Helper()

	seat, status := r.Next()
	if !assert.Equal(t, InProgress, status) || !assert.NotNil(t, seat) || !assert.Equal(t, id, seat.ID) {
		t.FailNow()
	}

	result, err := r.Apply(id, a, amount)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return result
}

func decisions(seats []*Seat) []Decision {
	d := make([]Decision, len(seats))
	for i, s := range seats {
		d[i] = s.Decision
	}

	return d
}

func TestRound_raiseReopensAction(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000, 1000)
	r := NewRound(seats, 100)

	act(t, r, 0, action.Call, 0)
	act(t, r, 1, action.Call, 0)
	a.Equal([]Decision{Called, Called, Undecided, Undecided}, decisions(seats))

	result := act(t, r, 2, action.Raise, 300)
	a.True(result.Reopened)
	a.Equal(action.Raise, result.Action)
	a.Equal(300, r.AmountToCall())
	a.Equal([]Decision{Undecided, Undecided, Raised, Undecided}, decisions(seats))

	// action continues with the seat after the raiser
	act(t, r, 3, action.Call, 0)
	act(t, r, 0, action.Call, 0)
	act(t, r, 1, action.Fold, 0)

	seat, status := r.Next()
	a.Nil(seat)
	a.Equal(StreetComplete, status)
	a.Equal(300, seats[3].Contributed)
	a.Equal(700, seats[0].Stack)
	a.Equal(1000, seats[1].Stack)
}

func TestRound_allButOneFoldEndsImmediately(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000, 1000)
	r := NewPreFlopRound(seats, 2, 3, 50, 100)

	act(t, r, 0, action.Fold, 0)
	act(t, r, 1, action.Fold, 0)
	result := act(t, r, 2, action.Fold, 0)

	// the small blind is forced in before folding
	a.Equal(50, result.Added)
	a.Equal(950, seats[2].Stack)
	a.Equal(50, seats[2].Total)

	a.Equal(Undecided, seats[3].Decision)
	seat, status := r.Next()
	a.Nil(seat)
	a.Equal(Uncontested, status)
}

func TestRound_blindsArePaidWhenCalled(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000, 1000)
	r := NewPreFlopRound(seats, 2, 3, 50, 100)
	a.Equal(100, r.AmountToCall())

	act(t, r, 0, action.Call, 0)
	act(t, r, 1, action.Call, 0)
	act(t, r, 2, action.Call, 0)
	result := act(t, r, 3, action.Call, 0)
	a.Equal(100, result.Added)

	_, status := r.Next()
	a.Equal(StreetComplete, status)
	for _, s := range seats {
		a.Equal(900, s.Stack)
		a.Equal(100, s.Total)
	}

	// the next street starts fresh
	r = NewRound(seats, 100)
	a.Equal(0, r.AmountToCall())
	for _, s := range seats {
		a.Equal(0, s.Contributed)
		a.Equal(Undecided, s.Decision)
		a.Equal(100, s.Total)
	}
}

func TestRound_blindsAreForfeitedOnFold(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000)
	r := NewPreFlopRound(seats, 1, 2, 50, 100)

	act(t, r, 0, action.Raise, 300)
	act(t, r, 1, action.Fold, 0)
	a.Equal(50, seats[1].Total)

	result := act(t, r, 2, action.Fold, 0)
	a.Equal(100, result.Added)
	a.Equal(900, seats[2].Stack)

	_, status := r.Next()
	a.Equal(Uncontested, status)
}

func TestRound_callIsClampedToAllIn(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(50, 1000, 1000)
	r := NewPreFlopRound(seats, 1, 2, 50, 100)

	result := act(t, r, 0, action.Call, 0)
	a.Equal(action.AllIn, result.Action)
	a.Equal(action.Call, result.Requested)
	a.Equal(50, result.Added)
	a.Equal(AllIn, seats[0].Decision)
	a.False(result.Reopened)
	a.Equal(0, seats[0].Stack)
	a.Equal(100, r.AmountToCall())
}

func TestRound_raiseIsClamped(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000)
	r := NewRound(seats, 100)

	// a raise must add at least the big blind
	result := act(t, r, 0, action.Raise, 10)
	a.Equal(100, result.Added)
	a.Equal(Raised, result.Decision)

	// and must raise by at least a big blind on top of the call
	result = act(t, r, 1, action.Raise, 150)
	a.Equal(200, result.Added)
	a.Equal(200, r.AmountToCall())

	// asking for more than the stack is an all in
	result = act(t, r, 2, action.Raise, 5000)
	a.Equal(1000, result.Added)
	a.Equal(action.AllIn, result.Action)
	a.Equal(AllIn, result.Decision)
	a.True(result.Reopened)
	a.Equal(1000, r.AmountToCall())
}

func TestRound_shortAllInDoesNotReopen(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 300, 1000)
	r := NewRound(seats, 100)

	act(t, r, 0, action.Raise, 500)
	result := act(t, r, 1, action.AllIn, 0)
	a.False(result.Reopened)
	a.Equal(500, r.AmountToCall())
	a.Equal(Raised, seats[0].Decision)

	act(t, r, 2, action.Call, 0)

	// the raiser has nobody left to respond to
	_, status := r.Next()
	a.Equal(StreetComplete, status)
}

func TestRound_raiseShortOfTheCallIsAllIn(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 80)
	r := NewRound(seats, 100)

	act(t, r, 0, action.Raise, 100)
	result := act(t, r, 1, action.Raise, 100)
	a.Equal(action.AllIn, result.Action)
	a.Equal(action.Raise, result.Requested)
	a.Equal(80, result.Added)
	a.False(result.Reopened)
	a.Equal(100, r.AmountToCall())
	a.Equal(Raised, seats[0].Decision)

	_, status := r.Next()
	a.Equal(Showdown, status)
}

func TestRound_showdownWhenNobodyCanBet(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000)
	r := NewRound(seats, 100)
	act(t, r, 0, action.AllIn, 0)
	act(t, r, 1, action.Call, 0)

	_, status := r.Next()
	a.Equal(Showdown, status)
	a.Equal([]Decision{AllIn, AllIn}, decisions(seats))

	// one seat left with chips has nobody to bet against
	seats = newSeats(500, 1000, 1000)
	r = NewRound(seats, 100)
	act(t, r, 0, action.AllIn, 0)
	act(t, r, 1, action.Call, 0)
	act(t, r, 2, action.Fold, 0)

	_, status = r.Next()
	a.Equal(Showdown, status)
}

func TestRound_brokeSeatIsAllIn(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(0, 1000, 1000)
	r := NewRound(seats, 100)

	seat, status := r.Next()
	a.Equal(InProgress, status)
	a.Equal(1, seat.ID)
	a.Equal(AllIn, seats[0].Decision)
}

func TestRound_errors(t *testing.T) {
	a := assert.New(t)

	seats := newSeats(1000, 1000, 1000)
	r := NewRound(seats, 100)

	_, err := r.Apply(0, action.Call, 0)
	a.Equal(ErrRoundOver, err)

	r.Next()
	_, err = r.Apply(1, action.Call, 0)
	a.Equal(ErrNotYourTurn, err)

	_, err = r.Apply(0, action.Action("bad"), 0)
	a.True(errors.Is(err, action.ErrInvalidAction))

	_, err = r.Apply(0, action.Fold, 0)
	a.NoError(err)

	r.Next()
	_, err = r.Apply(0, action.Call, 0)
	a.Equal(ErrSeatCannotAct, err)

	_, err = r.Apply(99, action.Call, 0)
	a.Equal(ErrNotYourTurn, err)
}

func TestRound_conservesChips(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		n := 2 + rnd.Intn(5)
		stacks := make([]int, n)
		total := 0
		for j := range stacks {
			stacks[j] = 100 + rnd.Intn(20)*100
			total += stacks[j]
		}

		seats := newSeats(stacks...)
		r := NewPreFlopRound(seats, n-2, n-1, 50, 100)
		for step := 0; ; step++ {
			if !assert.True(t, step < 5000, "betting never finished") {
				t.FailNow()
			}

			seat, status := r.Next()
			if status != InProgress {
				break
			}

			a := action.All[rnd.Intn(len(action.All))]
			_, err := r.Apply(seat.ID, a, rnd.Intn(1000))
			assert.NoError(t, err)

			sum := 0
			for _, s := range seats {
				assert.True(t, s.Stack >= 0)
				assert.True(t, s.Contributed <= r.AmountToCall() || s.Decision == Folded)
				sum += s.Stack + s.Total
			}

			assert.Equal(t, total, sum)
		}
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "all-in", AllIn.String())
	assert.True(t, Folded.IsFinal())
	assert.False(t, Raised.IsFinal())
	assert.Equal(t, "showdown", Showdown.String())
}
