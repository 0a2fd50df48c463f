package betting

import (
	"errors"
	"fmt"

	"holdemsim/internal/rng"
	"holdemsim/pkg/playable/poker/action"
)

// ErrNotYourTurn is an error when a seat acts out of turn
var ErrNotYourTurn = errors.New("it is not your turn")

// ErrSeatCannotAct is an error when a seat that folded or is all in tries to act
var ErrSeatCannotAct = errors.New("seat cannot act")

// ErrRoundOver is an error when an action arrives after betting finished
var ErrRoundOver = errors.New("betting round is over")

// BetSizer picks how many chips a raise adds
type BetSizer func(stack, amountToCall, bigBlind int, r rng.Source) int

// Round is the betting on a single street
type Round struct {
	// seats in turn order
	seats        []*Seat
	amountToCall int
	bigBlind     int
	// next is the index in seats to start looking for the next actor from
	next  int
	actor *Seat
}

// Result describes an applied action
type Result struct {
	SeatID int           `json:"seatId"`
	Action action.Action `json:"action"`
	// Requested is the action asked for, which may differ when a bet had to be clamped
	Requested    action.Action `json:"requested"`
	Added        int           `json:"added"`
	Contributed  int           `json:"contributed"`
	AmountToCall int           `json:"amountToCall"`
	Decision     Decision      `json:"decision"`
	Reopened     bool          `json:"reopened"`
}

// NewRound starts a street
// Seats must be in turn order. Seats that have not folded or gone all in become Undecided
// and every seat's street contribution starts at zero.
func NewRound(seats []*Seat, bigBlind int) *Round {
	for _, s := range seats {
		s.newStreet()
	}

	return &Round{
		seats:    seats,
		bigBlind: bigBlind,
	}
}

// NewPreFlopRound starts the first street with blinds owed by the given seats
// Blinds are obligations rather than bets placed up front: the amount to call starts at the
// big blind, and a blind seat that folds before matching its blind forfeits it.
func NewPreFlopRound(seats []*Seat, smallBlindID, bigBlindID, smallBlind, bigBlind int) *Round {
	r := NewRound(seats, bigBlind)
	r.amountToCall = bigBlind

	for _, s := range seats {
		switch s.ID {
		case smallBlindID:
			s.Blind = smallBlind
		case bigBlindID:
			s.Blind = bigBlind
		}
	}

	return r
}

// AmountToCall is the street contribution every seat must match
func (r *Round) AmountToCall() int {
	return r.amountToCall
}

// BigBlind returns the big blind
func (r *Round) BigBlind() int {
	return r.bigBlind
}

// Seats returns the seats in turn order
func (r *Round) Seats() []*Seat {
	return r.seats
}

// Seat returns the seat with the given ID
func (r *Round) Seat(id int) (*Seat, bool) {
	for _, s := range r.seats {
		if s.ID == id {
			return s, true
		}
	}

	return nil, false
}

// Status returns the state of the round
func (r *Round) Status() Status {
	inHand, broke, final, undecided, canAct := 0, 0, 0, 0, 0
	for _, s := range r.seats {
		if s.InHand() {
			inHand++
			if s.Stack == 0 {
				broke++
			}
		}

		if s.Decision.IsFinal() {
			final++
		} else {
			canAct++
		}

		if s.Decision == Undecided {
			undecided++
		}
	}

	switch {
	case inHand <= 1:
		return Uncontested
	case broke == inHand:
		return Showdown
	case final == len(r.seats):
		return Showdown
	case undecided == 0 && canAct <= 1:
		return Showdown
	case undecided == 0:
		return StreetComplete
	}

	return InProgress
}

// Next returns the seat that must act next
// A nil seat is returned once the round is no longer in progress
func (r *Round) Next() (*Seat, Status) {
	r.actor = nil

	// a seat with nothing left to bet is all in, whether or not it is its turn
	for _, s := range r.seats {
		if s.CanAct() && s.Stack == 0 {
			s.Decision = AllIn
		}
	}

	status := r.Status()
	if status != InProgress {
		return nil, status
	}

	n := len(r.seats)
	for i := 0; i < n; i++ {
		index := (r.next + i) % n
		if s := r.seats[index]; s.Decision == Undecided {
			r.next = index
			r.actor = s
			return s, status
		}
	}

	// Status reports InProgress only while a seat is undecided
	panic("no undecided seat")
}

// Apply performs an action for the seat whose turn it is
// For a raise, amount is the number of chips the seat wants to add. It is clamped so the raise
// covers the call plus at least one big blind, and an amount at or above the stack is an all in.
// The amount is ignored for the other actions.
func (r *Round) Apply(seatID int, act action.Action, amount int) (*Result, error) {
	// validate
	if r.actor == nil {
		return nil, ErrRoundOver
	}

	if r.actor.ID != seatID {
		if s, ok := r.Seat(seatID); ok && !s.CanAct() {
			return nil, ErrSeatCannotAct
		}

		return nil, ErrNotYourTurn
	}

	if !act.IsValid() {
		return nil, fmt.Errorf("%w: %s", action.ErrInvalidAction, act)
	}

	s := r.actor
	result := &Result{
		SeatID:    s.ID,
		Action:    act,
		Requested: act,
	}

	// clamp
	toCall := r.amountToCall - s.Contributed
	if toCall < 0 {
		toCall = 0
	}

	var add int
	switch act {
	case action.Fold:
		add = min(s.owedBlind(), s.Stack)
	case action.Call:
		add = min(toCall, s.Stack)
	case action.Raise:
		add = max(amount, toCall+r.bigBlind)
		add = min(add, s.Stack)
	case action.AllIn:
		add = s.Stack
	}

	// stack and contribution
	s.put(add)
	result.Added = add

	// amount to call
	if act != action.Fold && s.Contributed > r.amountToCall {
		r.amountToCall = s.Contributed
		r.reopen(s)
		result.Reopened = true
	}

	// decision
	switch {
	case act == action.Fold:
		s.Decision = Folded
	case s.Stack == 0:
		s.Decision = AllIn
		result.Action = action.AllIn
	case result.Reopened:
		s.Decision = Raised
		result.Action = action.Raise
	default:
		// includes a raise that did not raise the amount to call
		s.Decision = Called
		result.Action = action.Call
	}

	result.Contributed = s.Contributed
	result.AmountToCall = r.amountToCall
	result.Decision = s.Decision

	r.next = (r.indexOf(s) + 1) % len(r.seats)
	r.actor = nil

	return result, nil
}

// reopen makes every other seat that can still act decide again
func (r *Round) reopen(raiser *Seat) {
	for _, s := range r.seats {
		if s != raiser && s.CanAct() {
			s.Decision = Undecided
		}
	}
}

func (r *Round) indexOf(seat *Seat) int {
	for i, s := range r.seats {
		if s == seat {
			return i
		}
	}

	panic("seat is not in the round")
}
