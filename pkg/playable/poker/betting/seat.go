package betting

// Seat is a player's stake in one hand
type Seat struct {
	ID    int `json:"id"`
	Stack int `json:"stack"`
	// Contributed is what the seat has put in on the current street
	Contributed int `json:"contributed"`
	// Total is what the seat has put in over the whole hand
	Total    int      `json:"total"`
	Decision Decision `json:"decision"`
	// Blind is the forced bet the seat owes on the current street
	Blind int `json:"blind"`
}

// NewSeat returns a seat with the given stack
func NewSeat(id, stack int) *Seat {
	return &Seat{
		ID:    id,
		Stack: stack,
	}
}

// CanAct returns true if the seat can still fold, call or raise
func (s *Seat) CanAct() bool {
	return !s.Decision.IsFinal()
}

// InHand returns true until the seat folds
func (s *Seat) InHand() bool {
	return s.Decision != Folded
}

// owedBlind returns the part of the blind not yet put in
func (s *Seat) owedBlind() int {
	if s.Contributed >= s.Blind {
		return 0
	}

	return s.Blind - s.Contributed
}

// put moves chips from the stack into the pot
func (s *Seat) put(amount int) {
	s.Stack -= amount
	s.Contributed += amount
	s.Total += amount
}

// newStreet is called when a street starts
func (s *Seat) newStreet() {
	s.Contributed = 0
	s.Blind = 0
	if s.CanAct() {
		s.Decision = Undecided
	}
}
