package betting

import (
	"encoding/json"
	"fmt"
)

// Decision is where a seat stands in the current betting round
type Decision int

// Decision constants
const (
	Undecided Decision = iota
	Folded
	Called
	Raised
	AllIn
)

func (d Decision) String() string {
	switch d {
	case Undecided:
		return "undecided"
	case Folded:
		return "folded"
	case Called:
		return "called"
	case Raised:
		return "raised"
	case AllIn:
		return "all-in"
	}

	panic(fmt.Sprintf("unknown decision: %d", d))
}

// MarshalJSON encodes JSON
func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(d),
		Name: d.String(),
	})
}

// IsFinal returns true if the decision holds for the rest of the hand
func (d Decision) IsFinal() bool {
	return d == Folded || d == AllIn
}

// Status is the outcome of the betting round so far
type Status int

// Status constants
const (
	// InProgress means a seat still owes a decision
	InProgress Status = iota
	// StreetComplete means every seat has acted and betting continues on the next street
	StreetComplete
	// Showdown means no more betting is possible and the remaining cards are run out
	Showdown
	// Uncontested means every seat but one folded
	Uncontested
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case StreetComplete:
		return "street-complete"
	case Showdown:
		return "showdown"
	case Uncontested:
		return "uncontested"
	}

	return ""
}
