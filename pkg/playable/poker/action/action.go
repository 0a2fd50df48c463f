package action

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidAction is an error when an action cannot be understood
var ErrInvalidAction = errors.New("invalid action")

// Action represents an action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Call  Action = "call"
	Raise Action = "raise"
	AllIn Action = "allin"
)

// All lists every action in the order bot probability rows are written in
var All = []Action{Fold, Call, Raise, AllIn}

// aliases are the extra spellings a person might type
var aliases = map[string]Action{
	"f":      Fold,
	"fold":   Fold,
	"c":      Call,
	"call":   Call,
	"check":  Call,
	"k":      Call,
	"r":      Raise,
	"raise":  Raise,
	"bet":    Raise,
	"b":      Raise,
	"a":      AllIn,
	"allin":  AllIn,
	"all-in": AllIn,
	"shove":  AllIn,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}

	return "", fmt.Errorf("%w: unknown action for identifier: %s", ErrInvalidAction, s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Call:
		return "Call"
	case Raise:
		return "Raise"
	case AllIn:
		return "All in"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	switch a {
	case Fold, Call, Raise, AllIn:
		return true
	}

	return false
}

// LogMessage returns a message formatted for the log
// added is what the player put in with this action, total is their bet for the street
func (a Action) LogMessage(added, total int) string {
	switch a {
	case Fold:
		if added > 0 {
			return fmt.Sprintf("folded, forfeiting a blind of ${%d}", added)
		}

		return "folded"
	case Call:
		if added == 0 {
			return "checked"
		}

		return fmt.Sprintf("called ${%d}", added)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", total)
	case AllIn:
		return fmt.Sprintf("is all in for ${%d}", total)
	}

	return ""
}
