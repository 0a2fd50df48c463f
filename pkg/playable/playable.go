package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"holdemsim/pkg/deck"
)

// LogMessage is the format a game should send log messages in
// If PlayerIDs is empty, assume it's a general statement, otherwise the message will be shown like "{player} did X, Y, Z"
type LogMessage struct {
	UUID      string    `json:"uuid"`
	PlayerIDs []int     `json:"playerIds"`
	Cards     deck.Hand `json:"cards"`
	Message   string    `json:"message"`
	Time      time.Time `json:"time"`
}

// Observer receives log messages as a game progresses
type Observer interface {
	Log(messages []*LogMessage)
}

// ObserverFunc is an adapter to allow the use of an ordinary function as an Observer
type ObserverFunc func(messages []*LogMessage)

// Log calls f(messages)
func (f ObserverFunc) Log(messages []*LogMessage) {
	f(messages)
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	BalanceAdjustments map[int]int `json:"balanceAdjustments"`
	Log                interface{} `json:"log"`
}

// SimpleLogMessage returns a new LogMessage
// A negative playerID makes it a general statement
func SimpleLogMessage(playerID int, format string, a ...interface{}) *LogMessage {
	var playerIDs []int
	if playerID >= 0 {
		playerIDs = []int{playerID}
	}

	return &LogMessage{
		UUID:      uuid.New().String(),
		PlayerIDs: playerIDs,
		Message:   fmt.Sprintf(format, a...),
		Time:      time.Now(),
	}
}

// SimpleLogMessageSlice returns a single log message
func SimpleLogMessageSlice(playerID int, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(playerID, format, a...)}
}

// CardsLogMessage returns a general log message showing cards
func CardsLogMessage(cards deck.Hand, format string, a ...interface{}) *LogMessage {
	lm := SimpleLogMessage(-1, format, a...)
	lm.Cards = cards.Clone()
	return lm
}
