package texasholdem

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdemsim/internal/rng"
	"holdemsim/pkg/playable"
	"holdemsim/pkg/playable/poker"
	"holdemsim/pkg/playable/poker/action"
)

type testParticipant struct {
	id         int
	tableStake int
}

func (t *testParticipant) GetPlayerID() int {
	return t.id
}

func (t *testParticipant) GetTableStake() int {
	return t.tableStake
}

func setupParticipants(tableStakes ...int) []playable.Player {
	p := make([]playable.Player, len(tableStakes))
	for i, ts := range tableStakes {
		p[i] = &testParticipant{
			id:         i,
			tableStake: ts,
		}
	}

	return p
}

func setupNewTable(t *testing.T, seed int64, tableStakes ...int) *Table {
	t.Helper()

	table, err := NewTable(logrus.StandardLogger(), setupParticipants(tableStakes...), DefaultOptions(), rng.New(seed))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return table
}

type step struct {
	act    action.Action
	amount int
	err    error
}

// scriptedActor plays the queued steps for each player and calls once a queue is empty
type scriptedActor struct {
	steps  map[int][]step
	states []poker.State
}

func newScriptedActor() *scriptedActor {
	return &scriptedActor{steps: make(map[int][]step)}
}

func (s *scriptedActor) queue(playerID int, steps ...step) {
	s.steps[playerID] = append(s.steps[playerID], steps...)
}

func (s *scriptedActor) RequestAction(_ context.Context, state poker.State) (action.Action, int, error) {
	s.states = append(s.states, state)

	queue := s.steps[state.PlayerID]
	if len(queue) == 0 {
		return action.Call, 0, nil
	}

	next := queue[0]
	s.steps[state.PlayerID] = queue[1:]
	return next.act, next.amount, next.err
}

// humanTable seats every player as a human driven by the returned actor
func humanTable(t *testing.T, tableStakes ...int) (*Table, *scriptedActor) {
	t.Helper()

	table := setupNewTable(t, 1, tableStakes...)
	actor := newScriptedActor()
	for i := range tableStakes {
		assert.NoError(t, table.SetHuman(i, actor))
	}

	return table, actor
}

func stacks(table *Table) map[int]int {
	s := make(map[int]int)
	for _, p := range table.all {
		s[p.PlayerID] = p.Stack
	}

	return s
}
