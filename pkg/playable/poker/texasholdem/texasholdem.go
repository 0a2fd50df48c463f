package texasholdem

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"holdemsim/internal/rng"
	"holdemsim/pkg/playable"
	"holdemsim/pkg/playable/poker/betting"
	"holdemsim/pkg/playable/poker/bot"
)

// ErrNotEnoughPlayers is an error when fewer than two players can be dealt in
var ErrNotEnoughPlayers = errors.New("there must be at least two players")

// ErrGameOver is an error when a hand is requested after at most one player can still cover the big blind
var ErrGameOver = errors.New("game is over")

// ErrUnknownPlayer is an error when a player is not seated at the table
var ErrUnknownPlayer = errors.New("player is not seated")

// maxPlayers keeps 5 + 2 per player within a single deck
const maxPlayers = 10

// Options configures how Texas Hold'em is played
type Options struct {
	SmallBlind int
	BigBlind   int
	// MaxInvalidActions is how many invalid decisions a human may make in a row before being folded
	MaxInvalidActions int
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind:        100,
		BigBlind:          200,
		MaxInvalidActions: 3,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.MaxInvalidActions < 0 {
		return errors.New("max invalid actions must be >= 0")
	}

	return nil
}

// Table is a multi-hand session of no-limit Texas Hold'em
type Table struct {
	logger  logrus.FieldLogger
	options Options
	random  rng.Source
	policy  *bot.Policy
	sizer   betting.BetSizer

	// participants in seating order, including removed participants until the next compaction
	participants []*Participant
	// everyone who ever sat down, for the end of game details
	all      []*Participant
	buttonID int

	handNumber int
	humans     map[int]HumanActor
	observer   playable.Observer
}

// NewTable seats the players in the order given
// The first player starts with the button
func NewTable(logger logrus.FieldLogger, players []playable.Player, opts Options, random rng.Source) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if len(players) > maxPlayers {
		return nil, fmt.Errorf("there can be at most %d players", maxPlayers)
	}

	participants := make([]*Participant, 0, len(players))
	seen := make(map[int]bool)
	for _, p := range players {
		if seen[p.GetPlayerID()] {
			return nil, fmt.Errorf("player %d is seated twice", p.GetPlayerID())
		}

		if p.GetTableStake() <= 0 {
			return nil, fmt.Errorf("player %d must sit down with chips", p.GetPlayerID())
		}

		seen[p.GetPlayerID()] = true
		participants = append(participants, newParticipant(p))
	}

	policy := bot.DefaultPolicy()

	all := make([]*Participant, len(participants))
	copy(all, participants)

	return &Table{
		logger:       logger,
		options:      opts,
		random:       random,
		policy:       policy,
		sizer:        policy.Size,
		participants: participants,
		all:          all,
		buttonID:     participants[0].PlayerID,
		humans:       make(map[int]HumanActor),
		observer:     playable.ObserverFunc(func([]*playable.LogMessage) {}),
	}, nil
}

// SetPolicy replaces the bot policy and uses its bet sizing
func (t *Table) SetPolicy(policy *bot.Policy) {
	t.policy = policy
	t.sizer = policy.Size
}

// SetBetSizer replaces how bots size their raises
func (t *Table) SetBetSizer(sizer betting.BetSizer) {
	t.sizer = sizer
}

// SetHuman hands the decisions for a player to actor
func (t *Table) SetHuman(playerID int, actor HumanActor) error {
	if _, ok := t.participant(playerID); !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, playerID)
	}

	t.humans[playerID] = actor
	return nil
}

// SetObserver sets where log messages are sent
func (t *Table) SetObserver(observer playable.Observer) {
	t.observer = observer
}

// Participants returns the participants still seated, in seating order
func (t *Table) Participants() []*Participant {
	seated := make([]*Participant, 0, len(t.participants))
	for _, p := range t.participants {
		if !p.Removed {
			seated = append(seated, p)
		}
	}

	return seated
}

// ButtonID returns the player who has the button for the next hand
func (t *Table) ButtonID() int {
	return t.buttonID
}

// HandNumber returns the number of hands dealt
func (t *Table) HandNumber() int {
	return t.handNumber
}

// RemoveParticipant takes a player out of future hands
// The seat is compacted away before the next hand is dealt
func (t *Table) RemoveParticipant(playerID int) error {
	p, ok := t.participant(playerID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, playerID)
	}

	p.Removed = true
	delete(t.humans, playerID)
	return nil
}

// IsGameOver returns true once at most one player can still cover the big blind
func (t *Table) IsGameOver() bool {
	canPlay := 0
	for _, p := range t.participants {
		if !p.Removed && p.Stack >= t.options.BigBlind {
			canPlay++
		}
	}

	return canPlay <= 1
}

// GetEndOfGameDetails returns the details after a game is over
// If the game is still in progress, nil will be returned and the second param will be false
func (t *Table) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !t.IsGameOver() {
		return nil, false
	}

	adjustments := make(map[int]int, len(t.all))
	for _, p := range t.all {
		adjustments[p.PlayerID] = p.Net()
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                t.all,
	}, true
}

// PlayHand deals and plays one hand to completion
// Stacks are only updated once the hand finishes, so an error leaves every stack as it was
func (t *Table) PlayHand(ctx context.Context) (*HandResult, error) {
	t.compact()

	if len(t.participants) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if t.IsGameOver() {
		return nil, ErrGameOver
	}

	h, err := t.newHand(t.handNumber + 1)
	if err != nil {
		return nil, err
	}

	t.handNumber++

	if err := h.play(ctx); err != nil {
		return nil, err
	}

	t.finishHand(h)
	return h.result, nil
}

// Run plays hands until the game is over, maxHands have been played or between returns false
// A maxHands of 0 or less means no limit. between is called after each hand and may be nil
func (t *Table) Run(ctx context.Context, maxHands int, between func(*HandResult) bool) error {
	for played := 0; maxHands <= 0 || played < maxHands; played++ {
		if t.IsGameOver() {
			return nil
		}

		result, err := t.PlayHand(ctx)
		if err != nil {
			return err
		}

		if between != nil && !between(result) {
			return nil
		}
	}

	return nil
}

// finishHand pays out the hand, busts empty stacks and moves the button
func (t *Table) finishHand(h *hand) {
	h.result.Stacks = make(map[int]int, len(h.order))
	for i, p := range h.order {
		p.Stack = h.seats[i].Stack + h.result.Settlement.Payouts[p.PlayerID]
		h.result.Stacks[p.PlayerID] = p.Stack
	}

	for _, p := range t.participants {
		if p.Stack == 0 && !p.Removed {
			p.Removed = true
			h.result.Busted = append(h.result.Busted, p.PlayerID)
			h.logger.WithField("player", p.PlayerID).Info("player busted")
			t.observer.Log(playable.SimpleLogMessageSlice(p.PlayerID, "is out of chips"))
		}
	}

	t.advanceButton()
}

// advanceButton moves the button one seat to the left, skipping removed participants
func (t *Table) advanceButton() {
	n := len(t.participants)
	start := t.indexOf(t.buttonID)
	for i := 1; i <= n; i++ {
		p := t.participants[(start+i)%n]
		if !p.Removed {
			t.buttonID = p.PlayerID
			return
		}
	}
}

// compact drops removed participants
// This is only called between hands so no hand ever sees the seating change
func (t *Table) compact() {
	n := len(t.participants)
	start := t.indexOf(t.buttonID)
	for i := 0; i < n; i++ {
		p := t.participants[(start+i)%n]
		if !p.Removed {
			t.buttonID = p.PlayerID
			break
		}
	}

	seated := make([]*Participant, 0, n)
	for _, p := range t.participants {
		if !p.Removed {
			seated = append(seated, p)
		}
	}

	t.participants = seated
}

func (t *Table) participant(playerID int) (*Participant, bool) {
	for _, p := range t.participants {
		if p.PlayerID == playerID {
			return p, true
		}
	}

	return nil, false
}

func (t *Table) indexOf(playerID int) int {
	for i, p := range t.participants {
		if p.PlayerID == playerID {
			return i
		}
	}

	return 0
}
