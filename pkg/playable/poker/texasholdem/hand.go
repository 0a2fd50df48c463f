package texasholdem

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable"
	"holdemsim/pkg/playable/poker"
	"holdemsim/pkg/playable/poker/action"
	"holdemsim/pkg/playable/poker/betting"
	"holdemsim/pkg/playable/poker/handanalyzer"
	"holdemsim/pkg/playable/poker/potmanager"
)

// hand is a single deal, owned by the table until it finishes
type hand struct {
	table  *Table
	logger logrus.FieldLogger
	result *HandResult

	dealerState DealerState
	// order and seats are in turn order: the seat after the big blind first, the blinds last
	order []*Participant
	seats []*betting.Seat
	// payOrder starts with the seat after the button and decides who gets odd chips
	payOrder []int

	board     deck.Hand
	community deck.Hand
	holeCards map[int]deck.Hand
}

func (t *Table) newHand(number int) (*hand, error) {
	n := len(t.participants)
	button := t.indexOf(t.buttonID)

	byOffset := func(offset int) *Participant {
		return t.participants[(button+offset)%n]
	}

	h := &hand{
		table:       t,
		dealerState: DealerStateStart,
		order:       make([]*Participant, n),
		seats:       make([]*betting.Seat, n),
		payOrder:    make([]int, n),
		result: &HandResult{
			ID:           uuid.New().String(),
			Number:       number,
			ButtonID:     t.buttonID,
			SmallBlindID: byOffset(1).PlayerID,
			BigBlindID:   byOffset(2).PlayerID,
		},
	}

	for i := 0; i < n; i++ {
		p := byOffset(3 + i)
		h.order[i] = p
		h.seats[i] = betting.NewSeat(p.PlayerID, p.Stack)
		h.payOrder[i] = byOffset(1 + i).PlayerID
	}

	h.logger = t.logger.WithFields(logrus.Fields{
		"hand":   h.result.ID,
		"number": number,
	})

	board, holeCards, err := deck.DealHand(h.payOrder, t.random)
	if err != nil {
		return nil, fmt.Errorf("could not deal hand %d: %w", number, err)
	}

	h.board = board
	h.holeCards = holeCards
	h.community = make(deck.Hand, 0, len(board))
	h.result.HoleCards = holeCards

	return h, nil
}

// play runs every street until the hand is decided
func (h *hand) play(ctx context.Context) error {
	t := h.table
	h.logger.WithFields(logrus.Fields{
		"button":     h.result.ButtonID,
		"smallBlind": h.result.SmallBlindID,
		"bigBlind":   h.result.BigBlindID,
	}).Info("starting hand")
	t.observer.Log([]*playable.LogMessage{
		playable.SimpleLogMessage(-1, "hand #%d", h.result.Number),
		playable.SimpleLogMessage(h.result.ButtonID, "has the button"),
		playable.SimpleLogMessage(h.result.SmallBlindID, "owes the small blind of ${%d}", t.options.SmallBlind),
		playable.SimpleLogMessage(h.result.BigBlindID, "owes the big blind of ${%d}", t.options.BigBlind),
	})

	for h.dealerState = DealerStatePreFlopBettingRound; h.dealerState.InBettingRound(); h.dealerState++ {
		h.reveal(h.dealerState.CommunityCardsShown())

		var round *betting.Round
		if h.dealerState == DealerStatePreFlopBettingRound {
			round = betting.NewPreFlopRound(h.seats, h.result.SmallBlindID, h.result.BigBlindID, t.options.SmallBlind, t.options.BigBlind)
		} else {
			round = betting.NewRound(h.seats, t.options.BigBlind)
		}

		status, err := h.bettingRound(ctx, round)
		if err != nil {
			return err
		}

		switch status {
		case betting.Uncontested:
			return h.uncontested()
		case betting.Showdown:
			return h.showdown()
		}
	}

	return h.showdown()
}

// reveal turns community cards face up until shown are visible
func (h *hand) reveal(shown int) {
	if shown <= len(h.community) {
		return
	}

	h.community = append(h.community, h.board[len(h.community):shown]...)
	h.result.Community = h.community.Clone()

	street := "board"
	if h.dealerState.InBettingRound() {
		street = h.dealerState.Street()
	}

	h.logger.WithFields(logrus.Fields{
		"street":    street,
		"community": h.community.String(),
	}).Debug("community cards")
	h.table.observer.Log([]*playable.LogMessage{playable.CardsLogMessage(h.community, "%s", street)})
}

// bettingRound asks seats to act until the round is no longer in progress
func (h *hand) bettingRound(ctx context.Context, round *betting.Round) (betting.Status, error) {
	for {
		seat, status := round.Next()
		if status != betting.InProgress {
			h.logger.WithFields(logrus.Fields{
				"street": h.dealerState.Street(),
				"status": status.String(),
			}).Debug("betting round finished")
			return status, nil
		}

		act, amount, err := h.decide(ctx, round, seat)
		if err != nil {
			return status, err
		}

		result, err := round.Apply(seat.ID, act, amount)
		if err != nil {
			// decide only returns valid actions for the seat on the clock
			return status, fmt.Errorf("could not apply %s for player %d: %w", act, seat.ID, err)
		}

		h.recordAction(result)
	}
}

// decide gets an action from the human actor or the bot policy
func (h *hand) decide(ctx context.Context, round *betting.Round, seat *betting.Seat) (action.Action, int, error) {
	t := h.table

	if human, ok := t.humans[seat.ID]; ok {
		return h.askHuman(ctx, human, round, seat)
	}

	act, err := t.policy.Decide(h.holeCards[seat.ID], h.community, t.random)
	if err != nil {
		return "", 0, err
	}

	// folding for free makes no sense, check instead
	if act == action.Fold && seat.Contributed >= round.AmountToCall() {
		act = action.Call
	}

	amount := 0
	if act == action.Raise {
		amount = t.sizer(seat.Stack, round.AmountToCall(), round.BigBlind(), t.random)
	}

	return act, amount, nil
}

// askHuman re-requests until the human picks a valid action
// After too many invalid actions in a row the human folds
func (h *hand) askHuman(ctx context.Context, human HumanActor, round *betting.Round, seat *betting.Seat) (action.Action, int, error) {
	t := h.table
	state := h.state(round, seat)

	for attempt := 0; attempt <= t.options.MaxInvalidActions; attempt++ {
		act, amount, err := human.RequestAction(ctx, state)
		if err != nil {
			return "", 0, err
		}

		if act.IsValid() && amount >= 0 {
			return act, amount, nil
		}

		h.logger.WithFields(logrus.Fields{
			"player": seat.ID,
			"action": string(act),
			"amount": amount,
		}).Warn("invalid action")
		t.observer.Log(playable.SimpleLogMessageSlice(seat.ID, "chose an invalid action"))
	}

	return action.Fold, 0, nil
}

// state is the view a human is given when on the clock
func (h *hand) state(round *betting.Round, seat *betting.Seat) poker.State {
	pots, _ := potmanager.BuildPots(h.contributions())

	return poker.State{
		HandID:       h.result.ID,
		PlayerID:     seat.ID,
		Street:       h.dealerState.Street(),
		BigBlind:     round.BigBlind(),
		AmountToCall: round.AmountToCall(),
		Contributed:  seat.Contributed,
		Stack:        seat.Stack,
		Pots:         pots,
		Community:    h.community.Clone(),
		HoleCards:    h.holeCards[seat.ID].Clone(),
	}
}

func (h *hand) recordAction(result *betting.Result) {
	event := ActionEvent{
		Street:       h.dealerState.Street(),
		PlayerID:     result.SeatID,
		Action:       result.Action,
		Requested:    result.Requested,
		Added:        result.Added,
		Contributed:  result.Contributed,
		AmountToCall: result.AmountToCall,
		Decision:     result.Decision,
	}

	h.result.Actions = append(h.result.Actions, event)

	h.logger.WithFields(logrus.Fields{
		"street": event.Street,
		"player": event.PlayerID,
		"action": string(event.Action),
		"amount": event.Added,
	}).Debug("action")
	h.table.observer.Log(playable.SimpleLogMessageSlice(event.PlayerID, "%s", event.Action.LogMessage(event.Added, event.Contributed)))
}

// contributions lists every seat's stake in the hand, starting left of the button
func (h *hand) contributions() []potmanager.Contribution {
	byID := make(map[int]*betting.Seat, len(h.seats))
	for _, s := range h.seats {
		byID[s.ID] = s
	}

	contributions := make([]potmanager.Contribution, len(h.payOrder))
	for i, id := range h.payOrder {
		s := byID[id]
		contributions[i] = potmanager.Contribution{
			ID:     id,
			Amount: s.Total,
			Folded: !s.InHand(),
		}
	}

	return contributions
}

// uncontested awards everything to the last player standing without a showdown
func (h *hand) uncontested() error {
	h.result.Uncontested = true

	// only the remaining player is eligible for any pot
	settlement, err := potmanager.Settle(h.contributions(), func(eligible []int) []int {
		return eligible
	})
	if err != nil {
		return err
	}

	return h.settled(settlement)
}

// showdown runs out the board and pays each pot to its best hands
func (h *hand) showdown() error {
	h.dealerState = DealerStateRevealWinner
	h.reveal(len(h.board))

	wm := potmanager.NewWinManager()
	for _, id := range h.payOrder {
		seat := h.seat(id)
		if !seat.InHand() {
			continue
		}

		hole := h.holeCards[id]
		cards := make(deck.Hand, 0, len(hole)+len(h.community))
		cards = append(cards, hole...)
		cards = append(cards, h.community...)

		best, err := handanalyzer.Evaluate(cards)
		if err != nil {
			return fmt.Errorf("could not evaluate hand for player %d: %w", id, err)
		}

		wm.AddParticipant(id, best.Rank)
		h.result.Showdown = append(h.result.Showdown, ShowdownEntry{
			PlayerID:  id,
			HoleCards: hole.Clone(),
			BestCards: best.Cards,
			Category:  best.Category,
			Rank:      best.Rank,
		})

		h.logger.WithFields(logrus.Fields{
			"player": id,
			"hand":   best.Category.String(),
		}).Debug("showdown")

		lm := playable.SimpleLogMessage(id, "shows %s", best.Category)
		lm.Cards = best.Cards
		h.table.observer.Log([]*playable.LogMessage{lm})
	}

	settlement, err := potmanager.Settle(h.contributions(), wm.Winners)
	if err != nil {
		return err
	}

	return h.settled(settlement)
}

func (h *hand) settled(settlement *potmanager.Settlement) error {
	h.dealerState = DealerStateEnd
	h.result.Settlement = settlement

	messages := make([]*playable.LogMessage, 0, len(h.payOrder))
	for _, id := range h.payOrder {
		won := settlement.Won(id)
		if won == 0 {
			continue
		}

		h.result.Winners = append(h.result.Winners, id)
		h.logger.WithFields(logrus.Fields{
			"player": id,
			"amount": won,
		}).Info("won pot")
		messages = append(messages, playable.SimpleLogMessage(id, "won ${%d}", won))
	}

	for _, refund := range settlement.Refunds {
		messages = append(messages, playable.SimpleLogMessage(refund.ID, "takes back an uncalled ${%d}", refund.Amount))
	}

	h.table.observer.Log(messages)
	return nil
}

func (h *hand) seat(id int) *betting.Seat {
	for _, s := range h.seats {
		if s.ID == id {
			return s
		}
	}

	panic(fmt.Sprintf("player %d has no seat", id))
}
