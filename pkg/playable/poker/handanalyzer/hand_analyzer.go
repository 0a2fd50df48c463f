package handanalyzer

import (
	"errors"
	"fmt"

	"holdemsim/pkg/deck"
)

// ErrInvalidCardCount is an error when a hand has too few or too many cards
var ErrInvalidCardCount = errors.New("invalid number of cards")

// ErrDuplicateCard is an error when the same card appears twice
var ErrDuplicateCard = errors.New("duplicate card")

// ErrInvalidCard is an error when a card is outside the 52-card universe
var ErrInvalidCard = errors.New("invalid card")

// card count limits
const (
	handSize = 5
	maxCards = 7
)

// Result is the best five-card hand that can be made from a set of cards
type Result struct {
	Category Category  `json:"category"`
	Rank     HandRank  `json:"rank"`
	Cards    deck.Hand `json:"cards"`
}

// HandAnalyzer can analyze a hand
type HandAnalyzer struct {
	// cards sorted by rank, highest first
	cards  deck.Hand
	bySuit [4]deck.Hand
	byRank [deck.NumRanks]deck.Hand
	quads  []deck.Rank
	trips  []deck.Rank
	pairs  []deck.Rank

	result Result
}

// classifier returns the hand if the cards contain it
type classifier func(h *HandAnalyzer) (Result, bool)

// classifiers are evaluated strongest first, the first match is the best hand
// straightFlush also detects the royal flush, so it must stay ahead of flush and straight
var classifiers = []classifier{
	(*HandAnalyzer).straightFlush,
	(*HandAnalyzer).fourOfAKind,
	(*HandAnalyzer).fullHouse,
	(*HandAnalyzer).flush,
	(*HandAnalyzer).straight,
	(*HandAnalyzer).threeOfAKind,
	(*HandAnalyzer).twoPair,
	(*HandAnalyzer).onePair,
	(*HandAnalyzer).highCard,
}

// Evaluate returns the best five-card hand from 5 to 7 cards
func Evaluate(cards []deck.Card) (Result, error) {
	if len(cards) < handSize || len(cards) > maxCards {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidCardCount, len(cards))
	}

	h, err := New(cards)
	if err != nil {
		return Result{}, err
	}

	return h.result, nil
}

// New analyzes between 1 and 7 cards
// Fewer than five cards is allowed so a player's strength can be measured before
// all community cards are out. Such hands can only be made of pairs, trips and quads
func New(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) == 0 || len(cards) > maxCards {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCardCount, len(cards))
	}

	var seen [deck.Size]bool
	for _, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidCard, c)
		}

		if seen[c.Index()] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}

		seen[c.Index()] = true
	}

	// clone to prevent modifying original
	sorted := deck.Hand(cards).Clone()
	sorted.SortByRank()

	h := &HandAnalyzer{cards: sorted}
	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// analyzeHand groups the cards by suit and rank
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	for _, card := range h.cards {
		h.bySuit[card.Suit] = append(h.bySuit[card.Suit], card)
		h.byRank[card.Rank] = append(h.byRank[card.Rank], card)
	}

	for rank := deck.Ace; rank >= deck.Two; rank-- {
		switch len(h.byRank[rank]) {
		case 4:
			h.quads = append(h.quads, rank)
		case 3:
			h.trips = append(h.trips, rank)
		case 2:
			h.pairs = append(h.pairs, rank)
		}
	}
}

// calculateHand will determine the best hand
func (h *HandAnalyzer) calculateHand() {
	for _, classify := range classifiers {
		if result, ok := classify(h); ok {
			h.result = result
			return
		}
	}

	// highCard always matches
	panic("no classifier matched")
}

// GetCategory will return the best possible hand the cards can make
func (h *HandAnalyzer) GetCategory() Category {
	return h.result.Category
}

// GetRank returns the comparable rank of the best hand
func (h *HandAnalyzer) GetRank() HandRank {
	return h.result.Rank
}

// GetBestCards returns the cards making up the best hand
func (h *HandAnalyzer) GetBestCards() deck.Hand {
	return h.result.Cards.Clone()
}

// GetResult returns the full evaluation
func (h *HandAnalyzer) GetResult() Result {
	return h.result
}

// GetStrength returns the coarse strength signal used by bots
func (h *HandAnalyzer) GetStrength() int {
	return h.result.Rank.Score()
}

// GetFlush returns the suit with at least five cards, if any
// With at most seven cards only one suit can reach five
func (h *HandAnalyzer) GetFlush() (deck.Suit, bool) {
	for _, suit := range deck.Suits {
		if len(h.bySuit[suit]) >= handSize {
			return suit, true
		}
	}

	return 0, false
}

// GetStraight will return the high card of the best straight, if possible
func (h *HandAnalyzer) GetStraight() (deck.Rank, bool) {
	high, _, ok := findStraight(h.cards)
	return high, ok
}

func (h *HandAnalyzer) straightFlush() (Result, bool) {
	suit, ok := h.GetFlush()
	if !ok {
		return Result{}, false
	}

	high, run, ok := findStraight(h.bySuit[suit])
	if !ok {
		return Result{}, false
	}

	category := StraightFlush
	if high == deck.Ace {
		category = RoyalFlush
	}

	return newResult(category, high, noRank, run, nil), true
}

func (h *HandAnalyzer) fourOfAKind() (Result, bool) {
	if len(h.quads) == 0 {
		return Result{}, false
	}

	quad := h.quads[0]
	kickers := h.highestExcluding(1, quad)
	return newResult(FourOfAKind, quad, noRank, h.byRank[quad], kickers), true
}

func (h *HandAnalyzer) fullHouse() (Result, bool) {
	if len(h.trips) == 0 {
		return Result{}, false
	}

	trip := h.trips[0]

	// a second set of trips can fill the pair, take whichever is higher
	pair := noRank
	if len(h.pairs) > 0 {
		pair = h.pairs[0]
	}

	if len(h.trips) > 1 && h.trips[1] > pair {
		pair = h.trips[1]
	}

	if pair == noRank {
		return Result{}, false
	}

	cards := append(h.byRank[trip].Clone(), h.byRank[pair][:2]...)
	return newResult(FullHouse, trip, pair, cards, nil), true
}

func (h *HandAnalyzer) flush() (Result, bool) {
	suit, ok := h.GetFlush()
	if !ok {
		return Result{}, false
	}

	cards := h.bySuit[suit][:handSize]
	return newResult(Flush, cards[0].Rank, noRank, cards[:1], cards[1:]), true
}

func (h *HandAnalyzer) straight() (Result, bool) {
	high, run, ok := findStraight(h.cards)
	if !ok {
		return Result{}, false
	}

	return newResult(Straight, high, noRank, run, nil), true
}

func (h *HandAnalyzer) threeOfAKind() (Result, bool) {
	if len(h.trips) == 0 {
		return Result{}, false
	}

	trip := h.trips[0]
	return newResult(ThreeOfAKind, trip, noRank, h.byRank[trip], h.highestExcluding(2, trip)), true
}

func (h *HandAnalyzer) twoPair() (Result, bool) {
	if len(h.pairs) < 2 {
		return Result{}, false
	}

	high, low := h.pairs[0], h.pairs[1]
	cards := append(h.byRank[high].Clone(), h.byRank[low]...)
	return newResult(TwoPair, high, low, cards, h.highestExcluding(1, high, low)), true
}

func (h *HandAnalyzer) onePair() (Result, bool) {
	if len(h.pairs) == 0 {
		return Result{}, false
	}

	pair := h.pairs[0]
	return newResult(OnePair, pair, noRank, h.byRank[pair], h.highestExcluding(3, pair)), true
}

func (h *HandAnalyzer) highCard() (Result, bool) {
	n := handSize
	if len(h.cards) < n {
		n = len(h.cards)
	}

	cards := h.cards[:n]
	return newResult(HighCard, cards[0].Rank, noRank, cards[:1], cards[1:]), true
}

// highestExcluding returns up to n of the highest cards whose rank is not excluded
func (h *HandAnalyzer) highestExcluding(n int, exclude ...deck.Rank) deck.Hand {
	kickers := make(deck.Hand, 0, n)

CardLoop:
	for _, card := range h.cards {
		if len(kickers) == n {
			break
		}

		for _, rank := range exclude {
			if card.Rank == rank {
				continue CardLoop
			}
		}

		kickers = append(kickers, card)
	}

	return kickers
}

// newResult builds a result where made holds the cards forming the category
// and kickers holds the cards breaking ties, highest first
func newResult(category Category, primary, secondary deck.Rank, made, kickers deck.Hand) Result {
	cards := make(deck.Hand, 0, len(made)+len(kickers))
	cards = append(cards, made...)
	cards = append(cards, kickers...)

	kickerRanks := make([]deck.Rank, len(kickers))
	for i, k := range kickers {
		kickerRanks[i] = k.Rank
	}

	return Result{
		Category: category,
		Rank: HandRank{
			Category:  category,
			Primary:   primary,
			Secondary: secondary,
			Kickers:   kickerRanks,
		},
		Cards: cards,
	}
}
