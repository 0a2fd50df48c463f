package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"holdemsim/internal/rng"
)

// ErrExhaustedDeck is an error when more cards are requested than remain in the deck
var ErrExhaustedDeck = errors.New("exhausted deck")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle rebuilds the full deck and shuffles it with the provided generator
// The same generator state always produces the same order
func (d *Deck) Shuffle(r rng.Generator) {
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := r.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrExhaustedDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrExhaustedDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal draws n cards without replacement
// If fewer than n cards remain, nothing is drawn and ErrExhaustedDeck is returned
func (d *Deck) Deal(n int) (Hand, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, fmt.Errorf("deal %d of %d: %w", n, len(d.Cards), ErrExhaustedDeck)
	}

	hand := make(Hand, n)
	copy(hand, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// DealHand shuffles a fresh deck and deals the five community cards plus two hole cards per player
// Community cards are dealt up front and revealed street by street by the caller
func DealHand(playerIDs []int, r rng.Generator) (community Hand, holeCards map[int]Hand, err error) {
	d := New()
	d.Shuffle(r)

	community, err = d.Deal(5)
	if err != nil {
		return nil, nil, err
	}

	holeCards = make(map[int]Hand, len(playerIDs))
	for _, id := range playerIDs {
		if _, ok := holeCards[id]; ok {
			return nil, nil, fmt.Errorf("player %d dealt twice", id)
		}

		cards, err := d.Deal(2)
		if err != nil {
			return nil, nil, err
		}

		holeCards[id] = cards
	}

	return community, holeCards, nil
}
