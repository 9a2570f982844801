package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"blackjack/internal/rng"
)

// ErrDeckExhausted is returned when more cards are dealt than remain in the deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a playing deck
// The top of the deck is the end of Cards; dealing pops from there.
type Deck struct {
	Cards []*Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards.
// Cards are laid out suit-major (Spades, Clubs, Hearts, Diamonds), then Ace, King, Queen, Jack, 10 down to 2.
func New() *Deck {
	d := &Deck{}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := Ace; rank >= 2; rank-- {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the remaining cards in place
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal removes the top n cards and returns them in the order they came off the deck.
// If fewer than n cards remain, nothing is removed and ErrDeckExhausted is returned.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot deal %d cards", n)
	}

	if !d.CanDraw(n) {
		return nil, fmt.Errorf("%w: wanted %d, %d left", ErrDeckExhausted, n, len(d.Cards))
	}

	cards := make([]*Card, n)
	for i := 0; i < n; i++ {
		last := len(d.Cards) - 1
		cards[i] = d.Cards[last]
		d.Cards[last] = nil
		d.Cards = d.Cards[:last]
	}

	return cards, nil
}

// Draw will draw the next card
// If there are no more cards, ErrDeckExhausted is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	cards, err := d.Deal(1)
	if err != nil {
		return nil, err
	}

	return cards[0], nil
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
