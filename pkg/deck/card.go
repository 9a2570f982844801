package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Spades   Suit = "Spades"
	Clubs    Suit = "Clubs"
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
)

// Suits is the order suits are laid out in a new deck
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// AceValue is the blackjack value of an ace before it is counted low
const AceValue = 11

// Card is an individual playing card
// The rank determines both the label and the numeric value, so the two can never diverge.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card. It panics if the rank is outside of 2..14
func NewCard(rank int, suit Suit) *Card {
	if rank < 2 || rank > Ace {
		panic(fmt.Sprintf("invalid rank: %d", rank))
	}

	return &Card{Rank: rank, Suit: suit}
}

// Label returns the rank label, e.g. "Ace", "King" or "10"
func (c *Card) Label() string {
	switch c.Rank {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}

	return strconv.Itoa(c.Rank)
}

// Value returns the blackjack value of the card.
// Aces are worth 11, face cards 10 and number cards their number.
func (c *Card) Value() int {
	switch {
	case c.Rank == Ace:
		return AceValue
	case c.Rank >= Jack:
		return 10
	}

	return c.Rank
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

func (c *Card) String() string {
	return fmt.Sprintf("%s of %s", c.Label(), c.Suit)
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
