package blackjack

import (
	"testing"

	"blackjack/pkg/deck"
	"github.com/stretchr/testify/assert"
)

func TestHandTotal(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		cards string
		total int
		aces  int
	}{
		{"", 0, 0},
		{"2d,3d,4d", 9, 0},
		{"13s,12h,11c", 30, 0},
		{"14s,13s", 21, 1},
		{"14s,10h", 21, 1},
		{"14s,14h", 12, 2},
		{"14s,14h,9c", 21, 2},
		{"14s,14h,14c,14d", 14, 4},
		{"14s,6h,10c", 17, 1},
		{"14s,6h", 17, 1},
		{"14s,14h,10c,10d", 22, 2},
		{"7s,8h,9c", 24, 0},
	}

	for _, test := range tests {
		cards := deck.CardsFromString(test.cards)
		a.Equal(test.total, handTotal(cards), test.cards)
		a.Equal(test.aces, aceCount(cards), test.cards)
	}
}

func TestHandTotal_idempotent(t *testing.T) {
	p := playerWithHand(10, "14s,14h,9c")
	first := p.HandTotal()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.HandTotal())
	}

	assert.Equal(t, "14s,14h,9c", p.Hand().String())
}

// bestTotal tries every way of counting the aces low and keeps the best
func bestTotal(nonAces int, aces int) int {
	best := -1
	lowest := nonAces + aces
	for low := 0; low <= aces; low++ {
		total := nonAces + (aces-low)*deck.AceValue + low
		if total <= BlackjackTotal && total > best {
			best = total
		}
	}

	if best < 0 {
		return lowest
	}

	return best
}

func TestHandTotal_exhaustiveAces(t *testing.T) {
	a := assert.New(t)

	for aces := 0; aces <= 11; aces++ {
		for _, nonAces := range []string{"", "2c", "5c", "9c", "10c", "2c,3c", "5c,5d", "6c,13d", "10c,10d", "9c,9d,9h"} {
			cards := deck.CardsFromString(nonAces)
			sum := 0
			for _, c := range cards {
				sum += c.Value()
			}

			for i := 0; i < aces; i++ {
				cards = append(cards, deck.NewCard(deck.Ace, deck.Suits[i%4]))
			}

			a.Equal(bestTotal(sum, aces), handTotal(cards), "%d aces with %q", aces, nonAces)
		}
	}
}

func TestIsBlackjack(t *testing.T) {
	a := assert.New(t)

	a.True(isBlackjack(deck.CardsFromString("14s,13h")))
	a.True(isBlackjack(deck.CardsFromString("10c,14d")))
	a.False(isBlackjack(deck.CardsFromString("14s,9h")))
	a.False(isBlackjack(deck.CardsFromString("14s,14h,9c")))
	a.False(isBlackjack(deck.CardsFromString("7s,7h,7c")))
	a.False(isBlackjack(nil))
}
