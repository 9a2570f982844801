package blackjack

import "blackjack/pkg/deck"

// BlackjackTotal is the best possible hand total
const BlackjackTotal = 21

// aceCount returns how many aces are in the cards
func aceCount(cards []*deck.Card) int {
	count := 0
	for _, card := range cards {
		if card.Value() == deck.AceValue {
			count++
		}
	}

	return count
}

// handTotal returns the best total of the cards.
// Aces start at 11 and are counted as 1, one at a time, only while the total is over 21.
func handTotal(cards []*deck.Card) int {
	total := 0
	for _, card := range cards {
		total += card.Value()
	}

	for aces := aceCount(cards); total > BlackjackTotal && aces > 0; aces-- {
		total -= deck.AceValue - 1
	}

	return total
}

// isBlackjack returns true for a two card 21
func isBlackjack(cards []*deck.Card) bool {
	return len(cards) == 2 && handTotal(cards) == BlackjackTotal
}
