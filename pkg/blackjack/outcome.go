package blackjack

import "fmt"

// Outcome is how a player's bet is settled
type Outcome int

// Outcome constants
const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomeStandOff
	OutcomeSurrender
	OutcomeBlackjack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "Win"
	case OutcomeLose:
		return "Lose"
	case OutcomeStandOff:
		return "Stand-off"
	case OutcomeSurrender:
		return "Surrender"
	case OutcomeBlackjack:
		return "Blackjack"
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// Payout returns the amount credited back to a player who wagered pot
// Fractions are rounded down.
func (o Outcome) Payout(pot int) int {
	switch o {
	case OutcomeWin:
		return pot * 2
	case OutcomeLose:
		return 0
	case OutcomeStandOff:
		return pot
	case OutcomeSurrender:
		return pot / 2
	case OutcomeBlackjack:
		return pot * 5 / 2
	}

	panic(fmt.Sprintf("invalid outcome: %d", o))
}

// settleOutcome compares a player's standing hand against the dealer's final hand
func settleOutcome(player, dealer *Player) Outcome {
	playerNatural, dealerNatural := player.HasBlackjack(), dealer.HasBlackjack()
	switch {
	case playerNatural && dealerNatural:
		return OutcomeStandOff
	case playerNatural:
		return OutcomeBlackjack
	case dealerNatural:
		return OutcomeLose
	}

	playerTotal := player.HandTotal()
	if playerTotal > BlackjackTotal {
		return OutcomeLose
	}

	dealerTotal := dealer.HandTotal()
	switch {
	case dealerTotal > BlackjackTotal:
		return OutcomeWin
	case playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal < dealerTotal:
		return OutcomeLose
	}

	return OutcomeStandOff
}
