package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Payout(t *testing.T) {
	a := assert.New(t)

	a.Equal(20, OutcomeWin.Payout(10))
	a.Equal(0, OutcomeLose.Payout(10))
	a.Equal(10, OutcomeStandOff.Payout(10))
	a.Equal(5, OutcomeSurrender.Payout(10))
	a.Equal(2, OutcomeSurrender.Payout(5))
	a.Equal(25, OutcomeBlackjack.Payout(10))
	a.Equal(17, OutcomeBlackjack.Payout(7))
	a.Equal(50, OutcomeBlackjack.Payout(20))

	a.PanicsWithValue("invalid outcome: 9", func() {
		_ = Outcome(9).Payout(10)
	})
}

func TestOutcome_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Win", OutcomeWin.String())
	a.Equal("Lose", OutcomeLose.String())
	a.Equal("Stand-off", OutcomeStandOff.String())
	a.Equal("Surrender", OutcomeSurrender.String())
	a.Equal("Blackjack", OutcomeBlackjack.String())

	a.PanicsWithValue("invalid outcome: -1", func() {
		_ = Outcome(-1).String()
	})
}

func dealerWithHand(cards string) *Player {
	d := playerWithHand(0, cards)
	d.Number = 0
	return d
}

func Test_settleOutcome(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		player, dealer string
		outcome        Outcome
	}{
		{"14s,13s", "14h,12h", OutcomeStandOff},
		{"14s,13s", "10h,9h,2c", OutcomeBlackjack},
		{"10s,9s,2c", "14h,12h", OutcomeLose},
		{"10s,9s", "10h,6h,8c", OutcomeWin},
		{"10s,9s", "10h,7h", OutcomeWin},
		{"10s,7s", "10h,9h", OutcomeLose},
		{"10s,8s", "10h,8h", OutcomeStandOff},
		{"10s,8s,5c", "10h,8h", OutcomeLose},
		{"10s,8s,5c", "10h,8h,6d", OutcomeLose},
	}

	for _, test := range tests {
		outcome := settleOutcome(playerWithHand(10, test.player), dealerWithHand(test.dealer))
		a.Equal(test.outcome, outcome, "%s vs %s", test.player, test.dealer)
	}
}
