package blackjack

import (
	"errors"
	"fmt"
)

// ErrInsufficientChips is returned when a bet exceeds the player's chips
var ErrInsufficientChips = errors.New("not enough chips")

// ErrNotABettor is returned when a betting operation is attempted on the dealer
var ErrNotABettor = errors.New("the dealer does not bet")

// ErrNoActiveBet is returned when a bet is resolved or doubled with nothing wagered
var ErrNoActiveBet = errors.New("no active bet")

// ErrInvalidBet is returned when a bet is not at least one chip
var ErrInvalidBet = errors.New("bet must be at least 1 chip")

// ErrIllegalAction is returned when a controller picks an action that is not a valid move
var ErrIllegalAction = errors.New("illegal action")

// ErrTooManyBetAttempts is returned when a controller keeps offering bets that cannot be placed
var ErrTooManyBetAttempts = errors.New("too many rejected bets")

// PlayerCountError is an error on the number of players at the table
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d-%d players, got %d", p.Min, p.Max, p.Got)
}
