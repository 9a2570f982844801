package blackjack

// Options are options for a blackjack session
type Options struct {
	DealerStandsOn int // Default: 17, the dealer draws below this total
	MaxBetAttempts int // Default: 3, rejected bets allowed per player per round
	MaxRounds      int // Default: 0, no limit
}

// DefaultOptions returns the default options for a blackjack session
func DefaultOptions() Options {
	return Options{
		DealerStandsOn: 17,
		MaxBetAttempts: 3,
		MaxRounds:      0,
	}
}
