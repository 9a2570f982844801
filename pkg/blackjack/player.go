package blackjack

import (
	"fmt"

	"blackjack/pkg/deck"
)

// bettor is the chip-holding role of a participant. The dealer has none.
type bettor struct {
	chips int
	pot   int
}

// Player is a seat at the table, either a participant or the dealer
type Player struct {
	Number int

	hand   deck.Hand
	bettor *bettor
}

// NewPlayer returns a new player with startingChips
// If startingChips is zero, the player is the dealer and cannot bet.
func NewPlayer(startingChips int, number int) *Player {
	if startingChips <= 0 {
		return &Player{Number: number}
	}

	return newParticipant(startingChips, number)
}

// NewDealer returns a player in the dealer role
func NewDealer() *Player {
	return NewPlayer(0, 0)
}

func newParticipant(chips int, number int) *Player {
	return &Player{
		Number: number,
		bettor: &bettor{chips: chips},
	}
}

// IsDealer returns true if the player has no betting role
func (p *Player) IsDealer() bool {
	return p.bettor == nil
}

// Label returns a display name
func (p *Player) Label() string {
	if p.IsDealer() {
		return "Dealer"
	}

	return fmt.Sprintf("Player %d", p.Number)
}

func (p *Player) String() string {
	return p.Label()
}

// Chips returns the player's chips. The dealer always has zero.
func (p *Player) Chips() int {
	if p.bettor == nil {
		return 0
	}

	return p.bettor.chips
}

// Pot returns the player's wager for the current round
func (p *Player) Pot() int {
	if p.bettor == nil {
		return 0
	}

	return p.bettor.pot
}

// IsBroke returns true if a participant has no chips left
func (p *Player) IsBroke() bool {
	return p.bettor != nil && p.bettor.chips == 0
}

// IsInPot returns true if the player has an unresolved wager
func (p *Player) IsInPot() bool {
	return p.bettor != nil && p.bettor.pot > 0
}

// GetCards deals n cards from the deck into the player's hand
func (p *Player) GetCards(d *deck.Deck, n int) error {
	cards, err := d.Deal(n)
	if err != nil {
		return err
	}

	p.hand.AddCards(cards)
	return nil
}

// Hand returns a shallow copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// LatestCard returns the most recently dealt card, or nil for an empty hand
func (p *Player) LatestCard() *deck.Card {
	return p.hand.LastCard()
}

// ClearHand removes all cards from the player's hand
func (p *Player) ClearHand() {
	p.hand = nil
}

// AceCount returns the number of aces in the hand
func (p *Player) AceCount() int {
	return aceCount(p.hand)
}

// HandTotal returns the best total of the hand
func (p *Player) HandTotal() int {
	return handTotal(p.hand)
}

// HasBlackjack returns true if the hand is a two card 21
func (p *Player) HasBlackjack() bool {
	return isBlackjack(p.hand)
}

// IsBusted returns true if the hand total is over 21
func (p *Player) IsBusted() bool {
	return p.HandTotal() > BlackjackTotal
}

// ValidMoves returns the actions the player may take.
// Double down and surrender need a wager in the pot, so a hand with no wager (or the dealer's)
// only gets hit and stand, even on its first two cards.
// Asking for the moves of a busted hand is a programming error and panics.
func (p *Player) ValidMoves() []Action {
	total := p.HandTotal()
	if total > BlackjackTotal {
		panic(fmt.Sprintf("%s has busted with %d and has no moves", p.Label(), total))
	}

	moves := []Action{ActionHit, ActionStand}
	if len(p.hand) != 2 || !p.IsInPot() {
		return moves
	}

	if total >= 9 && total <= 11 && p.bettor.chips >= p.bettor.pot {
		moves = append(moves, ActionDoubleDown)
	}

	return append(moves, ActionSurrender)
}

func (p *Player) bettorRole() (*bettor, error) {
	if p.bettor == nil {
		return nil, ErrNotABettor
	}

	return p.bettor, nil
}

// Bet moves amount from the player's chips into their pot
func (p *Player) Bet(amount int) (int, error) {
	b, err := p.bettorRole()
	if err != nil {
		return 0, err
	}

	if amount <= 0 {
		return 0, ErrInvalidBet
	}

	if amount > b.chips {
		return 0, fmt.Errorf("%w: cannot bet %d with %d", ErrInsufficientChips, amount, b.chips)
	}

	b.chips -= amount
	b.pot += amount
	return amount, nil
}

// DoubleDown bets again an amount equal to the current pot
// It should only be called when ActionDoubleDown is a valid move.
func (p *Player) DoubleDown() (int, error) {
	b, err := p.bettorRole()
	if err != nil {
		return 0, err
	}

	if b.pot == 0 {
		return 0, ErrNoActiveBet
	}

	return p.Bet(b.pot)
}

// ResolveBet credits the player's chips according to the outcome and empties the pot.
// It returns the amount credited.
func (p *Player) ResolveBet(outcome Outcome) (int, error) {
	b, err := p.bettorRole()
	if err != nil {
		return 0, err
	}

	if b.pot == 0 {
		return 0, ErrNoActiveBet
	}

	credited := outcome.Payout(b.pot)
	b.chips += credited
	b.pot = 0

	return credited, nil
}
