package blackjack

import (
	"errors"
	"fmt"

	"blackjack/pkg/deck"
	"github.com/sirupsen/logrus"
)

// Controller is the outside world a round talks to: whoever decides bets and actions
// for the players, and whoever shows the narration.
type Controller interface {
	// Bet returns how much the player wants to wager this round
	Bet(p *Player) (int, error)

	// Action returns the player's choice from moves. upCard is the dealer's visible card.
	Action(p *Player, upCard *deck.Card, moves []Action) (Action, error)

	// Announce shows a line of narration
	Announce(msg *LogMessage)
}

// Settlement is how a single bet was resolved
type Settlement struct {
	Player   *Player
	Outcome  Outcome
	Credited int
}

// RoundResult is the summary of a finished round
type RoundResult struct {
	Number      int
	DealerTotal int
	Settlements []Settlement
}

// Settlement returns the settlement for the player, if any
func (r *RoundResult) Settlement(p *Player) (Settlement, bool) {
	for _, s := range r.Settlements {
		if s.Player == p {
			return s, true
		}
	}

	return Settlement{}, false
}

// Round is a single deal of blackjack, from bets to settlement
type Round struct {
	Number int

	dealer  *Player
	players *PlayerList
	bettors []*Player
	deck    *deck.Deck
	ctrl    Controller
	options Options
	logger  logrus.FieldLogger

	result *RoundResult
}

// NewRound returns a new round. The deck should already be shuffled.
func NewRound(logger logrus.FieldLogger, number int, d *deck.Deck, dealer *Player, players *PlayerList, ctrl Controller, options Options) *Round {
	return &Round{
		Number:  number,
		dealer:  dealer,
		players: players,
		deck:    d,
		ctrl:    ctrl,
		options: options,
		logger:  logger.WithField("round", number),
		result:  &RoundResult{Number: number},
	}
}

// Play runs the round to completion
// Every hand is cleared when Play returns. If the round stops with an error, wagers still
// in the pot are returned to their players.
func (r *Round) Play() (result *RoundResult, err error) {
	defer r.clearHands()
	defer func() {
		if err != nil {
			r.refund()
		}
	}()

	r.bettors = r.players.Active()
	if len(r.bettors) == 0 {
		return r.result, nil
	}

	if err := r.collectBets(); err != nil {
		return nil, err
	}

	if err := r.dealInitialCards(); err != nil {
		return nil, err
	}

	upCard := r.dealer.hand.FirstCard()
	r.announce(nil, []*deck.Card{upCard}, "The dealer shows the %s", upCard)

	for _, p := range r.bettors {
		if err := r.playTurn(p, upCard); err != nil {
			return nil, err
		}
	}

	if err := r.playDealer(); err != nil {
		return nil, err
	}

	if err := r.settle(); err != nil {
		return nil, err
	}

	return r.result, nil
}

func (r *Round) collectBets() error {
	for _, p := range r.bettors {
		if err := r.collectBet(p); err != nil {
			return err
		}
	}

	return nil
}

func (r *Round) collectBet(p *Player) error {
	for attempt := 1; ; attempt++ {
		amount, err := r.ctrl.Bet(p)
		if err != nil {
			return fmt.Errorf("could not get bet for %s: %w", p.Label(), err)
		}

		if _, err := p.Bet(amount); err != nil {
			if !errors.Is(err, ErrInsufficientChips) && !errors.Is(err, ErrInvalidBet) {
				return err
			}

			r.logger.WithError(err).WithField("player", p.Number).Warn("bet rejected")
			r.announce(p, nil, "%s cannot bet %d chips (%d available)", p.Label(), amount, p.Chips())
			if attempt >= r.options.MaxBetAttempts {
				return fmt.Errorf("%w: %s", ErrTooManyBetAttempts, p.Label())
			}

			continue
		}

		r.logger.WithFields(logrus.Fields{
			"player": p.Number,
			"amount": amount,
		}).Debug("bet placed")
		r.announce(p, nil, "%s bets %d chips", p.Label(), amount)
		return nil
	}
}

func (r *Round) dealInitialCards() error {
	for _, p := range r.bettors {
		if err := p.GetCards(r.deck, 2); err != nil {
			return fmt.Errorf("could not deal to %s: %w", p.Label(), err)
		}

		r.announce(p, p.Hand(), "%s is dealt the %s and the %s (%d)", p.Label(), p.hand[0], p.hand[1], p.HandTotal())
	}

	if err := r.dealer.GetCards(r.deck, 2); err != nil {
		return fmt.Errorf("could not deal to the dealer: %w", err)
	}

	r.logger.WithField("cardsLeft", r.deck.CardsLeft()).Debug("initial cards dealt")
	return nil
}

func (r *Round) playTurn(p *Player, upCard *deck.Card) error {
	if p.HasBlackjack() {
		r.announce(p, nil, "%s has blackjack!", p.Label())
		return nil
	}

	for {
		moves := p.ValidMoves()
		action, err := r.ctrl.Action(p, upCard, moves)
		if err != nil {
			return fmt.Errorf("could not get action for %s: %w", p.Label(), err)
		}

		if !containsAction(moves, action) {
			return fmt.Errorf("%w: %s cannot %s", ErrIllegalAction, p.Label(), action)
		}

		r.logger.WithFields(logrus.Fields{
			"player": p.Number,
			"action": action.String(),
			"total":  p.HandTotal(),
		}).Debug("player action")

		switch action {
		case ActionStand:
			r.announce(p, nil, "%s stands on %d", p.Label(), p.HandTotal())
			return nil

		case ActionSurrender:
			r.announce(p, nil, "%s surrenders", p.Label())
			return r.resolve(p, OutcomeSurrender)

		case ActionDoubleDown:
			if _, err := p.DoubleDown(); err != nil {
				return fmt.Errorf("could not double down for %s: %w", p.Label(), err)
			}

			if err := p.GetCards(r.deck, 1); err != nil {
				return err
			}

			card := p.LatestCard()
			r.announce(p, []*deck.Card{card}, "%s doubles down to %d chips and draws the %s (%d)", p.Label(), p.Pot(), card, p.HandTotal())
			if p.IsBusted() {
				return r.bust(p)
			}

			return nil

		case ActionHit:
			if err := p.GetCards(r.deck, 1); err != nil {
				return err
			}

			card := p.LatestCard()
			r.announce(p, []*deck.Card{card}, "%s hits and draws the %s (%d)", p.Label(), card, p.HandTotal())
			if p.IsBusted() {
				return r.bust(p)
			}
		}
	}
}

func (r *Round) bust(p *Player) error {
	r.announce(p, nil, "%s busts with %d", p.Label(), p.HandTotal())
	return r.resolve(p, OutcomeLose)
}

func (r *Round) playDealer() error {
	hole := r.dealer.hand[1]
	r.announce(r.dealer, []*deck.Card{hole}, "The dealer reveals the %s (%d)", hole, r.dealer.HandTotal())

	if len(r.players.InPot()) == 0 {
		r.result.DealerTotal = r.dealer.HandTotal()
		return nil
	}

	if r.dealer.HasBlackjack() {
		r.announce(r.dealer, nil, "The dealer has blackjack!")
	}

	for r.dealer.HandTotal() < r.options.DealerStandsOn {
		if err := r.dealer.GetCards(r.deck, 1); err != nil {
			return fmt.Errorf("could not deal to the dealer: %w", err)
		}

		card := r.dealer.LatestCard()
		r.announce(r.dealer, []*deck.Card{card}, "The dealer hits and draws the %s (%d)", card, r.dealer.HandTotal())
	}

	total := r.dealer.HandTotal()
	r.result.DealerTotal = total
	if total > BlackjackTotal {
		r.announce(r.dealer, nil, "The dealer busts with %d", total)
	} else if !r.dealer.HasBlackjack() {
		r.announce(r.dealer, nil, "The dealer stands on %d", total)
	}

	return nil
}

func (r *Round) settle() error {
	for _, p := range r.players.InPot() {
		if err := r.resolve(p, settleOutcome(p, r.dealer)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Round) resolve(p *Player, outcome Outcome) error {
	credited, err := p.ResolveBet(outcome)
	if err != nil {
		return fmt.Errorf("could not resolve bet for %s: %w", p.Label(), err)
	}

	r.result.Settlements = append(r.result.Settlements, Settlement{
		Player:   p,
		Outcome:  outcome,
		Credited: credited,
	})

	r.logger.WithFields(logrus.Fields{
		"player":   p.Number,
		"outcome":  outcome.String(),
		"credited": credited,
		"chips":    p.Chips(),
	}).Info("bet resolved")

	r.announce(p, nil, "%s: %s, collects %d chips (%d total)", p.Label(), outcome, credited, p.Chips())
	return nil
}

func (r *Round) refund() {
	for _, p := range r.players.InPot() {
		credited, err := p.ResolveBet(OutcomeStandOff)
		if err != nil {
			r.logger.WithError(err).WithField("player", p.Number).Error("could not refund bet")
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"player":   p.Number,
			"refunded": credited,
		}).Warn("round aborted, bet refunded")
	}
}

func (r *Round) clearHands() {
	r.dealer.ClearHand()
	for _, p := range r.players.Players() {
		p.ClearHand()
	}
}

func (r *Round) announce(p *Player, cards []*deck.Card, format string, a ...interface{}) {
	r.ctrl.Announce(SimpleLogMessage(p, cards, format, a...))
}
