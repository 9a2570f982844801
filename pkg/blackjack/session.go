package blackjack

import (
	"fmt"

	"blackjack/internal/rng"
	"blackjack/pkg/deck"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is a sequence of rounds played by the same players against the dealer
type Session struct {
	ID string

	dealer  *Player
	players *PlayerList
	gen     rng.Generator
	ctrl    Controller
	options Options
	logger  logrus.FieldLogger

	rounds     int
	eliminated map[int]bool
}

// NewSession returns a new session
func NewSession(logger logrus.FieldLogger, players *PlayerList, gen rng.Generator, ctrl Controller, options Options) *Session {
	id := uuid.New().String()
	return &Session{
		ID:         id,
		dealer:     NewDealer(),
		players:    players,
		gen:        gen,
		ctrl:       ctrl,
		options:    options,
		logger:     logger.WithField("session", id),
		eliminated: make(map[int]bool),
	}
}

// Players returns the roster
func (s *Session) Players() *PlayerList {
	return s.players
}

// Rounds returns the number of rounds played so far
func (s *Session) Rounds() int {
	return s.rounds
}

// PlayRound shuffles a fresh deck and plays a single round
func (s *Session) PlayRound() (*RoundResult, error) {
	s.rounds++

	d := deck.New()
	d.Shuffle(s.gen)
	s.logger.WithFields(logrus.Fields{
		"round": s.rounds,
		"deck":  d.HashCode(),
	}).Debug("deck shuffled")

	s.ctrl.Announce(SimpleLogMessage(nil, nil, "Round %d", s.rounds))
	result, err := NewRound(s.logger, s.rounds, d, s.dealer, s.players, s.ctrl, s.options).Play()
	if err != nil {
		return nil, fmt.Errorf("round %d: %w", s.rounds, err)
	}

	for _, p := range s.players.Players() {
		if p.IsBroke() && !s.eliminated[p.Number] {
			s.eliminated[p.Number] = true
			s.logger.WithField("player", p.Number).Info("player eliminated")
			s.ctrl.Announce(SimpleLogMessage(p, nil, "%s is out of chips and has been eliminated", p.Label()))
		}
	}

	return result, nil
}

// Run plays rounds until no player has chips left or MaxRounds is reached
// It returns the number of rounds played.
func (s *Session) Run() (int, error) {
	s.logger.WithField("players", s.players.Len()).Info("session started")

	for s.players.PlayersLeft() {
		if s.options.MaxRounds > 0 && s.rounds >= s.options.MaxRounds {
			break
		}

		if _, err := s.PlayRound(); err != nil {
			return s.rounds, err
		}
	}

	s.logger.WithField("rounds", s.rounds).Info("session over")
	return s.rounds, nil
}
