package blackjack

import (
	"fmt"
	"testing"

	"blackjack/pkg/deck"
	"github.com/sirupsen/logrus"
)

// stackedDeck returns a deck that deals the cards in the order listed
func stackedDeck(cards string) *deck.Deck {
	c := deck.CardsFromString(cards)
	for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}

	return &deck.Deck{Cards: c}
}

// playerWithHand returns a participant holding the cards
func playerWithHand(chips int, cards string) *Player {
	p := NewPlayer(chips, 1)
	p.hand = deck.CardsFromString(cards)
	return p
}

// identityGenerator leaves a shuffled deck in its original order
type identityGenerator struct{}

func (identityGenerator) Intn(n int) int {
	return n - 1
}

type scriptedController struct {
	t        *testing.T
	bets     map[int][]int
	actions  map[int][]Action
	fallback Action
	err      error
	messages []string
	upCards  []*deck.Card
	moves    map[int][][]Action
}

func newScriptedController(t *testing.T) *scriptedController {
	return &scriptedController{
		t:        t,
		bets:     make(map[int][]int),
		actions:  make(map[int][]Action),
		fallback: ActionStand,
		moves:    make(map[int][][]Action),
	}
}

func (s *scriptedController) Bet(p *Player) (int, error) {
	bets := s.bets[p.Number]
	if len(bets) == 0 {
		return 0, fmt.Errorf("no bet scripted for %s", p.Label())
	}

	if len(bets) > 1 {
		s.bets[p.Number] = bets[1:]
	}

	return bets[0], nil
}

func (s *scriptedController) Action(p *Player, upCard *deck.Card, moves []Action) (Action, error) {
	s.upCards = append(s.upCards, upCard)
	s.moves[p.Number] = append(s.moves[p.Number], moves)
	if s.err != nil {
		return 0, s.err
	}

	actions := s.actions[p.Number]
	if len(actions) == 0 {
		return s.fallback, nil
	}

	s.actions[p.Number] = actions[1:]
	return actions[0], nil
}

func (s *scriptedController) Announce(msg *LogMessage) {
	s.messages = append(s.messages, msg.Message)
}

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}
