package console

import (
	"fmt"
	"strconv"
	"strings"

	"blackjack/pkg/blackjack"
	"blackjack/pkg/deck"
)

var _ blackjack.Controller = (*Console)(nil)

// Bet asks the player how much to wager
func (c *Console) Bet(p *blackjack.Player) (int, error) {
	question := fmt.Sprintf("%s, you have %d chips. How many do you bet?", p.Label(), p.Chips())
	return c.ReadInt(c.render(ActionsStyle, question), 1, p.Chips())
}

// Action shows the player's hand and asks for one of moves
// The answer is either the menu number or the action's name, e.g. "hit" or "h".
func (c *Console) Action(p *blackjack.Player, upCard *deck.Card, moves []blackjack.Action) (blackjack.Action, error) {
	c.Println(fmt.Sprintf("%s, you hold %s (%d). The dealer shows %s.", p.Label(), c.renderCards(p.Hand()), p.HandTotal(), c.renderCard(upCard)))

	var sb strings.Builder
	sb.WriteString("Type the number of your desired action:")
	for i, move := range moves {
		sb.WriteString(fmt.Sprintf("\n%d: %s", i, move))
	}

	parse := func(s string) (blackjack.Action, error) {
		i, err := strconv.Atoi(s)
		if err != nil {
			return blackjack.ActionFromString(s)
		}

		if i < 0 || i >= len(moves) {
			return 0, fmt.Errorf("enter a number from 0 to %d", len(moves)-1)
		}

		return moves[i], nil
	}

	return Prompt(c, c.render(ActionsStyle, sb.String()), parse, func(action blackjack.Action) error {
		for _, move := range moves {
			if move == action {
				return nil
			}
		}

		return fmt.Errorf("you cannot %s now", action)
	})
}

// Announce prints a line of narration
func (c *Console) Announce(msg *blackjack.LogMessage) {
	var style renderer = PlayerStyle
	if len(msg.PlayerNumbers) == 0 {
		style = DealerStyle
	}

	c.Println(c.render(style, msg.Message))
	c.pacer.Wait()
}

// ReadPlayerCount asks how many players are at the table
func (c *Console) ReadPlayerCount(max int) (int, error) {
	return c.ReadInt(fmt.Sprintf("How many players? (max: %d)", max), 1, max)
}

// Standings prints each player's chips
func (c *Console) Standings(players *blackjack.PlayerList) {
	for _, p := range players.Players() {
		line := fmt.Sprintf("%s: %d chips", p.Label(), p.Chips())
		if p.IsBroke() {
			c.Println(c.render(WarningStyle, line+" (eliminated)"))
			continue
		}

		c.Println(c.render(PlayerStyle, line))
	}
}

func (c *Console) renderCard(card *deck.Card) string {
	if card == nil {
		return "nothing"
	}

	return c.render(cardStyle(card), card.String())
}

func (c *Console) renderCards(cards deck.Hand) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = c.renderCard(card)
	}

	return strings.Join(s, ", ")
}
