package blackjack

import (
	"fmt"
	"time"

	"blackjack/pkg/deck"
	"github.com/google/uuid"
)

// LogMessage is a line of table narration
// If PlayerNumbers is empty, it's a general statement about the table.
type LogMessage struct {
	UUID          string       `json:"uuid"`
	PlayerNumbers []int        `json:"playerNumbers"`
	Cards         []*deck.Card `json:"cards"`
	Message       string       `json:"message"`
	Time          time.Time    `json:"time"`
}

// SimpleLogMessage returns a new LogMessage about the player
// The dealer (or a nil player) produces a general statement.
func SimpleLogMessage(p *Player, cards []*deck.Card, format string, a ...interface{}) *LogMessage {
	var playerNumbers []int
	if p != nil && !p.IsDealer() {
		playerNumbers = []int{p.Number}
	}

	return &LogMessage{
		UUID:          uuid.New().String(),
		PlayerNumbers: playerNumbers,
		Cards:         cards,
		Message:       fmt.Sprintf(format, a...),
		Time:          time.Now(),
	}
}
