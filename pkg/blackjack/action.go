package blackjack

import (
	"fmt"
	"strings"
)

// Action is a move a player can make on their turn
type Action int

// Action constants
const (
	ActionHit Action = iota
	ActionStand
	ActionDoubleDown
	ActionSurrender
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "Hit"
	case ActionStand:
		return "Stand"
	case ActionDoubleDown:
		return "Double Down"
	case ActionSurrender:
		return "Surrender"
	}

	panic(fmt.Sprintf("invalid action: %d", a))
}

// ActionFromString returns an action from its name, e.g. "hit" or "double down"
func ActionFromString(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return ActionHit, nil
	case "stand", "s":
		return ActionStand, nil
	case "double down", "double", "d":
		return ActionDoubleDown, nil
	case "surrender", "r":
		return ActionSurrender, nil
	}

	return -1, fmt.Errorf("invalid action: %s", s)
}

func containsAction(actions []Action, action Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
