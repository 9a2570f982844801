package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Hit", ActionHit.String())
	a.Equal("Stand", ActionStand.String())
	a.Equal("Double Down", ActionDoubleDown.String())
	a.Equal("Surrender", ActionSurrender.String())

	a.PanicsWithValue("invalid action: -1", func() {
		_ = Action(-1).String()
	})
}

func TestActionFromString(t *testing.T) {
	a := assert.New(t)

	action, err := ActionFromString("hit")
	a.NoError(err)
	a.Equal(ActionHit, action)

	action, err = ActionFromString(" Double Down ")
	a.NoError(err)
	a.Equal(ActionDoubleDown, action)

	action, err = ActionFromString("S")
	a.NoError(err)
	a.Equal(ActionStand, action)

	action, err = ActionFromString("surrender")
	a.NoError(err)
	a.Equal(ActionSurrender, action)

	action, err = ActionFromString("split")
	a.Equal(-1, int(action))
	a.EqualError(err, "invalid action: split")
}
