package blackjack

// PlayerList is the ordered roster of participants for a session.
// Membership never changes; a player with no chips is eliminated but keeps their seat.
type PlayerList struct {
	players []*Player
}

// NewPlayerList returns n players numbered from 1, each with startingChips
func NewPlayerList(n int, startingChips int) *PlayerList {
	players := make([]*Player, n)
	for i := range players {
		players[i] = newParticipant(startingChips, i+1)
	}

	return &PlayerList{players: players}
}

// Players returns the players in seat order
// The players are shared, so changes made through them stick.
func (l *PlayerList) Players() []*Player {
	return l.players
}

// Len returns the number of seats
func (l *PlayerList) Len() int {
	return len(l.players)
}

// Get returns the player with the given number, or nil
func (l *PlayerList) Get(number int) *Player {
	if number < 1 || number > len(l.players) {
		return nil
	}

	return l.players[number-1]
}

// Active returns the players who still have chips
func (l *PlayerList) Active() []*Player {
	active := make([]*Player, 0, len(l.players))
	for _, p := range l.players {
		if p.Chips() > 0 {
			active = append(active, p)
		}
	}

	return active
}

// InPot returns the players with an unresolved wager
func (l *PlayerList) InPot() []*Player {
	inPot := make([]*Player, 0, len(l.players))
	for _, p := range l.players {
		if p.IsInPot() {
			inPot = append(inPot, p)
		}
	}

	return inPot
}

// PlayersLeft returns true if any player still has chips, counting chips wagered in the current round
func (l *PlayerList) PlayersLeft() bool {
	for _, p := range l.players {
		if p.Chips() > 0 || p.IsInPot() {
			return true
		}
	}

	return false
}
