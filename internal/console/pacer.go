package console

import (
	"time"

	"github.com/coder/quartz"
)

// Pacer slows the narration down so players can follow along
type Pacer struct {
	clock quartz.Clock
	delay time.Duration
}

// NewPacer returns a pacer that waits delay on clock
func NewPacer(clock quartz.Clock, delay time.Duration) *Pacer {
	return &Pacer{
		clock: clock,
		delay: delay,
	}
}

// Wait blocks for the pacer's delay
func (p *Pacer) Wait() {
	if p == nil || p.delay <= 0 {
		return
	}

	timer := p.clock.NewTimer(p.delay, "pacer")
	<-timer.C
}
