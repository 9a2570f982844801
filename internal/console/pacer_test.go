package console

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestPacer_Wait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	p := NewPacer(mClock, time.Second)
	start := mClock.Now()

	done := make(chan struct{})
	go func() {
		p.Wait()
		close(done)
	}()

	for {
		select {
		case <-done:
			assert.True(t, mClock.Now().Sub(start) >= time.Second)
			return
		case <-ctx.Done():
			t.Fatal("pacer never returned")
		default:
			mClock.Advance(time.Second).MustWait(ctx)
		}
	}
}

func TestPacer_realClock(t *testing.T) {
	p := NewPacer(quartz.NewReal(), 10*time.Millisecond)
	start := time.Now()
	p.Wait()
	assert.True(t, time.Since(start) >= 10*time.Millisecond)
}

func TestPacer_noDelay(t *testing.T) {
	var p *Pacer
	p.Wait()

	NewPacer(quartz.NewMock(t), 0).Wait()
}
