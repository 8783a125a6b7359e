package game

import (
	"context"
	"time"
)

// clockHandle identifies one live per-second clock. A room owns at
// most one handle at a time: starting a clock always cancels the
// previous one first, and the tick goroutine verifies its handle is
// still current under the room lock before touching anything. A
// cancelled clock's leftover ticks are therefore inert.
type clockHandle struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// startClock replaces the room's clock with a fresh one and launches
// its ticker goroutine. tick runs with r.mu held and returns true when
// the clock should stop. Callers must hold r.mu.
func (e *Engine) startClock(r *Room, tick func() bool) {
	ctx, cancel := context.WithCancel(context.Background())
	h := &clockHandle{ctx: ctx, cancel: cancel}

	r.stopClockLocked()
	r.clock = h

	go func() {
		ticker := time.NewTicker(e.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.mu.Lock()
				if r.clock != h {
					r.mu.Unlock()
					return
				}
				done := tick()
				if done && r.clock == h {
					r.stopClockLocked()
				}
				r.mu.Unlock()
				if done {
					return
				}
			}
		}
	}()
}
