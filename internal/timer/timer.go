// Package timer implements the delay and sound timers of the CHIP-8
// virtual machine.
//
// Both counters decrement towards zero at a fixed 60 Hz rate, driven by a
// background task, while the interpreter reads and writes them at its own
// instruction rate. All accesses share one lock so that a read never
// observes a counter mid-decrement and a set is never lost.
package timer

import (
	"context"
	"sync"
	"time"
)

// TickRate is the rate at which the timers count down.
const TickRate = time.Second / 60

// Unit holds the delay and sound counters.
type Unit struct {
	mu    sync.Mutex
	delay byte
	sound byte
}

// New returns a timer unit with both counters at zero.
func New() *Unit {
	return &Unit{}
}

// Delay returns the current delay timer value.
func (u *Unit) Delay() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.delay
}

// SetDelay sets the delay timer.
func (u *Unit) SetDelay(value byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = value
}

// Sound returns the current sound timer value.
func (u *Unit) Sound() byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sound
}

// SetSound sets the sound timer.
func (u *Unit) SetSound(value byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sound = value
}

// Reset sets both counters to zero.
func (u *Unit) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = 0
	u.sound = 0
}

// Tick decrements each counter by one if it is greater than zero.
func (u *Unit) Tick() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.delay > 0 {
		u.delay--
	}
	if u.sound > 0 {
		u.sound--
	}
}

// Run decrements the counters at the tick rate until the context is done.
// It is meant to be run in a goroutine for the lifetime of the machine.
func (u *Unit) Run(ctx context.Context) {
	ticker := time.NewTicker(TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.Tick()
		}
	}
}
