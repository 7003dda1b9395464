package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestSetAndGet(t *testing.T) {
	u := New()

	u.SetDelay(42)
	u.SetSound(13)

	assert.Equal(t, byte(42), u.Delay())
	assert.Equal(t, byte(13), u.Sound())
}

func TestTickDecrements(t *testing.T) {
	u := New()
	u.SetDelay(2)
	u.SetSound(1)

	u.Tick()
	assert.Equal(t, byte(1), u.Delay())
	assert.Equal(t, byte(0), u.Sound())
}

func TestTickStopsAtZero(t *testing.T) {
	u := New()

	for i := 0; i < 10; i++ {
		u.Tick()
	}

	assert.Equal(t, byte(0), u.Delay())
	assert.Equal(t, byte(0), u.Sound())
}

func TestReset(t *testing.T) {
	u := New()
	u.SetDelay(100)
	u.SetSound(200)

	u.Reset()

	assert.Equal(t, byte(0), u.Delay())
	assert.Equal(t, byte(0), u.Sound())
}

func TestSetWinsOverConcurrentTicks(t *testing.T) {
	u := New()
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			u.Tick()
		}
	}()
	wg.Wait()

	u.SetDelay(60)
	assert.Equal(t, byte(60), u.Delay())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	u := New()
	u.SetDelay(255)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		u.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer task did not stop on context cancellation")
	}
}
