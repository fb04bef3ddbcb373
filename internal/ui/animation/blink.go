package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains blink timing values.
type Config struct {
	On  time.Duration
	Off time.Duration
}

// DefaultConfig returns the readout blink cadence used after expiry.
func DefaultConfig() Config {
	return Config{
		On:  600 * time.Millisecond,
		Off: 400 * time.Millisecond,
	}
}

// Blinker toggles a visual element on and off until stopped.
type Blinker struct {
	mu     sync.Mutex
	config Config
	show   func(visible bool)
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a blinker. show is called from the blinker goroutine.
func New(config Config, show func(visible bool)) *Blinker {
	if config.On <= 0 || config.Off <= 0 {
		config = DefaultConfig()
	}
	return &Blinker{
		config: config,
		show:   show,
	}
}

// Start begins blinking, replacing any running loop.
func (blinker *Blinker) Start(ctx context.Context) {
	blinker.Stop()

	blinker.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	blinker.cancel = cancel
	blinker.done = done
	blinker.mu.Unlock()

	go func() {
		defer close(done)
		defer blinker.show(true)
		for {
			blinker.show(false)
			if !sleepWithContext(runCtx, blinker.config.Off) {
				return
			}
			blinker.show(true)
			if !sleepWithContext(runCtx, blinker.config.On) {
				return
			}
		}
	}()
}

// Stop terminates blinking and leaves the element visible.
func (blinker *Blinker) Stop() {
	blinker.mu.Lock()
	cancel := blinker.cancel
	done := blinker.done
	blinker.cancel = nil
	blinker.done = nil
	blinker.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Active reports whether a blink loop is running.
func (blinker *Blinker) Active() bool {
	blinker.mu.Lock()
	defer blinker.mu.Unlock()
	return blinker.cancel != nil
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
