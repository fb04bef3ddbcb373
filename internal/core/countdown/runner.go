package countdown

import (
	"errors"
	"time"
)

// ErrNoDispatch is returned when a Runner is built without a Dispatch func.
var ErrNoDispatch = errors.New("countdown: runner requires a dispatch func")

// TickerFunc creates a ticker and returns its channel and a stop function.
type TickerFunc func(interval time.Duration) (<-chan time.Time, func())

// Config contains runtime options for Runner.
type Config struct {
	TickInterval time.Duration
	// Dispatch runs fn on the goroutine that owns the engine. Required.
	Dispatch func(fn func())
	// NewTicker overrides the real ticker, mostly for tests.
	NewTicker TickerFunc
}

// Runner drives an Engine with an owned ticker that exists only while the
// engine is running. Every method must be called from the dispatch goroutine.
type Runner struct {
	engine     *Engine
	options    Config
	stopCh     chan struct{}
	stopTicker func()
	generation uint64
}

// NewRunner wraps engine with a periodic tick source.
func NewRunner(engine *Engine, options Config) (*Runner, error) {
	if options.Dispatch == nil {
		return nil, ErrNoDispatch
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.NewTicker == nil {
		options.NewTicker = systemTicker
	}

	runner := &Runner{
		engine:  engine,
		options: options,
	}
	engine.Observe(func(event Event) {
		if event.Type == EventComplete {
			runner.stop()
		}
	})
	return runner, nil
}

// Engine returns the wrapped engine.
func (runner *Runner) Engine() *Engine {
	return runner.engine
}

// Snapshot returns the current engine state.
func (runner *Runner) Snapshot() Snapshot {
	return runner.engine.Snapshot()
}

// Start starts the engine and its ticker.
func (runner *Runner) Start() {
	runner.engine.Start()
	if runner.engine.Snapshot().Running && runner.stopCh == nil {
		runner.launch()
	}
}

// Pause pauses the engine and stops its ticker.
func (runner *Runner) Pause() {
	runner.stop()
	runner.engine.Pause()
}

// Toggle starts a paused engine or pauses a running one.
func (runner *Runner) Toggle() {
	if runner.engine.Snapshot().Running {
		runner.Pause()
		return
	}
	runner.Start()
}

// Reset resets the engine and stops its ticker.
func (runner *Runner) Reset() {
	runner.stop()
	runner.engine.Reset()
}

// SetDuration forwards to the engine.
func (runner *Runner) SetDuration(minutes int) {
	runner.engine.SetDuration(minutes)
}

// Ticking reports whether a ticker is currently owned.
func (runner *Runner) Ticking() bool {
	return runner.stopCh != nil
}

// Close stops the ticker without touching the engine state.
func (runner *Runner) Close() {
	runner.stop()
}

func (runner *Runner) launch() {
	runner.generation++
	generation := runner.generation
	stopCh := make(chan struct{})
	ticks, stopTicker := runner.options.NewTicker(runner.options.TickInterval)
	runner.stopCh = stopCh
	runner.stopTicker = stopTicker

	go func() {
		for {
			select {
			case <-stopCh:
				return
			case <-ticks:
				runner.options.Dispatch(func() {
					if runner.generation != generation || runner.stopCh == nil {
						return
					}
					runner.engine.Tick()
				})
			}
		}
	}()
}

func (runner *Runner) stop() {
	if runner.stopCh == nil {
		return
	}
	close(runner.stopCh)
	runner.stopTicker()
	runner.stopCh = nil
	runner.stopTicker = nil
}

func systemTicker(interval time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
