package countdown

import (
	"fmt"

	"timetimer/internal/core/model"
)

const hourFaceSeconds = 3600

// Snapshot is a read-only view of the timer state.
type Snapshot struct {
	DurationSeconds  int
	RemainingSeconds int
	Running          bool
	// Paused is set between Pause and the next Start, Reset or SetDuration.
	Paused           bool
}

// State derives the state machine position from the snapshot.
func (snapshot Snapshot) State() State {
	if snapshot.Running {
		return StateRunning
	}
	if snapshot.RemainingSeconds == 0 {
		return StateExpired
	}
	return StateIdle
}

// Minutes returns the configured duration in whole minutes.
func (snapshot Snapshot) Minutes() int {
	return snapshot.DurationSeconds / 60
}

// Clock formats the remaining time as MM:SS.
func (snapshot Snapshot) Clock() string {
	return FormatClock(snapshot.RemainingSeconds)
}

// Fraction returns the share of the dial covered by the remaining time.
func (snapshot Snapshot) Fraction(face model.Face) float64 {
	total := hourFaceSeconds
	if face == model.FaceDuration {
		total = snapshot.DurationSeconds
	}
	if total <= 0 {
		return 0
	}
	fraction := float64(snapshot.RemainingSeconds) / float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Engine is the countdown state machine. It is not safe for concurrent use;
// callers serialize every method call on one goroutine.
type Engine struct {
	duration  int
	remaining int
	running   bool
	paused    bool
	observers []func(Event)
	events    []chan Event
}

// New creates an idle engine with the given duration in minutes.
func New(minutes int) *Engine {
	duration := model.ClampMinutes(minutes) * 60
	return &Engine{
		duration:  duration,
		remaining: duration,
	}
}

// Observe registers a handler that is called synchronously for every event.
func (engine *Engine) Observe(handler func(Event)) {
	if handler == nil {
		return
	}
	engine.observers = append(engine.observers, handler)
}

// Subscribe registers a new observer channel. Events are dropped when the
// channel buffer is full.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.events = append(engine.events, ch)
	return ch
}

// Snapshot returns the current state.
func (engine *Engine) Snapshot() Snapshot {
	return Snapshot{
		DurationSeconds:  engine.duration,
		RemainingSeconds: engine.remaining,
		Running:          engine.running,
		Paused:           engine.paused,
	}
}

// Start begins consuming ticks. It does nothing when already running or expired.
func (engine *Engine) Start() {
	if engine.running || engine.remaining == 0 {
		return
	}
	engine.running = true
	engine.paused = false
	engine.emit(EventStateChange)
}

// Pause stops consuming ticks and keeps the remaining time.
func (engine *Engine) Pause() {
	if !engine.running {
		return
	}
	engine.running = false
	engine.paused = true
	engine.emit(EventStateChange)
}

// Reset stops the countdown and restores the full duration.
func (engine *Engine) Reset() {
	engine.running = false
	engine.paused = false
	engine.remaining = engine.duration
	engine.emit(EventStateChange)
}

// SetDuration clamps minutes to [1, 60] and applies it. The remaining time
// follows the new duration only while the engine is not running.
func (engine *Engine) SetDuration(minutes int) {
	engine.duration = model.ClampMinutes(minutes) * 60
	if !engine.running {
		engine.remaining = engine.duration
		engine.paused = false
	}
	engine.emit(EventStateChange)
}

// Tick advances the countdown by one second.
func (engine *Engine) Tick() {
	if !engine.running || engine.remaining == 0 {
		return
	}
	engine.remaining--
	if engine.remaining > 0 {
		engine.emit(EventTick)
		return
	}

	engine.running = false
	engine.emit(EventTick)
	engine.emit(EventComplete)
}

func (engine *Engine) emit(eventType EventType) {
	event := Event{
		Type:     eventType,
		Snapshot: engine.Snapshot(),
	}
	for _, handler := range engine.observers {
		handler(event)
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
