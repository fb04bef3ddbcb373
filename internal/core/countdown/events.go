package countdown

// State represents the current countdown mode.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateExpired State = "expired"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventComplete    EventType = "complete"
)

// Event represents a countdown update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
}
