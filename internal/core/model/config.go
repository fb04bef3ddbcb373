package model

import "time"

// Face selects how the dial converts remaining time into a sector fraction.
type Face string

const (
	// FaceHour draws remaining time on a fixed 60-minute face.
	FaceHour Face = "hour"
	// FaceDuration draws remaining time relative to the configured duration.
	FaceDuration Face = "duration"
)

// ParseFace returns the face for name, or false when the name is unknown.
func ParseFace(name string) (Face, bool) {
	switch Face(name) {
	case FaceHour, FaceDuration:
		return Face(name), true
	}
	return "", false
}

// Duration limits in minutes.
const (
	MinMinutes     = 1
	MaxMinutes     = 60
	DefaultMinutes = 25
)

// Config contains runtime settings for the timer application.
type Config struct {
	DefaultMinutes int
	Style          Style
	Face           Face

	TickInterval time.Duration
	ChimeVolume  float64
	ChimeDelay   time.Duration

	Presets []int
}

// DefaultPresets returns the quick duration presets in minutes.
func DefaultPresets() []int {
	return []int{5, 15, 25, 45, 60}
}

// DefaultConfig returns default settings.
func DefaultConfig() Config {
	return Config{
		DefaultMinutes: DefaultMinutes,
		Style:          StyleClassic,
		Face:           FaceHour,
		TickInterval:   time.Second,
		ChimeVolume:    1,
		ChimeDelay:     100 * time.Millisecond,
		Presets:        DefaultPresets(),
	}
}

// ClampMinutes limits minutes to the supported duration range.
func ClampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}
