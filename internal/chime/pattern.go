package chime

import (
	"time"

	"timetimer/internal/core/model"
)

// Waveform defines the oscillator shape of a tone.
type Waveform string

const (
	WaveSine     Waveform = "sine"
	WaveSquare   Waveform = "square"
	WaveSawtooth Waveform = "sawtooth"
)

// Tone is a single note of a chime.
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Waveform  Waveform
	Offset    time.Duration
}

func tone(frequency float64, duration time.Duration, waveform Waveform, offset time.Duration) Tone {
	return Tone{Frequency: frequency, Duration: duration, Waveform: waveform, Offset: offset}
}

const ms = time.Millisecond

var patterns = map[model.Style][]Tone{
	// bell tone
	model.StyleClassic: {
		tone(800, 500*ms, WaveSine, 0),
		tone(600, 300*ms, WaveSine, 200*ms),
	},
	// kitchen timer ding
	model.StyleMidCentury: {
		tone(1000, 400*ms, WaveSine, 0),
		tone(800, 400*ms, WaveSine, 150*ms),
		tone(600, 500*ms, WaveSine, 300*ms),
	},
	model.StyleAtomic: {
		tone(1200, 200*ms, WaveSquare, 0),
		tone(1400, 200*ms, WaveSquare, 250*ms),
		tone(1600, 300*ms, WaveSquare, 500*ms),
	},
	model.StyleModern: {
		tone(440, 300*ms, WaveSine, 0),
		tone(554, 300*ms, WaveSine, 200*ms),
		tone(659, 400*ms, WaveSine, 400*ms),
	},
	model.StyleMinimal: {
		tone(600, 600*ms, WaveSine, 0),
	},
	model.StyleNeon: {
		tone(880, 300*ms, WaveSawtooth, 0),
		tone(1100, 300*ms, WaveSawtooth, 200*ms),
		tone(1320, 400*ms, WaveSawtooth, 400*ms),
		tone(880, 500*ms, WaveSawtooth, 800*ms),
	},
}

// Pattern returns the tones for style. Unknown styles get the classic chime.
func Pattern(style model.Style) []Tone {
	tones, ok := patterns[style]
	if !ok {
		tones = patterns[model.StyleClassic]
	}
	return append([]Tone(nil), tones...)
}

// Length returns the time from the first tone start to the last tone end.
func Length(tones []Tone) time.Duration {
	var length time.Duration
	for _, t := range tones {
		if end := t.Offset + t.Duration; end > length {
			length = end
		}
	}
	return length
}
