package chime

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	// SampleRate is the output rate in Hz.
	SampleRate = 44100

	peakGain  = 0.3
	floorGain = 0.001
	attack    = 10 * time.Millisecond
)

// Render mixes tones into mono float samples in [-1, 1].
func Render(tones []Tone, sampleRate int, volume float64) []float64 {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	samples := make([]float64, samplesFor(Length(tones), sampleRate))
	for _, t := range tones {
		start := samplesFor(t.Offset, sampleRate)
		count := samplesFor(t.Duration, sampleRate)
		for i := 0; i < count && start+i < len(samples); i++ {
			seconds := float64(i) / float64(sampleRate)
			gain := envelope(seconds, t.Duration.Seconds()) * volume
			samples[start+i] += gain * oscillate(t.Waveform, t.Frequency*seconds)
		}
	}

	for i, value := range samples {
		samples[i] = math.Max(-1, math.Min(1, value))
	}
	return samples
}

// EncodePCM16 converts float samples into signed 16-bit little-endian PCM.
func EncodePCM16(samples []float64) []byte {
	out := make([]byte, len(samples)*2)
	for i, value := range samples {
		value = math.Max(-1, math.Min(1, value))
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(value*math.MaxInt16)))
	}
	return out
}

// envelope ramps linearly to the peak then decays exponentially to the floor
// at the end of the tone.
func envelope(seconds, duration float64) float64 {
	rise := attack.Seconds()
	if seconds < rise {
		return peakGain * seconds / rise
	}
	if duration <= rise {
		return floorGain
	}
	progress := (seconds - rise) / (duration - rise)
	return peakGain * math.Pow(floorGain/peakGain, progress)
}

// oscillate evaluates a unit waveform at the given phase in cycles.
func oscillate(waveform Waveform, cycles float64) float64 {
	switch waveform {
	case WaveSquare:
		if math.Sin(2*math.Pi*cycles) >= 0 {
			return 1
		}
		return -1
	case WaveSawtooth:
		return 2 * (cycles - math.Floor(cycles+0.5))
	default:
		return math.Sin(2 * math.Pi * cycles)
	}
}

func samplesFor(duration time.Duration, sampleRate int) int {
	return int(duration.Seconds() * float64(sampleRate))
}
