package chime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOutput struct {
	mu    sync.Mutex
	plays [][]byte
}

func (output *recordingOutput) Play(pcm []byte) error {
	output.mu.Lock()
	defer output.mu.Unlock()
	output.plays = append(output.plays, pcm)
	return nil
}

func (output *recordingOutput) lengths() []int {
	output.mu.Lock()
	defer output.mu.Unlock()
	var lengths []int
	for _, pcm := range output.plays {
		lengths = append(lengths, len(pcm))
	}
	return lengths
}

func (output *recordingOutput) count() int {
	output.mu.Lock()
	defer output.mu.Unlock()
	return len(output.plays)
}

type failingOutput struct{}

func (failingOutput) Play([]byte) error {
	return ErrNoAudio
}

type panickingOutput struct{}

func (panickingOutput) Play([]byte) error {
	panic(errors.New("device vanished"))
}

func TestPatternsCoverEveryStyle(t *testing.T) {
	for _, style := range model.Styles() {
		tones := Pattern(style)
		require.NotEmpty(t, tones, style)
		require.LessOrEqual(t, len(tones), 4, style)
		for _, tone := range tones {
			assert.GreaterOrEqual(t, tone.Frequency, 220.0, style)
			assert.LessOrEqual(t, tone.Frequency, 1600.0, style)
			assert.GreaterOrEqual(t, tone.Duration, 200*time.Millisecond, style)
			assert.LessOrEqual(t, tone.Duration, 600*time.Millisecond, style)
			assert.LessOrEqual(t, tone.Offset, 800*time.Millisecond, style)
		}
	}
}

func TestPatternTables(t *testing.T) {
	assert.Equal(t, []Tone{
		{Frequency: 800, Duration: 500 * time.Millisecond, Waveform: WaveSine},
		{Frequency: 600, Duration: 300 * time.Millisecond, Waveform: WaveSine, Offset: 200 * time.Millisecond},
	}, Pattern(model.StyleClassic))

	neon := Pattern(model.StyleNeon)
	require.Len(t, neon, 4)
	assert.Equal(t, WaveSawtooth, neon[3].Waveform)
	assert.Equal(t, 800*time.Millisecond, neon[3].Offset)

	assert.Equal(t, WaveSquare, Pattern(model.StyleAtomic)[0].Waveform)
	assert.Equal(t, Pattern(model.StyleClassic), Pattern(model.Style("unknown")))
}

func TestPatternReturnsCopy(t *testing.T) {
	tones := Pattern(model.StyleMinimal)
	tones[0].Frequency = 1

	assert.Equal(t, 600.0, Pattern(model.StyleMinimal)[0].Frequency)
}

func TestLength(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, Length(Pattern(model.StyleClassic)))
	assert.Equal(t, 1300*time.Millisecond, Length(Pattern(model.StyleNeon)))
	assert.Equal(t, time.Duration(0), Length(nil))
}

func TestRenderBounds(t *testing.T) {
	for _, style := range model.Styles() {
		tones := Pattern(style)
		samples := Render(tones, SampleRate, 1)
		require.Len(t, samples, samplesFor(Length(tones), SampleRate), style)
		for _, value := range samples {
			require.GreaterOrEqual(t, value, -1.0)
			require.LessOrEqual(t, value, 1.0)
		}
	}
}

func TestRenderEnvelope(t *testing.T) {
	samples := Render(Pattern(model.StyleMinimal), SampleRate, 1)

	assert.Equal(t, 0.0, samples[0])

	peak := 0.0
	for _, value := range samples {
		if value > peak {
			peak = value
		}
	}
	assert.InDelta(t, peakGain, peak, 0.01)
	assert.Less(t, samples[len(samples)-1], 0.01)
	assert.Greater(t, samples[len(samples)-1], -0.01)
}

func TestRenderVolume(t *testing.T) {
	silent := Render(Pattern(model.StyleClassic), SampleRate, 0)
	for _, value := range silent {
		require.Equal(t, 0.0, value)
	}
}

func TestEncodePCM16(t *testing.T) {
	pcm := EncodePCM16([]float64{0, 1, -1, 2})
	require.Len(t, pcm, 8)
	assert.Equal(t, []byte{0x00, 0x00}, pcm[0:2])
	assert.Equal(t, []byte{0xff, 0x7f}, pcm[2:4])
	assert.Equal(t, []byte{0x01, 0x80}, pcm[4:6])
	assert.Equal(t, []byte{0xff, 0x7f}, pcm[6:8])
}

func TestPlayerPlaysOverlappingChimes(t *testing.T) {
	output := &recordingOutput{}
	player := NewPlayer(Config{Volume: 1}, output)

	player.Play(model.StyleClassic)
	player.Play(model.StyleNeon)
	player.Wait()

	assert.Equal(t, 2, output.count())
}

func TestPlayerSwallowsMissingAudio(t *testing.T) {
	player := NewPlayer(Config{Volume: 1}, failingOutput{})

	assert.NotPanics(t, func() {
		player.Play(model.StyleClassic)
		player.Play(model.StyleClassic)
		player.Wait()
	})
}

func TestPlayerRecoversOutputPanic(t *testing.T) {
	player := NewPlayer(Config{Volume: 1}, panickingOutput{})

	assert.NotPanics(t, func() {
		player.Play(model.StyleAtomic)
		player.Wait()
	})
}

func TestPlayerNilOutputDiscards(t *testing.T) {
	player := NewPlayer(Config{}, nil)
	player.Play(model.StyleModern)
	player.Wait()
}

func pcmLength(style model.Style) int {
	return 2 * samplesFor(Length(Pattern(style)), SampleRate)
}

func TestPlayOnCompleteChimesOnceWithCurrentStyle(t *testing.T) {
	output := &recordingOutput{}
	player := NewPlayer(Config{Volume: 1}, output)
	engine := countdown.New(1)
	style := model.StyleClassic
	PlayOnComplete(engine, 20*time.Millisecond, func() model.Style { return style }, player)

	engine.Start()
	for i := 0; i < 30; i++ {
		engine.Tick()
	}
	style = model.StyleNeon
	for i := 0; i < 30; i++ {
		engine.Tick()
	}
	assert.Equal(t, 0, output.count())

	engine.Tick()
	player.Wait()
	assert.Equal(t, []int{pcmLength(model.StyleNeon)}, output.lengths())
}

func TestPlayOnCompleteIgnoresPauseAndReset(t *testing.T) {
	output := &recordingOutput{}
	player := NewPlayer(Config{Volume: 1}, output)
	engine := countdown.New(1)
	PlayOnComplete(engine, 0, func() model.Style { return model.StyleMinimal }, player)

	engine.Start()
	engine.Tick()
	engine.Pause()
	engine.Start()
	engine.Tick()
	engine.Reset()
	engine.SetDuration(2)
	player.Wait()

	assert.Equal(t, 0, output.count())
}

func TestPlayAfterIsCoveredByWait(t *testing.T) {
	output := &recordingOutput{}
	player := NewPlayer(Config{Volume: 1}, output)

	player.PlayAfter(30*time.Millisecond, model.StyleModern)
	player.Wait()

	assert.Equal(t, []int{pcmLength(model.StyleModern)}, output.lengths())
}
