package chime

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ErrNoAudio indicates that no audio output is available.
var ErrNoAudio = errors.New("audio output unavailable")

// Output plays mono 16-bit PCM. Play blocks until the buffer has been played.
type Output interface {
	Play(pcm []byte) error
}

// Discard is an Output that drops everything.
type Discard struct{}

// Play implements Output.
func (Discard) Play([]byte) error {
	return nil
}

// Speaker plays PCM through the system audio device.
type Speaker struct {
	sampleRate int
	once       sync.Once
	context    *oto.Context
	err        error
}

// NewSpeaker creates a speaker output. The audio device is opened on first use.
func NewSpeaker(sampleRate int) *Speaker {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	return &Speaker{sampleRate: sampleRate}
}

// Play implements Output.
func (speaker *Speaker) Play(pcm []byte) error {
	ctx, err := speaker.open()
	if err != nil {
		return err
	}

	player := ctx.NewPlayer(bytes.NewReader(pcm))
	defer func() {
		_ = player.Close()
	}()
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

// oto allows a single context per process, so it is opened once and reused.
func (speaker *Speaker) open() (*oto.Context, error) {
	speaker.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   speaker.sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			speaker.err = fmt.Errorf("open audio context: %w: %v", ErrNoAudio, err)
			return
		}
		<-ready
		speaker.context = ctx
	})
	return speaker.context, speaker.err
}
