package chime

import (
	"log"
	"sync"
	"time"

	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"
)

// Config contains chime playback options.
type Config struct {
	SampleRate int
	Volume     float64
}

// Player synthesizes chimes and sends them to an Output.
type Player struct {
	config   Config
	output   Output
	inflight sync.WaitGroup
	warnOnce sync.Once
}

// NewPlayer creates a chime player. A nil output discards audio.
func NewPlayer(config Config, output Output) *Player {
	if config.SampleRate <= 0 {
		config.SampleRate = SampleRate
	}
	if output == nil {
		output = Discard{}
	}
	return &Player{config: config, output: output}
}

// Play starts the chime for style and returns immediately. Chimes may
// overlap and cannot be stopped once started. Output failures are logged
// once and otherwise ignored.
func (player *Player) Play(style model.Style) {
	player.inflight.Add(1)
	go player.play(style)
}

// PlayAfter schedules the chime for style after delay. Wait covers chimes
// that are still scheduled.
func (player *Player) PlayAfter(delay time.Duration, style model.Style) {
	player.inflight.Add(1)
	time.AfterFunc(delay, func() {
		player.play(style)
	})
}

// PlayOnComplete chimes once per completion event of engine. style is read
// when the countdown completes, so a style chosen mid-run is the one played.
func PlayOnComplete(engine *countdown.Engine, delay time.Duration, style func() model.Style, player *Player) {
	engine.Observe(func(event countdown.Event) {
		if event.Type != countdown.EventComplete {
			return
		}
		player.PlayAfter(delay, style())
	})
}

func (player *Player) play(style model.Style) {
	defer player.inflight.Done()
	defer func() {
		if recovered := recover(); recovered != nil {
			player.warn("chime: output panic: %v", recovered)
		}
	}()

	pcm := EncodePCM16(Render(Pattern(style), player.config.SampleRate, player.config.Volume))
	if err := player.output.Play(pcm); err != nil {
		player.warn("chime: %v", err)
	}
}

// Wait blocks until all started chimes have finished.
func (player *Player) Wait() {
	player.inflight.Wait()
}

func (player *Player) warn(format string, args ...any) {
	player.warnOnce.Do(func() {
		log.Printf(format, args...)
	})
}
