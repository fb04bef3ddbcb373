package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"timetimer/internal/chime"
	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingOutput struct {
	mu    sync.Mutex
	plays int
}

func (output *countingOutput) Play([]byte) error {
	output.mu.Lock()
	defer output.mu.Unlock()
	output.plays++
	return nil
}

func (output *countingOutput) count() int {
	output.mu.Lock()
	defer output.mu.Unlock()
	return output.plays
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func shortConfig() model.Config {
	config := model.DefaultConfig()
	config.DefaultMinutes = 1
	config.ChimeDelay = time.Millisecond
	return config
}

func TestCountdownLoopCompletes(t *testing.T) {
	output := &countingOutput{}
	player := chime.NewPlayer(chime.Config{}, output)
	var out bytes.Buffer

	completed, err := countdownLoop(context.Background(), nil, &out, shortConfig(), countdown.Config{TickInterval: time.Millisecond}, player)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Contains(t, out.String(), "Time's up!")

	player.Wait()
	assert.Equal(t, 1, output.count())
}

func TestCountdownLoopCompletesWhenOutputFails(t *testing.T) {
	output := &countingOutput{}
	player := chime.NewPlayer(chime.Config{}, output)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	completed, err := countdownLoop(ctx, nil, failingWriter{}, shortConfig(), countdown.Config{TickInterval: time.Millisecond}, player)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.NoError(t, ctx.Err())

	player.Wait()
	assert.Equal(t, 1, output.count())
}

func TestCountdownLoopCancelled(t *testing.T) {
	output := &countingOutput{}
	player := chime.NewPlayer(chime.Config{}, output)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	completed, err := countdownLoop(ctx, nil, &bytes.Buffer{}, model.DefaultConfig(), countdown.Config{TickInterval: time.Hour}, player)
	require.NoError(t, err)
	assert.False(t, completed)

	player.Wait()
	assert.Equal(t, 0, output.count())
}

func TestRunStyles(t *testing.T) {
	var out bytes.Buffer
	stylesCmd.SetOut(&out)
	defer stylesCmd.SetOut(nil)

	require.NoError(t, runStyles(stylesCmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(model.Styles())+1)
	assert.Contains(t, lines[1], "classic")
	assert.Contains(t, lines[6], "Neon")
	assert.Contains(t, lines[6], "1.3s")
}

func TestConfigInitWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	configPath = path
	defer func() { configPath = "" }()

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	defer configInitCmd.SetOut(nil)

	require.NoError(t, runConfigInit(configInitCmd, nil))
	assert.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "style: classic")
	assert.Equal(t, model.DefaultConfig(), loadConfig())

	require.Error(t, runConfigInit(configInitCmd, nil))
}
