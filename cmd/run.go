package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"timetimer/internal/chime"
	"timetimer/internal/core/countdown"
	"timetimer/internal/core/model"
	"timetimer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	runMinutes int
	runStyle   string
	runFace    string
	runSilent  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Count down in the terminal",
	Long:  "Run a single countdown in the terminal and play the style's chime when it completes.",
	Args:  cobra.NoArgs,
	RunE:  runCountdown,
}

func init() {
	runCmd.Flags().IntVarP(&runMinutes, "minutes", "m", 0, "duration in minutes, clamped to 1-60 (default from config)")
	runCmd.Flags().StringVarP(&runStyle, "style", "s", "", "chime style (default from config)")
	runCmd.Flags().StringVar(&runFace, "face", "", "dial face: hour or duration (default from config)")
	runCmd.Flags().BoolVar(&runSilent, "silent", false, "do not play a chime on completion")
	rootCmd.AddCommand(runCmd)
}

func runCountdown(cmd *cobra.Command, args []string) error {
	config := loadConfig()
	if runMinutes != 0 {
		config.DefaultMinutes = runMinutes
	}
	if runStyle != "" {
		style, err := model.ParseStyle(runStyle)
		if err != nil {
			return err
		}
		config.Style = style
	}
	if runFace != "" {
		face, ok := model.ParseFace(runFace)
		if !ok {
			return fmt.Errorf("unknown face %q: want hour or duration", runFace)
		}
		config.Face = face
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var output chime.Output = chime.NewSpeaker(chime.SampleRate)
	if runSilent {
		output = chime.Discard{}
	}
	player := chime.NewPlayer(chime.Config{Volume: config.ChimeVolume}, output)

	_, err := countdownLoop(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), config, countdown.Config{TickInterval: config.TickInterval}, player)
	player.Wait()
	return err
}

// countdownLoop runs one countdown as a bubbletea program until it completes
// or ctx is cancelled. Engine calls only happen inside the program's update
// loop. player chimes on completion.
func countdownLoop(ctx context.Context, in io.Reader, out io.Writer, config model.Config, options countdown.Config, player *chime.Player) (bool, error) {
	engine := countdown.New(config.DefaultMinutes)
	chime.PlayOnComplete(engine, config.ChimeDelay, func() model.Style { return config.Style }, player)

	var program *tea.Program
	options.Dispatch = tui.Dispatch(func(msg tea.Msg) { program.Send(msg) })
	runner, err := countdown.NewRunner(engine, options)
	if err != nil {
		return false, err
	}
	defer runner.Close()

	program = tea.NewProgram(
		tui.NewCountdownModel(runner, config.Face, config.Style),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("run countdown: %w", err)
	}
	result, ok := final.(tui.CountdownModel)
	if !ok {
		return false, nil
	}
	return result.Completed(), nil
}
