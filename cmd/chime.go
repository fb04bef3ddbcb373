package main

import (
	"fmt"
	"text/tabwriter"

	"timetimer/internal/chime"
	"timetimer/internal/core/model"

	"github.com/spf13/cobra"
)

var chimeCmd = &cobra.Command{
	Use:   "chime [style]",
	Short: "Play a completion chime",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChime,
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List available styles",
	Args:  cobra.NoArgs,
	RunE:  runStyles,
}

func init() {
	rootCmd.AddCommand(chimeCmd)
	rootCmd.AddCommand(stylesCmd)
}

func runChime(cmd *cobra.Command, args []string) error {
	config := loadConfig()
	style := config.Style
	if len(args) == 1 {
		parsed, err := model.ParseStyle(args[0])
		if err != nil {
			return err
		}
		style = parsed
	}

	player := chime.NewPlayer(chime.Config{Volume: config.ChimeVolume}, chime.NewSpeaker(chime.SampleRate))
	player.Play(style)
	player.Wait()
	return nil
}

func runStyles(cmd *cobra.Command, args []string) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "STYLE\tNAME\tTONES\tLENGTH")
	for _, style := range model.Styles() {
		tones := chime.Pattern(style)
		fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n", style, style.DisplayName(), len(tones), chime.Length(tones))
	}
	return writer.Flush()
}
