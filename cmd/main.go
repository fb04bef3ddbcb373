// TimeTimer - a visual countdown timer.
//
// Without a subcommand the desktop dial is opened; the subcommands run the
// same countdown engine from a terminal.
package main

import (
	"fmt"
	"log"
	"os"

	"timetimer/internal/core/model"
	"timetimer/internal/storage"

	"github.com/spf13/cobra"
)

const appName = "TimeTimer"

var (
	version    = "dev"
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "timetimer",
	Short: "TimeTimer - visual countdown timer",
	Long: `TimeTimer shows remaining time as a shrinking colored sector on a dial.

  timetimer                         Open the desktop timer
  timetimer run --minutes 5         Count down in the terminal
  timetimer chime neon              Play a completion chime
  timetimer styles                  List available styles
  timetimer config init             Write a config template`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/TimeTimer/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns the startup config. Read errors are logged and the
// defaults are used instead.
func loadConfig() model.Config {
	var (
		config model.Config
		err    error
	)
	if configPath != "" {
		config, err = storage.LoadConfigFile(configPath)
	} else {
		config, err = storage.LoadConfig(appName)
	}
	if err != nil {
		log.Printf("config: %v", err)
	}
	return config
}
