package main

import (
	"fmt"

	"timetimer/internal/storage"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the startup config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config template with the default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		resolved, err := storage.ResolveConfigPath(appName)
		if err != nil {
			return err
		}
		path = resolved
	}

	if err := storage.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
