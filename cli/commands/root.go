package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tbeaulieu/modscout/internal/core"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/name"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Core   *core.Core
	Events event.Manager
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool

	cmd := &cobra.Command{
		Use:   name.APP_NAME,
		Short: "Discover and follow game-mod servers on your LAN",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// scanning is the default action
			return runScan(cmd, props, 0)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.AddCommand(scan(props))
	cmd.AddCommand(watch(props))
	cmd.AddCommand(configCmd(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(version())

	return cmd
}
