package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbeaulieu/modscout/internal/name"
)

// creates and returns the "version" command
func version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name.APP_NAME, name.VERSION)
		},
	}
}
