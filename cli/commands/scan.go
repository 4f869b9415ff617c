package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/util"
)

// creates and returns the "scan" command
func scan(props *CommandProps) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan likely subnets for mod servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, props, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "mod server port (defaults to profile)")

	return cmd
}

// runScan performs one scan and prints the ranked results. Shared with
// the root command so bare invocations scan too.
func runScan(cmd *cobra.Command, props *CommandProps, port int) error {
	log := logger.New()

	if netInfo, err := util.GetNetworkInfo(); err == nil {
		log.Info().
			Str("interface", netInfo.Interface.Name).
			Str("gateway", netInfo.Gateway.String()).
			Str("cidr", netInfo.Cidr).
			Msg("local network")
	} else {
		log.Debug().Err(err).Msg("failed to detect local network info")
	}

	results := props.Core.Scan(port)

	if len(results) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no mod servers found")
		return nil
	}

	for i, result := range results {
		state := "online"

		if !result.IsOnline {
			state = "offline"
		}

		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%d\t%s\t%s\t%s\n",
			i+1,
			result.Endpoint.Addr(),
			result.PlayerName,
			state,
		)
	}

	return nil
}
