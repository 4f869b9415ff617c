package commands

import (
	"errors"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tbeaulieu/modscout/internal/discovery"
	"github.com/tbeaulieu/modscout/internal/event"
	"github.com/tbeaulieu/modscout/internal/logger"
	"github.com/tbeaulieu/modscout/internal/modserver"
	"github.com/tbeaulieu/modscout/internal/poll"
	"github.com/tbeaulieu/modscout/internal/stream"
)

// creates and returns the "watch" command
func watch(props *CommandProps) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "watch <host[:port]>",
		Short: "Connect to a mod server and stream coordinate snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			endpoint, err := parseEndpoint(args[0])

			if err != nil {
				return err
			}

			snapshots := make(chan event.Event, 100)
			listenerID := props.Core.RegisterSnapshotListener(snapshots)

			defer props.Core.RemoveListener(listenerID)

			if _, err := props.Core.Connect(*endpoint); err != nil {
				return err
			}

			defer props.Core.Disconnect()

			if listenAddr != "" {
				streamServer := stream.NewServer(listenAddr, props.Events)

				go func() {
					if err := streamServer.Run(); err != nil {
						log.Error().Err(err).Msg("stream server stopped")
					}
				}()

				defer streamServer.Shutdown(cmd.Context())
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case <-sigChan:
					return nil
				case evt := <-snapshots:
					snapshot, ok := evt.Payload.(*poll.Snapshot)

					if !ok {
						continue
					}

					coords := snapshot.Coordinates

					log.Info().
						Str("player", coords.PlayerName).
						Str("dimension", coords.Dimension).
						Float64("x", coords.X).
						Float64("y", coords.Y).
						Float64("z", coords.Z).
						Msg("position")
				}
			}
		},
	}

	cmd.Flags().StringVar(
		&listenAddr,
		"listen",
		"",
		"also serve snapshots over websocket at this address (e.g. 127.0.0.1:9090)",
	)

	return cmd
}

// parseEndpoint turns "host" or "host:port" into an Endpoint, defaulting
// the port
func parseEndpoint(arg string) (*modserver.Endpoint, error) {
	host, portStr, err := net.SplitHostPort(arg)

	if err != nil {
		// no port in arg
		return &modserver.Endpoint{
			Host: arg,
			Port: discovery.DefaultPort,
		}, nil
	}

	port, err := strconv.Atoi(portStr)

	if err != nil || port < 1 || port > 65535 {
		return nil, errors.New("invalid port in endpoint")
	}

	return &modserver.Endpoint{Host: host, Port: port}, nil
}
