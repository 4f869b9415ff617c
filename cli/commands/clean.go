package commands

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "clean" command
func clean() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the local database and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := []string{
				viper.GetString("database-file"),
				viper.GetString("log-file"),
			}

			for _, path := range paths {
				if path == "" {
					continue
				}

				if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			return nil
		},
	}
}
