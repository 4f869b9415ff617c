package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// creates and returns the "config" command and its subcommands
func configCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored scan profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			// default action prints the active profile
			conf := props.Core.Conf()

			out, err := yaml.Marshal(conf)

			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.AddCommand(configList(props))
	cmd.AddCommand(configUse(props))
	cmd.AddCommand(configDelete(props))

	return cmd
}

// creates and returns the "config list" command
func configList(props *CommandProps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			confs, err := props.Core.GetConfigs()

			if err != nil {
				return err
			}

			active := props.Core.Conf()

			for _, conf := range confs {
				marker := " "

				if conf.Name == active.Name {
					marker = "*"
				}

				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%s %s\tport=%d\n",
					marker,
					conf.Name,
					conf.Scan.Port,
				)
			}

			return nil
		},
	}
}

// creates and returns the "config use" command
func configUse(props *CommandProps) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.Core.SetConfig(args[0])
		},
	}
}

// creates and returns the "config delete" command
func configDelete(props *CommandProps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.Core.DeleteConfig(args[0])
		},
	}
}
