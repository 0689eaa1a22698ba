package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/config"
)

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect playground configuration files",
	}
	cmd.AddCommand(newConfigValidateCmd(flags))
	cmd.AddCommand(newConfigDefaultCmd())
	return cmd
}

func newConfigValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Parse and validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := openLogger(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			cfg, err := config.ParseConfig(args[0])
			if err != nil {
				log.Debug("config rejected", "path", args[0], "error", err.Error())
				return newCommandError("validate config", args[0], err, "Fix the reported field and run the command again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (version %s, %d anchors)\n", args[0], cfg.Version, len(cfg.Anchors))
			return nil
		},
	}
}

func newConfigDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default",
		Short: "Print the built-in configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Default())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
