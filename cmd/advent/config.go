package main

import (
	"fmt"

	"github.com/danmuck/advent2024/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create advent.toml",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config template to --config",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationIgnoreConfigErrors: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteTemplate(a.configPath, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote config template to %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Encode(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check --config for errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The root pre-run already loaded and validated the file.
			if !a.loaded {
				return fmt.Errorf("no config file at %s", a.configPath)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Validated config at %s\n", a.configPath)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, validateCmd)
	return cmd
}
