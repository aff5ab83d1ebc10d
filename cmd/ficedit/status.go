package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show config, settings file and backup status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			status, err := cliApp.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), status)
			if err != nil {
				return fmt.Errorf("failed to print status: %w", err)
			}
			return nil
		},
	}
}

// createInitCommand creates the init command.
func createInitCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default ficedit config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			written, err := cliApp.InitConfig()
			if err != nil {
				return err //nolint:wrapcheck // already wrapped
			}

			out := cmd.OutOrStdout()
			if !written {
				_, _ = fmt.Fprintf(out, "Config already exists: %s\n", cliApp.ConfigPath())
				return nil
			}
			_, _ = fmt.Fprintf(out, "Config written: %s\n", cliApp.ConfigPath())
			return nil
		},
	}
}
