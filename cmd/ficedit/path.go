package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// createPathCommand creates the path command.
func createPathCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the settings file ficedit edits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				return fmt.Errorf("failed to get all flag: %w", err)
			}
			if all {
				candidates := cliApp.CandidatePaths()
				if len(candidates) == 0 {
					_, _ = fmt.Fprintf(out, "No candidates: %s is not set\n", cliApp.Config().Settings.BaseDirEnv)
				}
				for _, candidate := range candidates {
					marker := " "
					if exists, _ := afero.Exists(deps.fs, candidate); exists {
						marker = "*"
					}
					_, _ = fmt.Fprintf(out, "%s %s\n", marker, candidate)
				}
				return nil
			}

			path, err := cliApp.ResolvePath()
			if errors.Is(err, settings.ErrNotFound) {
				_, _ = fmt.Fprintln(out, "No settings file found; use --settings or set settings.path in the config")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, path)
			return nil
		},
	}
	cmd.Flags().BoolP("all", "a", false, "List every candidate location, marking existing ones with *")
	return cmd
}
