package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/ficedit/internal/app"
	"github.com/wizzomafizzo/ficedit/internal/logging"
	"github.com/wizzomafizzo/ficedit/internal/prompt"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// commandDeps holds what commands need from the outside world.
type commandDeps struct {
	fs          afero.Fs
	newPrompter func() prompt.Prompter
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(&commandDeps{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
	})
}

func newRootCommand(deps *commandDeps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ficedit",
		Short: "Edit Find in Current File commands in VS Code settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to ficedit config file (default XDG config dir)")
	rootCmd.PersistentFlags().StringP("settings", "s", "", "Path to settings.json (skips auto-detection)")

	rootCmd.AddCommand(
		createPathCommand(deps),
		createListCommand(deps),
		createShowCommand(deps),
		createAddCommand(deps),
		createEditCommand(deps),
		createDeleteCommand(deps),
		createBackupCommand(deps),
		createBackupsCommand(deps),
		createRestoreCommand(deps),
		createStatusCommand(deps),
		createInitCommand(deps),
	)

	return rootCmd
}

// newApp builds an App from the persistent flags and returns a context
// carrying a logger configured from the loaded config.
func (d *commandDeps) newApp(cmd *cobra.Command) (context.Context, *app.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	settingsPath, err := cmd.Flags().GetString("settings")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get settings flag: %w", err)
	}

	cliApp, err := app.NewAppWithOptions(app.AppOptions{
		Fs:           d.fs,
		ConfigPath:   configPath,
		SettingsPath: settingsPath,
	})
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // already wrapped with config path
	}

	logCfg := cliApp.Config().Logging
	level, err := logging.ParseLevel(logCfg.Level)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // validated on load
	}

	ctx, err := logging.New(cmd.Context(), d.fs, logging.Config{
		Path:       logCfg.Path,
		MaxSize:    logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAge:     logCfg.MaxAge,
		Level:      level,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logging.Get(ctx).Debug().
		Str("command", cmd.Name()).
		Str("config", cliApp.ConfigPath()).
		Msg("ficedit started")
	return ctx, cliApp, nil
}

// informational turns a missing settings file or command into a plain
// message on out and a successful exit.
func informational(out io.Writer, err error) error {
	if errors.Is(err, settings.ErrNotFound) {
		_, _ = fmt.Fprintf(out, "Nothing to do: %v\n", err)
		return nil
	}
	return err
}

func printWarnings(out io.Writer, warnings []settings.Warning) {
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(out, "Warning: %v\n", warning)
	}
}
