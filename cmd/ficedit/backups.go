package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const backupTimeFormat = "2006-01-02 15:04:05"

// createBackupCommand creates the backup command.
func createBackupCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Create a backup of settings.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := cliApp.Backup(ctx)
			if err != nil {
				return informational(out, err)
			}
			_, _ = fmt.Fprintf(out, "Backup created: %s\n", result.Path)
			printWarnings(out, result.Warnings)
			return nil
		},
	}
}

// createBackupsCommand creates the backups command.
func createBackupsCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "backups",
		Short: "List backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			backups, path, err := cliApp.Backups(ctx)
			if err != nil {
				return informational(out, err)
			}
			if len(backups) == 0 {
				_, _ = fmt.Fprintf(out, "No backups found for %s\n", path)
				return nil
			}
			for _, backup := range backups {
				_, _ = fmt.Fprintf(out, "%s  %s\n", backup.ModTime.Format(backupTimeFormat), backup.Path)
			}
			return nil
		},
	}
}

// createRestoreCommand creates the restore command.
func createRestoreCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore settings.json from the newest backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, path, err := cliApp.Restore(ctx)
			if err != nil {
				return informational(out, err)
			}
			if !result.Restored {
				_, _ = fmt.Fprintf(out, "No backups found for %s\n", path)
				return nil
			}
			_, _ = fmt.Fprintf(out, "Successfully restored settings from %s\n", result.BackupPath)
			return nil
		},
	}
}
