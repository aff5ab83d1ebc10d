package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/ficedit/internal/app"
	"github.com/wizzomafizzo/ficedit/internal/commands"
	"github.com/wizzomafizzo/ficedit/internal/prompt"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// createListCommand creates the list command.
func createListCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			summaries, path, err := cliApp.List(ctx)
			if err != nil {
				return informational(out, err)
			}

			if len(summaries) == 0 {
				_, _ = fmt.Fprintf(out, "No commands defined in %s\n", path)
				return nil
			}

			bold := color.New(color.Bold)
			for _, summary := range summaries {
				_, _ = bold.Fprintf(out, "%s", summary.Key)
				_, _ = fmt.Fprintf(out, "  %s  (%s)\n", summary.Title, pairInfo(summary))
				_, _ = fmt.Fprintf(out, "    %s\n", summary.Description)
			}
			return nil
		},
	}
}

func pairInfo(summary commands.Summary) string {
	info := fmt.Sprintf("%d find, %d replace", summary.FindCount, summary.ReplaceCount)
	if summary.IsRegex {
		info += ", regex"
	}
	return info
}

// createShowCommand creates the show command.
func createShowCommand(deps *commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "show KEY",
		Short: "Show one command in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rec, err := cliApp.Show(ctx, args[0])
			if err != nil {
				return informational(out, err)
			}
			printRecord(out, args[0], rec)
			return nil
		},
	}
}

func printRecord(out io.Writer, key string, rec settings.CommandRecord) {
	_, _ = color.New(color.Bold).Fprintf(out, "%s\n", key)
	_, _ = fmt.Fprintf(out, "Title:       %s\n", rec.Title)
	_, _ = fmt.Fprintf(out, "Description: %s\n", rec.Description)
	_, _ = fmt.Fprintf(out, "Regex:       %t\n", rec.IsRegex)
	if len(rec.Find) != len(rec.Replace) {
		_, _ = fmt.Fprintf(out, "Warning: %d find and %d replace entries\n", len(rec.Find), len(rec.Replace))
	}
	for i, pair := range rec.Pairs() {
		_, _ = fmt.Fprintf(out, "  %d. %q -> %q\n", i+1, pair.Find, pair.Replace)
	}
}

// createAddCommand creates the add command.
func createAddCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add KEY",
		Short: "Add a new command",
		Long: "Add a new command. Fields not given on the command line keep the " +
			"new-command template values.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordCommand(cmd, deps, args[0], (*app.App).Add, "Added")
		},
	}
	addRecordFlags(cmd)
	return cmd
}

// createEditCommand creates the edit command.
func createEditCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit KEY",
		Short: "Edit an existing command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordCommand(cmd, deps, args[0], (*app.App).Edit, "Updated")
		},
	}
	addRecordFlags(cmd)
	return cmd
}

type recordOperation func(
	*app.App, context.Context, string, app.RecordUpdate, commands.ReconcileMode,
) (*settings.SaveResult, error)

func runRecordCommand(cmd *cobra.Command, deps *commandDeps, key string, operation recordOperation, verb string) error {
	ctx, cliApp, err := deps.newApp(cmd)
	if err != nil {
		return err
	}

	modeName, err := cmd.Flags().GetString("reconcile")
	if err != nil {
		return fmt.Errorf("failed to get reconcile flag: %w", err)
	}
	mode, err := commands.ParseReconcileMode(modeName)
	if err != nil {
		return err //nolint:wrapcheck // lists valid modes
	}

	update, closePrompter, err := recordUpdateFromFlags(cmd, deps, key)
	if err != nil {
		return err
	}
	defer closePrompter()

	out := cmd.OutOrStdout()
	result, err := operation(cliApp, ctx, key, update, mode)
	if err != nil {
		return informational(out, err)
	}

	_, _ = fmt.Fprintf(out, "%s command '%s'\n", verb, strings.TrimSpace(key))
	if result.BackupPath != "" {
		_, _ = fmt.Fprintf(out, "Backup created: %s\n", result.BackupPath)
	}
	printWarnings(out, result.Warnings)
	return nil
}

func addRecordFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Command title")
	cmd.Flags().String("description", "", "Command description")
	cmd.Flags().Bool("regex", false, "Treat find entries as regular expressions")
	cmd.Flags().StringArray("find", nil, "Find entry (repeatable)")
	cmd.Flags().StringArray("replace", nil, "Replace entry (repeatable)")
	cmd.Flags().String("reconcile", string(commands.ReconcileStrict),
		"How to handle unequal find/replace counts: "+strings.Join(reconcileModeNames(), "|"))
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for every field")
}

func reconcileModeNames() []string {
	names := make([]string, 0, len(commands.ReconcileModes))
	for _, mode := range commands.ReconcileModes {
		names = append(names, string(mode))
	}
	return names
}

// recordUpdateFromFlags applies changed flags to the record, then runs
// the interactive prompts when requested. The returned func releases
// the terminal.
func recordUpdateFromFlags(cmd *cobra.Command, deps *commandDeps, key string) (app.RecordUpdate, func(), error) {
	flags := cmd.Flags()
	interactive, err := flags.GetBool("interactive")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get interactive flag: %w", err)
	}

	var (
		title, description string
		isRegex            bool
		find, replace      []string
	)
	for name, target := range map[string]*string{"title": &title, "description": &description} {
		if *target, err = flags.GetString(name); err != nil {
			return nil, nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
	}
	if isRegex, err = flags.GetBool("regex"); err != nil {
		return nil, nil, fmt.Errorf("failed to get regex flag: %w", err)
	}
	if find, err = flags.GetStringArray("find"); err != nil {
		return nil, nil, fmt.Errorf("failed to get find flag: %w", err)
	}
	if replace, err = flags.GetStringArray("replace"); err != nil {
		return nil, nil, fmt.Errorf("failed to get replace flag: %w", err)
	}

	var prompter prompt.Prompter
	closePrompter := func() {}
	if interactive {
		prompter = deps.newPrompter()
		closePrompter = func() { _ = prompter.Close() }
	}

	update := func(rec settings.CommandRecord) (settings.CommandRecord, error) {
		if flags.Changed("title") {
			rec.Title = title
		}
		if flags.Changed("description") {
			rec.Description = description
		}
		if flags.Changed("regex") {
			rec.IsRegex = isRegex
		}
		if flags.Changed("find") {
			rec.Find = find
		}
		if flags.Changed("replace") {
			rec.Replace = replace
		}
		if prompter != nil {
			return prompt.RecordWithPrompter(prompter, strings.TrimSpace(key), rec) //nolint:wrapcheck // ErrCancelled is final
		}
		return rec, nil
	}
	return update, closePrompter, nil
}

// createDeleteCommand creates the delete command.
func createDeleteCommand(deps *commandDeps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a command",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cliApp, err := deps.newApp(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			key := args[0]
			if _, err := cliApp.Show(ctx, key); err != nil {
				return informational(out, err)
			}

			yes, err := cmd.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("failed to get yes flag: %w", err)
			}
			if !yes {
				confirmed, err := confirmDelete(deps, key)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(out, "Delete cancelled")
					return nil
				}
			}

			result, err := cliApp.Delete(ctx, key)
			if err != nil {
				return informational(out, err)
			}
			_, _ = fmt.Fprintf(out, "Deleted command '%s'\n", key)
			_, _ = fmt.Fprintf(out, "Backup created: %s\n", result.BackupPath)
			printWarnings(out, result.Warnings)
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Delete without asking")
	return cmd
}

func confirmDelete(deps *commandDeps, key string) (bool, error) {
	prompter := deps.newPrompter()
	defer func() { _ = prompter.Close() }()

	confirmed, err := prompt.ConfirmWithPrompter(prompter, fmt.Sprintf("Delete command '%s'?", key))
	if err != nil {
		return false, err //nolint:wrapcheck // ErrCancelled is final
	}
	return confirmed, nil
}
