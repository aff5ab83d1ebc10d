// Package app ties configuration, settings discovery, persistence and
// the command editor together for the CLI.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/ficedit/internal/commands"
	"github.com/wizzomafizzo/ficedit/internal/config"
	"github.com/wizzomafizzo/ficedit/internal/logging"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// RecordUpdate derives the record to save from the current one.
type RecordUpdate func(settings.CommandRecord) (settings.CommandRecord, error)

// App runs one-shot load, edit and save cycles against the settings file.
type App struct {
	fs           afero.Fs
	config       *config.Config
	store        *settings.Store
	locator      *settings.Locator
	configPath   string
	settingsPath string
}

// Config returns the loaded tool configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// ConfigPath returns the tool config file path in use.
func (a *App) ConfigPath() string {
	return a.configPath
}

// ResolvePath returns the settings file to operate on: the explicit
// path, then the configured path, then the first existing candidate.
func (a *App) ResolvePath() (string, error) {
	if a.settingsPath != "" {
		return a.settingsPath, nil
	}
	if a.config.Settings.Path != "" {
		return a.config.Settings.Path, nil
	}
	if path, ok := a.locator.Locate(); ok {
		return path, nil
	}
	return "", fmt.Errorf("settings file: %w", settings.ErrNotFound)
}

// CandidatePaths lists every location the locator probes.
func (a *App) CandidatePaths() []string {
	return a.locator.Paths()
}

// List returns a summary of every command, sorted by key, and the
// settings path it was read from.
func (a *App) List(ctx context.Context) ([]commands.Summary, string, error) {
	editor, path, err := a.load(ctx)
	if err != nil {
		return nil, path, err
	}
	return editor.Summaries(), path, nil
}

// Show returns a single command record.
func (a *App) Show(ctx context.Context, key string) (settings.CommandRecord, error) {
	key = strings.TrimSpace(key)
	editor, _, err := a.load(ctx)
	if err != nil {
		return settings.CommandRecord{}, err
	}
	return editor.Get(key) //nolint:wrapcheck // already names the key
}

// Add creates a command from the new-command template passed through update.
func (a *App) Add(
	ctx context.Context, key string, update RecordUpdate, mode commands.ReconcileMode,
) (*settings.SaveResult, error) {
	key = strings.TrimSpace(key)
	return a.mutate(ctx, func(editor *commands.Editor) error {
		if _, err := editor.Get(key); err == nil {
			return &settings.ValidationError{Key: key, Message: "command key already exists"}
		}

		rec, err := a.prepare(key, commands.NewTemplate(), update, mode)
		if err != nil {
			return err
		}
		return editor.Add(key, rec) //nolint:wrapcheck // validation error is final
	})
}

// Edit rewrites an existing command through update.
func (a *App) Edit(
	ctx context.Context, key string, update RecordUpdate, mode commands.ReconcileMode,
) (*settings.SaveResult, error) {
	key = strings.TrimSpace(key)
	return a.mutate(ctx, func(editor *commands.Editor) error {
		current, err := editor.Get(key)
		if err != nil {
			return err //nolint:wrapcheck // already names the key
		}

		rec, err := a.prepare(key, current, update, mode)
		if err != nil {
			return err
		}
		return editor.Update(key, rec) //nolint:wrapcheck // key checked above
	})
}

// Delete removes a command.
func (a *App) Delete(ctx context.Context, key string) (*settings.SaveResult, error) {
	key = strings.TrimSpace(key)
	return a.mutate(ctx, func(editor *commands.Editor) error {
		return editor.Delete(key) //nolint:wrapcheck // already names the key
	})
}

// Backup copies the settings file into the backup directory.
func (a *App) Backup(ctx context.Context) (*settings.BackupResult, error) {
	path, err := a.ResolvePath()
	if err != nil {
		return nil, err
	}
	if exists, _ := afero.Exists(a.fs, path); !exists {
		return nil, fmt.Errorf("settings file %s: %w", path, settings.ErrNotFound)
	}
	return a.store.CreateBackup(ctx, path) //nolint:wrapcheck // typed store error
}

// Backups lists existing backups, newest first.
func (a *App) Backups(ctx context.Context) ([]settings.Backup, string, error) {
	path, err := a.ResolvePath()
	if err != nil {
		return nil, "", err
	}
	backups, err := a.store.ListBackups(ctx, path)
	if err != nil {
		return nil, path, err //nolint:wrapcheck // typed store error
	}
	return backups, path, nil
}

// Restore copies the newest backup over the settings file.
func (a *App) Restore(ctx context.Context) (*settings.RestoreResult, string, error) {
	path, err := a.ResolvePath()
	if err != nil {
		return nil, "", err
	}
	result, err := a.store.RestoreLatestBackup(ctx, path)
	if err != nil {
		return nil, path, err //nolint:wrapcheck // typed store error
	}
	return result, path, nil
}

// InitConfig writes the default tool config when none exists. It
// reports whether a file was written.
func (a *App) InitConfig() (bool, error) {
	if _, err := a.fs.Stat(a.configPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config file %s: %w", a.configPath, err)
	}

	data, err := config.DefaultConfigYAML()
	if err != nil {
		return false, fmt.Errorf("failed to generate default config: %w", err)
	}

	if err := a.fs.MkdirAll(filepath.Dir(a.configPath), 0o750); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(a.fs, a.configPath, data, 0o600); err != nil {
		return false, fmt.Errorf("failed to write config file to %s: %w", a.configPath, err)
	}
	return true, nil
}

func (a *App) load(ctx context.Context) (*commands.Editor, string, error) {
	path, err := a.ResolvePath()
	if err != nil {
		return nil, "", err
	}

	root, err := a.store.Load(ctx, path)
	if err != nil {
		return nil, path, err //nolint:wrapcheck // typed store error
	}

	cmds, err := a.store.Commands(root)
	if err != nil {
		return nil, path, &settings.ParseError{Path: path, Err: err}
	}
	return commands.NewEditor(cmds), path, nil
}

func (a *App) mutate(ctx context.Context, apply func(*commands.Editor) error) (*settings.SaveResult, error) {
	path, err := a.ResolvePath()
	if err != nil {
		return nil, err
	}

	root, err := a.store.Load(ctx, path)
	if err != nil {
		return nil, err //nolint:wrapcheck // typed store error
	}

	cmds, err := a.store.Commands(root)
	if err != nil {
		return nil, &settings.ParseError{Path: path, Err: err}
	}

	editor := commands.NewEditor(cmds)
	if err := apply(editor); err != nil {
		return nil, err
	}

	a.store.SetCommands(root, editor.Commands())
	result, err := a.store.Save(ctx, path, root)
	if err != nil {
		return nil, err //nolint:wrapcheck // typed store error
	}

	for _, warning := range result.Warnings {
		logging.Get(ctx).Warn().Str("backup", warning.Path).Err(warning.Err).Msg("backup cleanup incomplete")
	}
	return result, nil
}

func (*App) prepare(
	key string, base settings.CommandRecord, update RecordUpdate, mode commands.ReconcileMode,
) (settings.CommandRecord, error) {
	rec := base
	if update != nil {
		var err error
		rec, err = update(base)
		if err != nil {
			return rec, err
		}
	}

	rec = commands.Normalize(rec)
	return commands.Reconcile(key, rec, mode) //nolint:wrapcheck // validation error is final
}
