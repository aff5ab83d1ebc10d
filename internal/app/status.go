package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// Status returns a human-readable report on config, settings file,
// commands and backups.
func (a *App) Status(ctx context.Context) (string, error) {
	var status strings.Builder

	// strings.Builder.WriteString never returns error, but satisfying linter
	writeString := func(format string, args ...any) {
		_, _ = status.WriteString(fmt.Sprintf(format, args...))
	}

	writeString("ficedit status:\n")
	writeString("===============\n\n")

	if exists, _ := afero.Exists(a.fs, a.configPath); exists {
		writeString("Config file: EXISTS\n")
		writeString("   Location: %s\n", a.configPath)
	} else {
		writeString("Config file: DEFAULTS\n")
		writeString("   Expected: %s\n", a.configPath)
	}

	path, err := a.ResolvePath()
	if errors.Is(err, settings.ErrNotFound) {
		writeString("Settings file: NOT FOUND\n")
		for _, candidate := range a.CandidatePaths() {
			writeString("   Tried: %s\n", candidate)
		}
		return status.String(), nil
	}
	if err != nil {
		return "", err
	}

	summaries, _, err := a.List(ctx)
	switch {
	case errors.Is(err, settings.ErrNotFound):
		writeString("Settings file: NOT FOUND\n")
		writeString("   Expected: %s\n", path)
		return status.String(), nil
	case err != nil:
		return "", err
	}

	writeString("Settings file: EXISTS\n")
	writeString("   Location: %s\n", path)
	writeString("Commands: %d in %q\n", len(summaries), a.config.Settings.SectionKey)

	backups, err := a.store.ListBackups(ctx, path)
	if err != nil {
		return "", err //nolint:wrapcheck // typed store error
	}
	writeString("Backups: %d of %d kept in %s\n", len(backups), a.store.Options().RetentionCount, a.store.BackupDir(path))
	if len(backups) > 0 {
		writeString("   Newest: %s\n", backups[0].Path)
	}

	return status.String(), nil
}
