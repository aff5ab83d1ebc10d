package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/ficedit/internal/config"
	"github.com/wizzomafizzo/ficedit/internal/settings"
	"github.com/wizzomafizzo/ficedit/internal/storage"
)

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	Fs     afero.Fs
	Now    func() time.Time
	Getenv func(string) string
	// ConfigPath is the tool config file; empty means the XDG default.
	ConfigPath string
	// SettingsPath bypasses the locator when set.
	SettingsPath string
}

// NewAppWithOptions loads the tool config and builds an App.
func NewAppWithOptions(opts AppOptions) (*App, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = storage.New(fs).GetConfigPath()
	}

	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	return &App{
		fs:           fs,
		config:       cfg,
		configPath:   configPath,
		settingsPath: opts.SettingsPath,
		store: settings.NewStore(fs, settings.Options{
			RetentionCount: cfg.Backup.RetentionCount,
			BackupDirName:  cfg.Backup.DirName,
			SectionKey:     cfg.Settings.SectionKey,
			Now:            opts.Now,
		}),
		locator: &settings.Locator{
			Fs:         fs,
			Getenv:     getenv,
			BaseDirEnv: cfg.Settings.BaseDirEnv,
			Candidates: cfg.Settings.Candidates,
		},
	}, nil
}
