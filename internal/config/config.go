// Package config loads ficedit's own YAML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/ficedit/internal/logging"
)

type Config struct {
	Settings SettingsConfig `yaml:"settings" mapstructure:"settings"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
	Backup   BackupConfig   `yaml:"backup" mapstructure:"backup"`
}

// SettingsConfig controls where the editor settings file is found and
// which section holds the commands.
type SettingsConfig struct {
	// Path skips candidate probing when set.
	Path       string   `yaml:"path,omitempty" mapstructure:"path"`
	SectionKey string   `yaml:"section_key" mapstructure:"section_key"`
	BaseDirEnv string   `yaml:"base_dir_env" mapstructure:"base_dir_env"`
	Candidates []string `yaml:"candidates" mapstructure:"candidates"`
}

type BackupConfig struct {
	DirName        string `yaml:"dir_name" mapstructure:"dir_name"`
	RetentionCount int    `yaml:"retention_count" mapstructure:"retention_count"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Path       string `yaml:"path,omitempty" mapstructure:"path"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// Load reads the config file at path from fs. A missing file yields the
// defaults.
func Load(fs afero.Fs, path string) (*Config, error) {
	viperInstance := newViper(fs)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config file %s: %w", path, err)
	}
	if exists {
		viperInstance.SetConfigFile(path)
		viperInstance.SetConfigType("yaml")
		if err := viperInstance.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return unmarshal(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper(afero.NewMemMapFs())
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

func newViper(fs afero.Fs) *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetFs(fs)

	defaults := DefaultConfig()
	viperInstance.SetDefault("settings.path", defaults.Settings.Path)
	viperInstance.SetDefault("settings.section_key", defaults.Settings.SectionKey)
	viperInstance.SetDefault("settings.base_dir_env", defaults.Settings.BaseDirEnv)
	viperInstance.SetDefault("settings.candidates", defaults.Settings.Candidates)
	viperInstance.SetDefault("backup.dir_name", defaults.Backup.DirName)
	viperInstance.SetDefault("backup.retention_count", defaults.Backup.RetentionCount)
	viperInstance.SetDefault("logging.level", defaults.Logging.Level)
	viperInstance.SetDefault("logging.path", defaults.Logging.Path)
	viperInstance.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	viperInstance.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viperInstance.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	return viperInstance
}

func unmarshal(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Settings.SectionKey) == "" {
		return errors.New("settings.section_key cannot be empty")
	}

	if c.Settings.Path == "" {
		if c.Settings.BaseDirEnv == "" {
			return errors.New("settings.base_dir_env is required when settings.path is not set")
		}
		if len(c.Settings.Candidates) == 0 {
			return errors.New("settings.candidates is required when settings.path is not set")
		}
	}

	if c.Backup.RetentionCount < 1 {
		return fmt.Errorf("backup.retention_count must be at least 1, got %d", c.Backup.RetentionCount)
	}

	dirName := c.Backup.DirName
	if dirName == "" || dirName == "." || dirName == ".." || strings.ContainsAny(dirName, `/\`) {
		return fmt.Errorf("backup.dir_name must be a plain directory name, got %q", dirName)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err //nolint:wrapcheck // already descriptive
	}

	return nil
}
