package config

import (
	"fmt"
	"runtime"

	"github.com/wizzomafizzo/ficedit/internal/constants"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the default ficedit configuration
func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			SectionKey: constants.SectionKey,
			BaseDirEnv: constants.DefaultBaseDirEnv(runtime.GOOS),
			Candidates: constants.DefaultCandidates(runtime.GOOS),
		},
		Backup: BackupConfig{
			DirName:        constants.BackupDirName,
			RetentionCount: constants.DefaultRetentionCount,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}
