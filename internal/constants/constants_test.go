package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "findInCurrentFile", SectionKey)
}

func TestBackupDefaults(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 20, DefaultRetentionCount)
	assert.Equal(t, ".ficedit-backups", BackupDirName)
	assert.Equal(t, "2006-01-02_15-04-05", BackupTimeLayout)
}

func TestLogFilename(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ficedit.log", LogFilename)
}

func TestDefaultBaseDirEnv(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "APPDATA", DefaultBaseDirEnv("windows"))
	assert.Equal(t, "HOME", DefaultBaseDirEnv("linux"))
	assert.Equal(t, "HOME", DefaultBaseDirEnv("darwin"))
}

func TestDefaultCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		goos string
		want []string
	}{
		{
			name: "windows",
			goos: "windows",
			want: []string{
				"Code/User/settings.json",
				"Code - Insiders/User/settings.json",
				"VSCodium/User/settings.json",
			},
		},
		{
			name: "darwin",
			goos: "darwin",
			want: []string{
				"Library/Application Support/Code/User/settings.json",
				"Library/Application Support/Code - Insiders/User/settings.json",
				"Library/Application Support/VSCodium/User/settings.json",
			},
		},
		{
			name: "linux",
			goos: "linux",
			want: []string{
				".config/Code/User/settings.json",
				".config/Code - Insiders/User/settings.json",
				".config/VSCodium/User/settings.json",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DefaultCandidates(tt.goos))
		})
	}
}
