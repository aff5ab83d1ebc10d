package main

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRestoreCycle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, true)

	out, err := env.run(t, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "No backups found")

	out, err = env.run(t, "backups")
	require.NoError(t, err)
	assert.Contains(t, out, "No backups found")

	out, err = env.run(t, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Backup created: /home/user/.config/Code/User/.ficedit-backups/settings.backup-")

	_, err = env.run(t, "delete", "upper", "--yes")
	require.NoError(t, err)

	out, err = env.run(t, "backups")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	out, err = env.run(t, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully restored settings from ")

	data, err := afero.ReadFile(env.fs, testSettingsPath)
	require.NoError(t, err)
	assert.Equal(t, testSettings, string(data))
}

func TestBackupCommandMissingSettings(t *testing.T) {
	t.Parallel()

	out, err := newTestEnv(t, false).run(t, "backup")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to do")
}
