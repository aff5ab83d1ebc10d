package settings

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCandidates = []string{
	"Code/User/settings.json",
	"Code - Insiders/User/settings.json",
	"VSCodium/User/settings.json",
}

func newTestLocator(fs afero.Fs, base string) *Locator {
	return &Locator{
		Fs:         fs,
		BaseDirEnv: "APPDATA",
		Getenv: func(key string) string {
			if key == "APPDATA" {
				return base
			}
			return ""
		},
		Candidates: testCandidates,
	}
}

func TestLocator_FindsSingleExistingCandidateAtAnyPosition(t *testing.T) {
	t.Parallel()

	base := filepath.Join("/", "appdata")
	for i, candidate := range testCandidates {
		i := i
		t.Run(candidate, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			want := filepath.Join(base, filepath.FromSlash(testCandidates[i]))
			require.NoError(t, afero.WriteFile(fs, want, []byte("{}"), 0o600))

			got, ok := newTestLocator(fs, base).Locate()
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestLocator_PrefersEarlierCandidate(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	base := filepath.Join("/", "appdata")
	insiders := filepath.Join(base, "Code - Insiders", "User", "settings.json")
	codium := filepath.Join(base, "VSCodium", "User", "settings.json")
	require.NoError(t, afero.WriteFile(fs, codium, []byte("{}"), 0o600))
	require.NoError(t, afero.WriteFile(fs, insiders, []byte("{}"), 0o600))

	got, ok := newTestLocator(fs, base).Locate()
	require.True(t, ok)
	assert.Equal(t, insiders, got)
}

func TestLocator_NoCandidateExists(t *testing.T) {
	t.Parallel()

	got, ok := newTestLocator(afero.NewMemMapFs(), "/appdata").Locate()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestLocator_BaseDirUnset(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, filepath.Join("Code", "User", "settings.json"), []byte("{}"), 0o600))

	locator := newTestLocator(fs, "")
	got, ok := locator.Locate()
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Nil(t, locator.Paths())
}

func TestLocator_IgnoresDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	base := filepath.Join("/", "appdata")
	require.NoError(t, fs.MkdirAll(filepath.Join(base, "Code", "User", "settings.json"), 0o750))

	_, ok := newTestLocator(fs, base).Locate()
	assert.False(t, ok)
}

func TestLocator_Paths(t *testing.T) {
	t.Parallel()

	base := filepath.Join("/", "appdata")
	paths := newTestLocator(afero.NewMemMapFs(), base).Paths()
	assert.Equal(t, []string{
		filepath.Join(base, "Code", "User", "settings.json"),
		filepath.Join(base, "Code - Insiders", "User", "settings.json"),
		filepath.Join(base, "VSCodium", "User", "settings.json"),
	}, paths)
}
