package settings

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Locator finds the editor settings file among an ordered list of
// candidates rooted under a base directory taken from the environment.
type Locator struct {
	Fs         afero.Fs
	Getenv     func(string) string
	BaseDirEnv string
	// Candidates are slash-separated paths relative to the base directory,
	// highest priority first.
	Candidates []string
}

// Locate returns the first candidate that exists. It reports false when
// the base directory variable is unset or no candidate exists.
func (l *Locator) Locate() (string, bool) {
	fs := l.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	for _, candidate := range l.Paths() {
		info, err := fs.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Paths returns every absolute candidate path in priority order, or nil
// when the base directory variable is unset.
func (l *Locator) Paths() []string {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	base := getenv(l.BaseDirEnv)
	if l.BaseDirEnv == "" || base == "" {
		return nil
	}

	paths := make([]string, 0, len(l.Candidates))
	for _, candidate := range l.Candidates {
		paths = append(paths, filepath.Join(base, filepath.FromSlash(candidate)))
	}
	return paths
}
