package settings

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"github.com/wizzomafizzo/ficedit/internal/constants"
	"github.com/wizzomafizzo/ficedit/internal/logging"
)

const defaultFileMode os.FileMode = 0o600

// Options configures a Store. Zero values fall back to the defaults in
// the constants package.
type Options struct {
	Now            func() time.Time
	BackupDirName  string
	SectionKey     string
	RetentionCount int
}

// Store loads and saves a settings file, backing it up before every write.
type Store struct {
	fs   afero.Fs
	opts Options
}

// SaveResult describes what a successful Save did besides writing.
type SaveResult struct {
	BackupPath string
	Warnings   []Warning
}

// NewStore creates a Store over fs. A nil fs uses the OS filesystem.
func NewStore(fs afero.Fs, opts Options) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if opts.RetentionCount <= 0 {
		opts.RetentionCount = constants.DefaultRetentionCount
	}
	if opts.BackupDirName == "" {
		opts.BackupDirName = constants.BackupDirName
	}
	if opts.SectionKey == "" {
		opts.SectionKey = constants.SectionKey
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{fs: fs, opts: opts}
}

// Options returns the effective options after defaults were applied.
func (s *Store) Options() Options {
	return s.opts
}

// Load parses the settings file at path. Comments and trailing commas are
// accepted.
func (s *Store) Load(ctx context.Context, path string) (Root, error) {
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("settings file %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, &IOError{Op: "read settings file", Path: path, Err: err}
	}

	root := Root{}
	clean := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(clean)) > 0 {
		if err := decodeJSON(clean, &root); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if root == nil {
			return nil, &ParseError{Path: path, Err: errors.New("top-level value is not an object")}
		}
	}

	logging.Get(ctx).Debug().Str("path", path).Int("keys", len(root)).Msg("loaded settings")
	return root, nil
}

// Commands decodes the configured command section of root.
func (s *Store) Commands(root Root) (map[string]CommandRecord, error) {
	return root.Commands(s.opts.SectionKey)
}

// SetCommands replaces the configured command section of root.
func (s *Store) SetCommands(root Root, commands map[string]CommandRecord) {
	root.SetCommands(s.opts.SectionKey, commands)
}

// Save backs up the current file, if any, then overwrites it with root.
// Nothing is written when the backup fails.
func (s *Store) Save(ctx context.Context, path string, root Root) (*SaveResult, error) {
	data, err := encodeIndented(root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	backup, err := s.CreateBackup(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := s.writeFile(path, data); err != nil {
		return nil, err
	}

	logging.Get(ctx).Info().
		Str("path", path).
		Str("backup", backup.Path).
		Int("warnings", len(backup.Warnings)).
		Msg("saved settings")

	return &SaveResult{BackupPath: backup.Path, Warnings: backup.Warnings}, nil
}

// writeFile writes through a sibling temp file so a failed write never
// truncates the target.
func (s *Store) writeFile(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := s.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, mode); err != nil {
		_ = s.fs.Remove(tmp)
		return &IOError{Op: "write settings to file", Path: path, Err: err}
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return &IOError{Op: "replace settings file", Path: path, Err: err}
	}
	return nil
}
