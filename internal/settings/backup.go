package settings

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/ficedit/internal/constants"
	"github.com/wizzomafizzo/ficedit/internal/logging"
)

const (
	backupExt = ".json"
	// maxSameSecondBackups bounds the suffix search for one timestamp.
	maxSameSecondBackups = 1000
)

// Backup is a timestamped copy of a settings file.
type Backup struct {
	ModTime time.Time
	Stamp   time.Time
	Path    string
	Seq     int
}

// BackupResult describes a CreateBackup call. Path is empty when there
// was no file to back up.
type BackupResult struct {
	Path     string
	Warnings []Warning
}

// RestoreResult describes a RestoreLatestBackup call. Restored is false
// when no backups exist.
type RestoreResult struct {
	BackupPath string
	Restored   bool
}

// BackupDir returns the backup directory for the settings file at path.
func (s *Store) BackupDir(path string) string {
	return filepath.Join(filepath.Dir(path), s.opts.BackupDirName)
}

// CreateBackup copies path into the backup directory and prunes old
// backups down to the retention count. Missing files are not an error.
func (s *Store) CreateBackup(ctx context.Context, path string) (*BackupResult, error) {
	info, err := s.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return &BackupResult{}, nil
	}
	if err != nil {
		return nil, &IOError{Op: "stat settings file", Path: path, Err: err}
	}

	dir := s.BackupDir(path)
	if err := s.fs.MkdirAll(dir, 0o750); err != nil {
		return nil, &IOError{Op: "create backup directory", Path: dir, Err: err}
	}

	target, err := s.nextBackupPath(path, s.opts.Now())
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, &IOError{Op: "read original file", Path: path, Err: err}
	}
	if err := afero.WriteFile(s.fs, target, data, info.Mode().Perm()); err != nil {
		return nil, &IOError{Op: "write backup file", Path: target, Err: err}
	}
	if err := s.fs.Chtimes(target, info.ModTime(), info.ModTime()); err != nil {
		return nil, &IOError{Op: "preserve backup modification time", Path: target, Err: err}
	}

	warnings := s.prune(ctx, path)

	logging.Get(ctx).Info().
		Str("path", path).
		Str("backup", target).
		Msg("created settings backup")

	return &BackupResult{Path: target, Warnings: warnings}, nil
}

// ListBackups returns the backups of path, newest first.
func (s *Store) ListBackups(_ context.Context, path string) ([]Backup, error) {
	dir := s.BackupDir(path)
	entries, err := afero.ReadDir(s.fs, dir)
	if errors.Is(err, os.ErrNotExist) {
		return []Backup{}, nil
	}
	if err != nil {
		return nil, &IOError{Op: "list backup directory", Path: dir, Err: err}
	}

	prefix := backupPrefix(path)
	backups := make([]Backup, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stamp, seq, ok := parseBackupName(prefix, entry.Name())
		if !ok {
			continue
		}
		backups = append(backups, Backup{
			Path:    filepath.Join(dir, entry.Name()),
			ModTime: entry.ModTime(),
			Stamp:   stamp,
			Seq:     seq,
		})
	}

	slices.SortFunc(backups, compareNewestFirst)
	return backups, nil
}

// RestoreLatestBackup copies the newest backup over path.
func (s *Store) RestoreLatestBackup(ctx context.Context, path string) (*RestoreResult, error) {
	backups, err := s.ListBackups(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(backups) == 0 {
		return &RestoreResult{}, nil
	}

	latest := backups[0].Path
	data, err := afero.ReadFile(s.fs, latest)
	if err != nil {
		return nil, &IOError{Op: "read backup file", Path: latest, Err: err}
	}
	if err := s.writeFile(path, data); err != nil {
		return nil, err
	}

	logging.Get(ctx).Info().Str("path", path).Str("backup", latest).Msg("restored settings backup")
	return &RestoreResult{Restored: true, BackupPath: latest}, nil
}

// prune removes backups beyond the retention count. Failures are
// collected, not returned.
func (s *Store) prune(ctx context.Context, path string) []Warning {
	logger := logging.Get(ctx)

	backups, err := s.ListBackups(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to list backups for pruning")
		return []Warning{{Path: s.BackupDir(path), Err: err}}
	}
	if len(backups) <= s.opts.RetentionCount {
		return nil
	}

	var warnings []Warning
	for _, old := range backups[s.opts.RetentionCount:] {
		if err := s.fs.Remove(old.Path); err != nil {
			logger.Warn().Err(err).Str("backup", old.Path).Msg("failed to remove old backup")
			warnings = append(warnings, Warning{Path: old.Path, Err: err})
			continue
		}
		logger.Debug().Str("backup", old.Path).Msg("removed old backup")
	}
	return warnings
}

func (s *Store) nextBackupPath(path string, now time.Time) (string, error) {
	dir := s.BackupDir(path)
	prefix := backupPrefix(path)
	for seq := 0; seq < maxSameSecondBackups; seq++ {
		if seq == 1 {
			continue
		}
		candidate := filepath.Join(dir, backupName(prefix, now, seq))
		exists, err := afero.Exists(s.fs, candidate)
		if err != nil {
			return "", &IOError{Op: "check backup file", Path: candidate, Err: err}
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", &IOError{
		Op:   "choose backup name",
		Path: dir,
		Err:  fmt.Errorf("more than %d backups at %s", maxSameSecondBackups, now.Format(constants.BackupTimeLayout)),
	}
}

// backupPrefix is "<basename>.backup-" with the extension stripped.
func backupPrefix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + constants.BackupInfix
}

func backupName(prefix string, stamp time.Time, seq int) string {
	name := prefix + stamp.Format(constants.BackupTimeLayout)
	if seq > 0 {
		name += "-" + strconv.Itoa(seq)
	}
	return name + backupExt
}

func parseBackupName(prefix, name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, backupExt) {
		return time.Time{}, 0, false
	}
	middle := strings.TrimSuffix(strings.TrimPrefix(name, prefix), backupExt)
	if len(middle) < len(constants.BackupTimeLayout) {
		return time.Time{}, 0, false
	}

	stamp, err := time.ParseInLocation(constants.BackupTimeLayout, middle[:len(constants.BackupTimeLayout)], time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}

	rest := middle[len(constants.BackupTimeLayout):]
	if rest == "" {
		return stamp, 0, true
	}
	if !strings.HasPrefix(rest, "-") {
		return time.Time{}, 0, false
	}
	seq, err := strconv.Atoi(rest[1:])
	if err != nil || seq < 2 {
		return time.Time{}, 0, false
	}
	return stamp, seq, true
}

func compareNewestFirst(a, b Backup) int {
	if c := b.ModTime.Compare(a.ModTime); c != 0 {
		return c
	}
	if c := b.Stamp.Compare(a.Stamp); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Seq, a.Seq); c != 0 {
		return c
	}
	return strings.Compare(b.Path, a.Path)
}
