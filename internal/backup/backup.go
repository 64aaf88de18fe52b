// Package backup creates timestamped copies of target config files before
// they are overwritten by a deployment.
//
// Backups live in a backups/ directory next to the target file, named
// <file>.backup.<timestamp>. Older backups beyond the retention count are
// pruned after each new backup.
package backup

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// DefaultRetentionCount is the default number of backups retained per target file.
const DefaultRetentionCount = 5

// timestampLayout formats backup timestamps, e.g. 20260825_143052.
const timestampLayout = "20060102_150405"

// Manager handles backup creation and retention pruning.
type Manager struct {
	retentionCount int
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionCount sets the number of backups to retain per target file.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithClock sets the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a new backup Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		retentionCount: DefaultRetentionCount,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create backs up the file at path into a backups/ directory beside it.
// A missing original is not an error; it returns an empty path and nil.
// Returns the path of the created backup.
func (m *Manager) Create(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "stat %s", path)
	}

	backupDir := filepath.Join(filepath.Dir(path), "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	base := filepath.Base(path)
	backupPath := filepath.Join(backupDir, base+".backup."+m.now().Format(timestampLayout))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", errors.Wrap(err, "writing backup")
	}

	if err := m.prune(backupDir, base); err != nil {
		return "", errors.Wrap(err, "pruning old backups")
	}

	return backupPath, nil
}

// List returns the backup file paths for the file at path, newest first.
func (m *Manager) List(path string) ([]string, error) {
	backupDir := filepath.Join(filepath.Dir(path), "backups")
	names, err := backupNames(backupDir, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = filepath.Join(backupDir, name)
	}
	return out, nil
}

// prune removes backups of base beyond the retention count, oldest first.
func (m *Manager) prune(backupDir, base string) error {
	names, err := backupNames(backupDir, base)
	if err != nil {
		return err
	}

	for _, name := range names[min(m.retentionCount, len(names)):] {
		if err := os.Remove(filepath.Join(backupDir, name)); err != nil {
			return errors.Wrapf(err, "removing %s", name)
		}
	}
	return nil
}

// backupNames lists backup file names for base in backupDir, newest first.
// The timestamp format sorts lexically, so reverse lexical order is reverse
// chronological order.
func backupNames(backupDir, base string) ([]string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	prefix := base + ".backup."
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			names = append(names, entry.Name())
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
