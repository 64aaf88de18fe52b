package deploy

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/thoreinstein/vibe/internal/backup"
	"github.com/thoreinstein/vibe/internal/errors"
	"github.com/thoreinstein/vibe/internal/paths"
	"github.com/thoreinstein/vibe/internal/settings"
	"github.com/thoreinstein/vibe/pkg/fileutil"
)

// targetFilePerm is the permission for deployed config files.
const targetFilePerm = 0o644

// Result describes one successful target deployment.
type Result struct {
	// Target is the target identifier.
	Target string

	// Path is the config file that was written.
	Path string

	// Servers is the number of server entries in the deployed document.
	Servers int

	// Excluded is the number of builtin servers filtered out for this target.
	Excluded int

	// BackupPath is the backup of the previous file, empty if none existed.
	BackupPath string
}

// Outcome pairs a target with its deployment result or error.
// Used by DeployAll, where failures are isolated per target.
type Outcome struct {
	Target string
	Result *Result
	Err    error
}

// Pipeline deploys the canonical settings document to targets.
// It holds no state across runs; every deployment re-reads the settings file
// from disk.
type Pipeline struct {
	settingsPath string
	targets      []Target
	backups      *backup.Manager
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSettingsPath overrides the canonical settings file location.
// When unset, the dotfiles convention from the paths package is used.
func WithSettingsPath(path string) Option {
	return func(p *Pipeline) {
		p.settingsPath = path
	}
}

// WithTargets replaces the default target table, for tests.
func WithTargets(targets []Target) Option {
	return func(p *Pipeline) {
		p.targets = targets
	}
}

// WithBackups sets the backup manager used before overwriting target files.
func WithBackups(m *backup.Manager) Option {
	return func(p *Pipeline) {
		p.backups = m
	}
}

// WithLogger sets the logger for deployment reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a deployment Pipeline. By default it uses the process-start
// target table, the dotfiles settings location, and a backup manager with
// default retention.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		targets: DefaultTargets(),
		backups: backup.NewManager(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Targets returns the pipeline's target table.
func (p *Pipeline) Targets() []Target {
	return p.targets
}

// Deploy runs the full pipeline for a single target: resolve, load, expand,
// filter, encode, write. Any failure aborts this target's deployment with no
// partial write; there are no retries.
func (p *Pipeline) Deploy(name string) (*Result, error) {
	target, err := lookupTarget(p.targets, name)
	if err != nil {
		return nil, err
	}

	doc, err := p.load()
	if err != nil {
		return nil, errors.Wrapf(err, "%s", target.Name)
	}

	result, err := p.deploySnapshot(target, doc.Expand())
	if err != nil {
		return nil, errors.Wrapf(err, "%s", target.Name)
	}
	return result, nil
}

// DeployAll fans the pipeline out concurrently across all targets.
//
// The settings document is loaded and expanded once; the immutable snapshot
// is shared by every goroutine, and each target writes to its own path, so no
// locking is needed. One target's failure never prevents or rolls back the
// others' writes.
//
// The returned error covers only the shared load step; per-target failures
// are reported in the outcomes.
func (p *Pipeline) DeployAll() ([]Outcome, error) {
	doc, err := p.load()
	if err != nil {
		return nil, err
	}
	snapshot := doc.Expand()

	outcomes := make([]Outcome, len(p.targets))
	var wg sync.WaitGroup
	for i, target := range p.targets {
		wg.Add(1)
		go func(i int, target Target) {
			defer wg.Done()
			result, err := p.deploySnapshot(target, snapshot)
			if err != nil {
				err = errors.Wrapf(err, "%s", target.Name)
			}
			outcomes[i] = Outcome{Target: target.Name, Result: result, Err: err}
		}(i, target)
	}
	wg.Wait()

	return outcomes, nil
}

// load reads and validates the settings document, resolving the path if no
// override was given. Fresh read every time; edits between runs are picked up.
func (p *Pipeline) load() (*settings.Document, error) {
	path := p.settingsPath
	if path == "" {
		resolved, err := paths.SettingsPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}
	return settings.Load(path)
}

// deploySnapshot filters, encodes, and writes an already-expanded document
// for one target.
func (p *Pipeline) deploySnapshot(target Target, doc *settings.Document) (*Result, error) {
	servers, excluded := FilterServers(doc.MCPServers, target.Name)
	outDoc := doc.WithServers(servers)

	data, err := target.Encode(outDoc)
	if err != nil {
		return nil, err
	}

	if err := paths.EnsureDir(filepath.Dir(target.Path), 0); err != nil {
		return nil, errors.Wrap(err, "creating config directory")
	}

	var backupPath string
	if p.backups != nil {
		backupPath, err = p.backups.Create(target.Path)
		if err != nil {
			return nil, errors.Wrap(err, "backing up existing config")
		}
		if backupPath != "" {
			p.logger.Debug("backed up existing config",
				"target", target.Name, "backup", filepath.Base(backupPath))
		}
	}

	if err := fileutil.AtomicWriteFile(target.Path, data, targetFilePerm); err != nil {
		return nil, err
	}

	p.logger.Info("configuration deployed",
		"target", target.Name, "servers", len(servers))
	p.logger.Debug("deployed config location",
		"target", target.Name, "path", target.Path)
	if excluded > 0 {
		p.logger.Debug("excluded builtin servers",
			"target", target.Name, "count", excluded)
	}

	return &Result{
		Target:     target.Name,
		Path:       target.Path,
		Servers:    len(servers),
		Excluded:   excluded,
		BackupPath: backupPath,
	}, nil
}
