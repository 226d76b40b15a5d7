// Package janitor periodically clears the upload and output directories so
// stale workbooks and rendered cards do not accumulate on disk.
package janitor

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Janitor sweeps a set of directories on a fixed interval. Entries are
// removed best-effort; a failing removal is logged and the sweep moves on.
type Janitor struct {
	dirs     []string
	interval time.Duration
	logger   *slog.Logger
}

// New builds a janitor over dirs. Interval governs how often Run sweeps.
func New(dirs []string, interval time.Duration, logger *slog.Logger) *Janitor {
	return &Janitor{dirs: dirs, interval: interval, logger: logger}
}

// Run sweeps immediately, then on every interval tick until ctx is done.
func (j *Janitor) Run(ctx context.Context) {
	j.Sweep()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep removes every entry inside the managed directories. The directories
// themselves survive. Missing directories are quietly skipped.
func (j *Janitor) Sweep() {
	for _, dir := range j.dirs {
		removed := j.sweepDir(dir)
		if removed > 0 {
			j.logger.Info("directory swept", "dir", dir, "removed", removed)
		}
	}
}

func (j *Janitor) sweepDir(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Warn("sweep skipped", "dir", dir, "error", err)
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			j.logger.Warn("entry removal failed", "path", path, "error", err)
			continue
		}
		removed++
	}
	return removed
}
