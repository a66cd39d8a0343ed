// Package vcs resolves last-modified timestamps for input files,
// preferring version-control history over filesystem metadata.
package vcs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
)

// DefaultGitTimeout bounds a single git history lookup
const DefaultGitTimeout = 5 * time.Second

// TimestampSource resolves a best-effort last-modified instant for a
// path. Implementations return an error to signal fallthrough to the
// next source.
type TimestampSource interface {
	Resolve(ctx context.Context, path string) (time.Time, error)
}

// GitSource reads the authorship date of the most recent commit
// touching a path
type GitSource struct {
	Timeout time.Duration
}

// NewGitSource creates a git-backed timestamp source
func NewGitSource() *GitSource {
	return &GitSource{Timeout: DefaultGitTimeout}
}

// Resolve queries git history for the path's last commit date
func (g *GitSource) Resolve(ctx context.Context, path string) (time.Time, error) {
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "log", "-1", "--format=%aI", "--", path)
	out, err := cmd.Output()
	if err != nil {
		return time.Time{}, fmt.Errorf("git log failed for %s: %w", path, err)
	}

	dateStr := strings.TrimSpace(string(out))
	if dateStr == "" {
		// Path has no history (untracked, or not a repository)
		return time.Time{}, fmt.Errorf("no git history for %s", path)
	}

	// Normalize a trailing Z to an explicit UTC offset
	dateStr = strings.Replace(dateStr, "Z", "+00:00", 1)

	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable git date %q for %s: %w", dateStr, path, err)
	}
	return t, nil
}

// ModTimeSource reads the filesystem last-modified timestamp
type ModTimeSource struct{}

// NewModTimeSource creates a filesystem-backed timestamp source
func NewModTimeSource() *ModTimeSource {
	return &ModTimeSource{}
}

// Resolve returns the file's mtime
func (m *ModTimeSource) Resolve(_ context.Context, path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("stat failed for %s: %w", path, err)
	}
	return info.ModTime(), nil
}

// Resolver chains timestamp sources. Every failure degrades to the
// next source; when all sources fail the zero instant is returned so
// the file loses any timestamp comparison. Resolve never errors.
type Resolver struct {
	sources []TimestampSource
	logger  logger.Logger
}

// NewResolver creates the default git-then-mtime resolver
func NewResolver(log logger.Logger) *Resolver {
	return &Resolver{
		sources: []TimestampSource{NewGitSource(), NewModTimeSource()},
		logger:  log,
	}
}

// NewResolverWithSources creates a resolver over explicit sources (for testing)
func NewResolverWithSources(log logger.Logger, sources ...TimestampSource) *Resolver {
	return &Resolver{sources: sources, logger: log}
}

// Resolve returns the best available timestamp for a path
func (r *Resolver) Resolve(ctx context.Context, path string) time.Time {
	for _, source := range r.sources {
		t, err := source.Resolve(ctx, path)
		if err == nil {
			return t
		}
		if r.logger != nil {
			r.logger.WithFile(path).Debug("timestamp source failed",
				logger.WithField("error", err))
		}
	}
	return time.Time{}
}
