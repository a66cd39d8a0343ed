// Package consolidate folds definition entries from many files into a
// single deduplicated mapping, keeping the most recently modified
// version of each label.
//
// Labels share one namespace across categories: when the same label
// appears as both an acronym and a command, the timestamp winner's
// category decides which output section it lands in.
package consolidate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/extract"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/utils"
)

// TimestampResolver resolves a best-effort last-modified instant for
// a path. Satisfied by vcs.Resolver; tests supply a deterministic fake.
type TimestampResolver interface {
	Resolve(ctx context.Context, path string) time.Time
}

// Result is the outcome of one consolidation run. Decisions are in
// the order they were made, so rendering them reproduces the
// processing narrative.
type Result struct {
	RunID     string
	Mapping   *types.Mapping
	Decisions []types.Decision
}

// Consolidator merges definition files listed in a list file
type Consolidator struct {
	fs        *utils.FileSystemUtils
	resolver  TimestampResolver
	extractor *extract.Extractor
}

// New creates a consolidator using the given timestamp resolver
func New(resolver TimestampResolver) *Consolidator {
	return &Consolidator{
		fs:        utils.NewFileSystemUtils(),
		resolver:  resolver,
		extractor: extract.NewExtractor(),
	}
}

// ParseList parses list-file content into input paths. Blank lines
// and lines starting with # are skipped.
func ParseList(data []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		path := strings.TrimSpace(line)
		if path == "" || strings.HasPrefix(path, "#") {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// Run consolidates every file named in the list file, in list order.
// A missing or unreadable list file is the only fatal error; all
// per-file failures become decisions and the run continues.
func (c *Consolidator) Run(ctx context.Context, listPath string) (*Result, error) {
	data, err := os.ReadFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file %s: %w", listPath, err)
	}

	result := &Result{
		RunID:   uuid.New().String(),
		Mapping: types.NewMapping(),
	}

	for _, path := range ParseList(data) {
		c.processFile(ctx, path, result)
	}

	return result, nil
}

// processFile folds one input file's entries into the running mapping
func (c *Consolidator) processFile(ctx context.Context, path string, result *Result) {
	if !c.fs.Exists(path) {
		result.record(types.Decision{Kind: types.DecisionFileMissing, Path: path})
		return
	}

	timestamp := c.resolver.Resolve(ctx, path)
	result.record(types.Decision{Kind: types.DecisionProcessed, Path: path, Date: timestamp})

	data, err := c.fs.ReadFile(path)
	if err != nil {
		result.record(types.Decision{
			Kind:    types.DecisionReadError,
			Path:    path,
			Message: err.Error(),
		})
		return
	}

	content := extract.Decode(data)
	for _, entry := range c.extractor.Extract(content, timestamp, path) {
		c.fold(entry, result)
	}
}

// fold applies the last-writer-wins rule for a single entry.
// Resolution is monotonic: once the stored entry carries the maximum
// timestamp seen for its label, later entries with smaller-or-equal
// timestamps cannot displace it, whatever the input order.
func (c *Consolidator) fold(entry types.Entry, result *Result) {
	existing, seen := result.Mapping.Get(entry.Label)
	if !seen {
		result.Mapping.Put(entry)
		result.record(types.Decision{
			Kind:  types.DecisionInserted,
			Label: entry.Label,
			Path:  entry.SourcePath,
			Date:  entry.Timestamp,
		})
		return
	}

	if entry.RawText == existing.RawText {
		// Identical duplicate, nothing to decide
		result.record(types.Decision{
			Kind:  types.DecisionDeduped,
			Label: entry.Label,
			Path:  entry.SourcePath,
			Date:  entry.Timestamp,
		})
		return
	}

	if entry.Timestamp.After(existing.Timestamp) {
		result.Mapping.Put(entry)
		result.record(types.Decision{
			Kind:     types.DecisionUpdated,
			Label:    entry.Label,
			Path:     entry.SourcePath,
			Date:     entry.Timestamp,
			PrevDate: existing.Timestamp,
		})
		return
	}

	// Older or same-age differing text loses; ties keep the incumbent
	result.record(types.Decision{
		Kind:     types.DecisionSkippedOld,
		Label:    entry.Label,
		Path:     entry.SourcePath,
		Date:     entry.Timestamp,
		PrevDate: existing.Timestamp,
	})
}

func (r *Result) record(d types.Decision) {
	r.Decisions = append(r.Decisions, d)
}
