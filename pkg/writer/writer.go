// Package writer serializes a consolidated mapping to the output file
package writer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/utils"
)

// StripPrefix is removed from source paths in provenance comments for
// readability
const StripPrefix = "../../"

// Writer emits the consolidated definitions file
type Writer struct {
	fs          *utils.FileSystemUtils
	stripPrefix string

	// Now supplies the generation timestamp; overridable in tests
	Now func() time.Time
}

// New creates a writer with the default path-prefix strip
func New() *Writer {
	return &Writer{
		fs:          utils.NewFileSystemUtils(),
		stripPrefix: StripPrefix,
		Now:         time.Now,
	}
}

// NewWithStripPrefix creates a writer that strips a custom prefix
// from provenance paths
func NewWithStripPrefix(prefix string) *Writer {
	w := New()
	w.stripPrefix = prefix
	return w
}

// Write renders the mapping and atomically replaces outputPath
func (w *Writer) Write(mapping *types.Mapping, outputPath string) error {
	if err := w.fs.WriteFile(outputPath, w.Render(mapping)); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

// Render serializes the mapping: a fixed header block, then one block
// per non-empty category in fixed order, entries sorted by label.
func (w *Writer) Render(mapping *types.Mapping) []byte {
	var buf bytes.Buffer

	buf.WriteString("% Consolidated acrodefs.tex\n")
	buf.WriteString("% Auto-generated - DO NOT EDIT MANUALLY\n")
	buf.WriteString("% Generated from multiple sources\n")
	fmt.Fprintf(&buf, "%% Generated on: %s\n\n", w.Now().Format("2006-01-02 15:04:05"))

	groups := make(map[types.Category][]types.Entry)
	for _, entry := range mapping.Entries() {
		groups[entry.Category] = append(groups[entry.Category], entry)
	}

	for _, category := range types.Categories {
		entries := groups[category]
		if len(entries) == 0 {
			continue
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Label < entries[j].Label
		})

		fmt.Fprintf(&buf, "%% %s\n", category.SectionTitle())
		for _, entry := range entries {
			source := entry.SourcePath
			if w.stripPrefix != "" {
				source = strings.ReplaceAll(source, w.stripPrefix, "")
			}
			fmt.Fprintf(&buf, "%% Last updated: %s from %s\n",
				entry.Timestamp.Format("2006-01-02"), source)
			buf.WriteString(entry.RawText + "\n")
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}
