// Package extract scans LaTeX source text for definition directives
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
)

// One pattern per directive category, scanned in fixed order. Bodies
// tolerate one level of nested {...}; deeper nesting truncates the
// match and is unsupported.
var (
	acrodefPattern    = regexp.MustCompile(`\\acrodef\s*\{([^}]+)\}\s*\{([^}]*(?:\{[^}]*\}[^}]*)*)\}`)
	newacronymPattern = regexp.MustCompile(`\\newacronym(?:\[.*?\])?\s*\{([^}]+)\}\s*\{([^}]+)\}\s*\{([^}]+)\}`)
	newcommandPattern = regexp.MustCompile(`\\newcommand\s*\{([^}]+)\}(?:\[.*?\])?\s*\{([^}]*(?:\{[^}]*\}[^}]*)*)\}`)
)

// categoryPattern pairs a directive pattern with its category
type categoryPattern struct {
	category types.Category
	pattern  *regexp.Regexp
}

var patterns = []categoryPattern{
	{types.CategoryAcrodef, acrodefPattern},
	{types.CategoryNewacronym, newacronymPattern},
	{types.CategoryNewcommand, newcommandPattern},
}

// Extractor turns file content into definition entries
type Extractor struct{}

// NewExtractor creates a new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns all entries found in content, in category order and
// document order within each category. The raw text of each entry is
// the entire matched directive, and the label is the first captured
// group trimmed of surrounding whitespace.
func (e *Extractor) Extract(content string, timestamp time.Time, sourcePath string) []types.Entry {
	var entries []types.Entry

	for _, cp := range patterns {
		for _, match := range cp.pattern.FindAllStringSubmatch(content, -1) {
			entries = append(entries, types.Entry{
				Label:      strings.TrimSpace(match[1]),
				RawText:    match[0],
				Category:   cp.category,
				Timestamp:  timestamp,
				SourcePath: sourcePath,
			})
		}
	}

	return entries
}

// Decode converts raw file bytes to text, replacing undecodable byte
// sequences instead of failing.
func Decode(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
