// Package types provides core types and configuration for acrodefs
package types

import (
	"time"
)

// Category represents the kind of LaTeX directive an entry came from
type Category string

const (
	CategoryAcrodef    Category = "acrodef"
	CategoryNewacronym Category = "newacronym"
	CategoryNewcommand Category = "newcommand"
)

// Categories lists all categories in output order. Empty sections are
// omitted by the writer, but the relative order is fixed.
var Categories = []Category{
	CategoryAcrodef,
	CategoryNewacronym,
	CategoryNewcommand,
}

// SectionTitle returns the comment header used for this category's
// block in the consolidated output.
func (c Category) SectionTitle() string {
	switch c {
	case CategoryAcrodef:
		return "Acronyms (acrodef)"
	case CategoryNewacronym:
		return "Acronyms (newacronym)"
	case CategoryNewcommand:
		return "Commands"
	}
	return string(c)
}

// Entry is a single extracted definition. Entries are immutable after
// extraction; the consolidator compares and discards them, it never
// mutates them.
type Entry struct {
	Label      string
	RawText    string // full matched directive text, not just the body
	Category   Category
	Timestamp  time.Time
	SourcePath string
}

// Mapping is an ordered label -> winning Entry map. Insertion order
// reflects first-seen order across inputs; the writer sorts per
// section, so the order only matters for deterministic iteration.
type Mapping struct {
	entries map[string]Entry
	order   []string
}

// NewMapping creates an empty mapping
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Entry)}
}

// Get returns the stored entry for a label
func (m *Mapping) Get(label string) (Entry, bool) {
	e, ok := m.entries[label]
	return e, ok
}

// Put stores an entry under its label, preserving first-seen order
func (m *Mapping) Put(e Entry) {
	if _, seen := m.entries[e.Label]; !seen {
		m.order = append(m.order, e.Label)
	}
	m.entries[e.Label] = e
}

// Len returns the number of unique labels
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Entries returns all entries in first-seen order
func (m *Mapping) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, label := range m.order {
		out = append(out, m.entries[label])
	}
	return out
}

// DecisionKind classifies a single consolidation decision
type DecisionKind string

const (
	DecisionInserted    DecisionKind = "inserted"     // first occurrence of a label
	DecisionUpdated     DecisionKind = "updated"      // newer differing text replaced the stored entry
	DecisionSkippedOld  DecisionKind = "skipped-old"  // older or same-age differing text discarded
	DecisionDeduped     DecisionKind = "deduped"      // byte-identical text discarded
	DecisionFileMissing DecisionKind = "file-missing" // listed path does not exist
	DecisionReadError   DecisionKind = "read-error"   // listed path exists but could not be read
	DecisionProcessed   DecisionKind = "processed"    // a file was read and its date resolved
)

// Decision is one event from the consolidation decision log. The
// engine records these instead of printing, so callers choose how to
// render them.
type Decision struct {
	Kind     DecisionKind
	Label    string
	Path     string
	Date     time.Time
	PrevDate time.Time // only set for updated/skipped-old
	Message  string    // only set for read-error
}

// NotificationConfig controls desktop notifications
type NotificationConfig struct {
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// AcrodefsConfig is the tool configuration, loadable from JSON or YAML
type AcrodefsConfig struct {
	Version       string              `json:"version" yaml:"version"`
	ListFile      string              `json:"listFile,omitempty" yaml:"listFile,omitempty"`
	OutputFile    string              `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
	StripPrefix   string              `json:"stripPrefix,omitempty" yaml:"stripPrefix,omitempty"`
	LogLevel      string              `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Notifications *NotificationConfig `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}

// NotificationsEnabled reports whether desktop notifications are on
// (default off)
func (c *AcrodefsConfig) NotificationsEnabled() bool {
	return c.Notifications != nil &&
		c.Notifications.Enabled != nil &&
		*c.Notifications.Enabled
}
