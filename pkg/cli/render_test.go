package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/types"
)

var (
	renderOlder = time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	renderNewer = time.Date(2023, 6, 20, 0, 0, 0, 0, time.UTC)
)

func TestRenderDecisions_Processed(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionProcessed, Path: "defs/a.tex", Date: renderOlder},
	})

	output := buf.String()
	if !strings.Contains(output, "Processing: defs/a.tex (dated: 2022-01-10)") {
		t.Errorf("expected processing line, got %q", output)
	}
}

func TestRenderDecisions_MissingFileWarning(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionFileMissing, Path: "missing.tex"},
	})

	output := buf.String()
	if !strings.Contains(output, "File not found: missing.tex") {
		t.Errorf("expected warning naming the missing file, got %q", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("expected warning level, got %q", output)
	}
}

func TestRenderDecisions_Updated(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionUpdated, Label: "CPU", Path: "b.tex", Date: renderNewer, PrevDate: renderOlder},
	})

	output := buf.String()
	if !strings.Contains(output, "Updating CPU: newer version from 2023-06-20 (was 2022-01-10)") {
		t.Errorf("expected update notice with both dates, got %q", output)
	}
}

func TestRenderDecisions_SkippedOld(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionSkippedOld, Label: "CPU", Path: "a.tex", Date: renderOlder, PrevDate: renderNewer},
	})

	output := buf.String()
	if !strings.Contains(output, "Skipping older version of CPU from 2022-01-10") {
		t.Errorf("expected skip notice, got %q", output)
	}
}

func TestRenderDecisions_DedupSilentAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionDeduped, Label: "CPU", Path: "b.tex", Date: renderNewer},
	})

	if strings.Contains(buf.String(), "CPU") {
		t.Errorf("identical duplicates must not be reported at info level, got %q", buf.String())
	}
}

func TestRenderDecisions_DedupVisibleAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "debug", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionDeduped, Label: "CPU", Path: "b.tex", Date: renderNewer},
	})

	if !strings.Contains(buf.String(), "CPU") {
		t.Errorf("expected dedup event in verbose output, got %q", buf.String())
	}
}

func TestRenderDecisions_ReadError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.CreateLoggerWithOutput("", "info", &buf)

	renderDecisions(log, []types.Decision{
		{Kind: types.DecisionReadError, Path: "a.tex", Message: "permission denied"},
	})

	output := buf.String()
	if !strings.Contains(output, "Error reading a.tex: permission denied") {
		t.Errorf("expected read error with message, got %q", output)
	}
}
