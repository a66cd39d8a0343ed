// Package notifier provides run-completion notifications
package notifier

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
)

// RunNotifier sends a desktop notification when a consolidation run
// finishes. Disabled by default.
type RunNotifier struct {
	enabled bool
	logger  logger.Logger
}

// New creates a run notifier
func New(enabled bool, log logger.Logger) *RunNotifier {
	return &RunNotifier{
		enabled: enabled,
		logger:  log,
	}
}

// NotifyComplete notifies that a run finished successfully
func (n *RunNotifier) NotifyComplete(outputFile string, count int, duration time.Duration) {
	if !n.enabled {
		return
	}

	title := "✅ Consolidation Complete"
	message := fmt.Sprintf("%d definitions written to %s in %s", count, outputFile, formatDuration(duration))

	n.send(title, message)
}

// NotifyFailure notifies that a run failed
func (n *RunNotifier) NotifyFailure(err error) {
	if !n.enabled {
		return
	}

	title := "❌ Consolidation Failed"
	message := err.Error()

	n.send(title, message)
}

func (n *RunNotifier) send(title, message string) {
	if err := beeep.Notify(title, message, ""); err != nil && n.logger != nil {
		n.logger.Debug("Failed to send notification", logger.WithField("error", err))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
