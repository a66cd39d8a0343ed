package notifier_test

import (
	"errors"
	"testing"
	"time"

	"github.com/larsvilhuber/acrodefs-maintenance/pkg/logger"
	"github.com/larsvilhuber/acrodefs-maintenance/pkg/notifier"
)

func TestNotifier_DisabledDoesNothing(t *testing.T) {
	log := logger.CreateLogger("", "info")

	n := notifier.New(false, log)

	// Disabled notifier must be a no-op, no system calls, no panics
	n.NotifyComplete("acrodefs.tex", 42, 3*time.Second)
	n.NotifyFailure(errors.New("list file missing"))
}

func TestNotifier_NilLogger(t *testing.T) {
	n := notifier.New(false, nil)
	n.NotifyComplete("acrodefs.tex", 0, time.Second)
}
