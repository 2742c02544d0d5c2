package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/zoobzio/capitan"

	drifterrors "github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/expander"
)

// openLog points the standard logger at path. The terminal is owned by the
// screen, so nothing may be written to stderr while the demo runs.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func logf(format string, args ...any) {
	log.Printf(format, args...)
}

// report routes structured errors through the errors handler and logs the rest.
func report(op string, err error) {
	var e *drifterrors.Error
	if errors.As(err, &e) {
		drifterrors.Report(e)
		return
	}
	logf("%s: %v", op, err)
}

// hookSignals logs expander lifecycle events.
func hookSignals() {
	capitan.Hook(expander.AnimationStarted, func(_ context.Context, e *capitan.Event) {
		name, _ := expander.KeyName.From(e)
		kind, _ := expander.KeyKind.From(e)
		phase, _ := expander.KeyPhase.From(e)
		logf("[STARTED] %s %s %s", kind, name, phase)
	})
	capitan.Hook(expander.AnimationEnded, func(_ context.Context, e *capitan.Event) {
		name, _ := expander.KeyName.From(e)
		phase, _ := expander.KeyPhase.From(e)
		logf("[ENDED] %s %s", name, phase)
	})
	capitan.Hook(expander.AnimationCanceled, func(_ context.Context, e *capitan.Event) {
		name, _ := expander.KeyName.From(e)
		phase, _ := expander.KeyPhase.From(e)
		logf("[CANCELED] %s %s", name, phase)
	})
	capitan.Hook(expander.StateRestored, func(_ context.Context, e *capitan.Event) {
		name, _ := expander.KeyName.From(e)
		expanded, _ := expander.KeyExpanded.From(e)
		logf("[RESTORED] %s expanded=%s", name, expanded)
	})
}
