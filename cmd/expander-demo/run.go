package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/zoobzio/capitan"

	drifterrors "github.com/go-drift/expandable/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Start the interactive demo (default)",
		Long: `Start the interactive demo.

Every expander in the configuration becomes a screen. Widget state is
restored from the state file at start and saved on exit. With watch
enabled, editing the configuration rebuilds the screens in place.`,
		Usage: "expander-demo [--config PATH] run",
		Run:   runDemo,
	})
}

func runDemo(settings Settings, _ []string) error {
	logFile, err := openLog(settings.Log)
	if err != nil {
		return err
	}
	defer logFile.Close()
	drifterrors.SetHandler(&drifterrors.LogHandler{Out: logFile})
	hookSignals()
	defer capitan.Shutdown()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	a := newApp(settings, screen, nil)
	data, err := a.configData()
	if err != nil {
		return err
	}
	saved, err := LoadState(settings.State)
	if err != nil {
		report("load state", err)
	}
	if err := a.load(data, saved); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var reloads <-chan []byte
	if settings.Watch && settings.Config != "" {
		reloads, err = watchFile(ctx, settings.Config)
		if err != nil {
			logf("watch disabled: %v", err)
		}
	}

	a.loop(ctx, reloads)
	stop()

	if err := SaveState(settings.State, CaptureState(a.widgets)); err != nil {
		return err
	}
	for _, w := range a.widgets {
		w.Dispose()
	}
	return nil
}
