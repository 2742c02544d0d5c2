package main

import (
	"context"
	_ "embed"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/config"
	drifterrors "github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/layout"
	"github.com/go-drift/expandable/pkg/widgets"
)

//go:embed expanders.yaml
var defaultConfig []byte

// headerRows is the number of rows above the widget area.
const headerRows = 2

var (
	headerStyle = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	footerStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// app owns the screen, the frame clock and the widgets built from config.
// All fields are touched only from the loop goroutine.
type app struct {
	settings  Settings
	screen    tcell.Screen
	scheduler *animation.Scheduler
	driver    *animation.Driver
	owner     layout.PipelineOwner
	widgets   []widgets.Expandable
	current   int
	status    string
}

func newApp(settings Settings, screen tcell.Screen, clock animation.Clock) *app {
	scheduler := animation.NewScheduler(clock)
	return &app{
		settings:  settings,
		screen:    screen,
		scheduler: scheduler,
		driver:    animation.NewDriver(scheduler),
	}
}

// configData returns the configured file contents, or the built-in screens.
func (a *app) configData() ([]byte, error) {
	if a.settings.Config == "" {
		return defaultConfig, nil
	}
	data, err := os.ReadFile(a.settings.Config)
	if err != nil {
		return nil, &drifterrors.Error{Op: "demo.configData", Kind: drifterrors.KindConfigLoad, Err: err, Timestamp: time.Now()}
	}
	return data, nil
}

// load builds the widgets from data, carrying over the state of widgets
// that keep their name. On error the current widgets stay in place.
func (a *app) load(data []byte, saved StateFile) error {
	f, err := config.Parse(data)
	if err != nil {
		return err
	}
	built, err := widgets.BuildAll(f, a.driver)
	if err != nil {
		return err
	}
	if len(built) == 0 {
		return drifterrors.InvalidConfiguration("demo.load", fmt.Errorf("no expanders defined"))
	}

	currentName := ""
	if a.current < len(a.widgets) {
		currentName = a.widgets[a.current].Name()
	}
	for _, w := range a.widgets {
		w.Dispose()
	}

	restored := saved.Apply(built)
	a.widgets = built
	a.current = 0
	for i, w := range built {
		if w.Name() == currentName {
			a.current = i
		}
	}
	logf("loaded %d expanders, restored %d", len(built), restored)
	return nil
}

// reload rebuilds after a config change.
func (a *app) reload(data []byte) {
	if err := a.load(data, CaptureState(a.widgets)); err != nil {
		a.status = "reload failed: " + err.Error()
		report("reload", err)
		return
	}
	a.status = "config reloaded"
}

func (a *app) active() widgets.Expandable {
	if len(a.widgets) == 0 {
		return nil
	}
	return a.widgets[a.current]
}

// frame advances animations, lays out the active widget and draws it.
func (a *app) frame() {
	a.scheduler.Step()
	w, h := a.screen.Size()
	root := a.active()
	if root != nil {
		a.owner.FlushLayout(root, layout.Loose(layout.Size{Width: w, Height: max(h-headerRows-1, 0)}))
	}

	a.screen.Clear()
	statusLine(a.screen, 0, a.title(), headerStyle)
	statusLine(a.screen, 1, "space:toggle  e/c:snap  0-9:seek  ←/→:nudge  o:orientation  p:parallax  tab:next  s:save  q:quit", footerStyle)
	if root != nil {
		paintTree(a.screen, root, headerRows)
	}
	statusLine(a.screen, h-1, a.status, footerStyle)
	a.screen.Show()
}

func (a *app) title() string {
	w := a.active()
	if w == nil {
		return "no expanders"
	}
	kind := config.KindLinear
	extra := ""
	if f, ok := w.(*widgets.ExpandableFrame); ok {
		kind = config.KindFrame
		extra = fmt.Sprintf(" expansion=%.2f parallax=%.1f", f.Expansion(), f.Behavior().Parallax())
	}
	return fmt.Sprintf(" [%d/%d] %s (%s) expanded=%v phase=%s%s",
		a.current+1, len(a.widgets), w.Name(), kind, w.IsExpanded(), w.Phase(), extra)
}

// handleKey applies one key press and reports whether the demo should quit.
// r is only consulted for tcell.KeyRune.
func (a *app) handleKey(key tcell.Key, r rune) bool {
	w := a.active()
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		a.switchTo(a.current + 1)
		return false
	case tcell.KeyBacktab:
		a.switchTo(a.current - 1)
		return false
	case tcell.KeyEnter:
		if w != nil {
			w.Toggle(true)
		}
		return false
	case tcell.KeyLeft:
		a.nudge(-0.1)
		return false
	case tcell.KeyRight:
		a.nudge(0.1)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch {
	case r == 'q':
		return true
	case w == nil:
	case r == ' ':
		w.Toggle(true)
	case r == 'e':
		w.Expand(false)
	case r == 'c':
		w.Collapse(false)
	case r >= '0' && r <= '9':
		a.seek(float64(r-'0') / 9)
	case r == 'o':
		a.flipOrientation()
	case r == 'p':
		a.cycleParallax()
	case r == 's':
		a.save()
	}
	return false
}

func (a *app) switchTo(i int) {
	if len(a.widgets) == 0 {
		return
	}
	n := len(a.widgets)
	a.current = ((i % n) + n) % n
	a.status = ""
}

// seek sets a frame's expansion directly, like dragging a slider.
func (a *app) seek(v float64) {
	f, ok := a.active().(*widgets.ExpandableFrame)
	if !ok {
		a.status = "seeking needs a frame"
		return
	}
	f.OnConfigurationChanged()
	f.SetExpansion(v)
	a.status = fmt.Sprintf("seek %.2f", v)
}

func (a *app) nudge(delta float64) {
	f, ok := a.active().(*widgets.ExpandableFrame)
	if !ok {
		a.status = "seeking needs a frame"
		return
	}
	a.seek(math.Max(0, math.Min(1, f.Expansion()+delta)))
}

func (a *app) flipOrientation() {
	var err error
	switch w := a.active().(type) {
	case *widgets.ExpandableFrame:
		err = w.SetOrientation(w.Behavior().Orientation().Cross())
	case *widgets.ExpandableLinear:
		err = w.SetOrientation(w.Orientation().Cross())
	}
	if err != nil {
		a.status = err.Error()
	}
}

func (a *app) cycleParallax() {
	f, ok := a.active().(*widgets.ExpandableFrame)
	if !ok {
		return
	}
	next := map[float64]float64{0: 0.5, 0.5: 1, 1: 0}[f.Behavior().Parallax()]
	f.SetParallax(next)
	a.status = fmt.Sprintf("parallax %.1f", next)
}

func (a *app) save() {
	if err := SaveState(a.settings.State, CaptureState(a.widgets)); err != nil {
		a.status = err.Error()
		report("save", err)
		return
	}
	a.status = "saved to " + a.settings.State
}

// handle applies one terminal event and reports whether to quit.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
		for _, w := range a.widgets {
			w.OnConfigurationChanged()
		}
	}
	return false
}

// loop runs until the user quits or ctx ends. Terminal events and config
// reloads are funneled into this goroutine so widgets are never shared.
func (a *app) loop(ctx context.Context, reloads <-chan []byte) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.settings.FrameInterval)
	defer ticker.Stop()

	a.frame()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || a.handle(ev) {
				return
			}
		case data, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			a.reload(data)
		case <-ticker.C:
			a.frame()
		}
	}
}
