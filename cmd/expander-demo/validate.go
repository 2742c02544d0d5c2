package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-drift/expandable/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a configuration file",
		Long: `Parse and validate an expander configuration and print the resolved
values of every expander. Without a path the configured file (or the
built-in screens) is checked.`,
		Usage: "expander-demo validate [path]",
		Run:   runValidate,
	})
	RegisterCommand(&Command{
		Name:  "state",
		Short: "Print the saved widget state",
		Long:  `Print the widget state saved by the last run.`,
		Usage: "expander-demo state",
		Run:   runState,
	})
}

func runValidate(settings Settings, args []string) error {
	if len(args) > 0 {
		settings.Config = args[0]
	}
	data, err := newApp(settings, nil, nil).configData()
	if err != nil {
		return err
	}
	f, err := config.Parse(data)
	if err != nil {
		return err
	}
	for _, e := range f.Expanders {
		r, err := e.Resolve()
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-6s %-10s duration=%v parallax=%.2f expanded=%v children=%d\n",
			r.Name, r.Kind, r.Orientation, r.Duration, r.Parallax, r.InitiallyExpanded, len(r.Children))
	}
	return nil
}

func runState(settings Settings, _ []string) error {
	s, err := LoadState(settings.State)
	if err != nil {
		return err
	}
	if len(s.Widgets) == 0 {
		fmt.Fprintf(os.Stderr, "no saved state in %s\n", settings.State)
		return nil
	}
	names := make([]string, 0, len(s.Widgets))
	for name := range s.Widgets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		state := s.Widgets[name]
		switch {
		case state.Expansion != nil:
			fmt.Printf("%-12s expansion=%.2f\n", name, *state.Expansion)
		case state.Expanded != nil:
			fmt.Printf("%-12s expanded=%v\n", name, *state.Expanded)
		}
	}
	return nil
}
