package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/expandable/pkg/widgets"
)

// StateFile is the persisted state of every widget, keyed by name.
type StateFile struct {
	Widgets map[string]widgets.State `yaml:"widgets"`
}

// LoadState reads a state file. A missing file yields an empty state.
func LoadState(path string) (StateFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return StateFile{}, nil
	}
	if err != nil {
		return StateFile{}, fmt.Errorf("read state: %w", err)
	}
	var s StateFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return StateFile{}, fmt.Errorf("parse state %s: %w", path, err)
	}
	return s, nil
}

// SaveState writes s atomically.
func SaveState(path string, s StateFile) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// CaptureState snapshots every widget.
func CaptureState(ws []widgets.Expandable) StateFile {
	s := StateFile{Widgets: make(map[string]widgets.State, len(ws))}
	for _, w := range ws {
		s.Widgets[w.Name()] = w.Snapshot()
	}
	return s
}

// Apply restores the widgets that have a saved entry and reports how many did.
func (s StateFile) Apply(ws []widgets.Expandable) int {
	n := 0
	for _, w := range ws {
		if state, ok := s.Widgets[w.Name()]; ok {
			w.Restore(state)
			n++
		}
	}
	return n
}
