// Package config reads the declarative description of expandable containers.
//
// A file lists expanders by name. Values are only the origin of each
// widget's initial state: once a widget is built nothing re-reads them.
//
//	expanders:
//	  - name: details
//	    kind: frame
//	    duration: 300ms
//	    orientation: vertical
//	    parallax: 1
//	    children:
//	      - name: body
//	        content_height: 6
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/layout"
)

// Expander kinds.
const (
	KindFrame  = "frame"
	KindLinear = "linear"
)

// Defaults applied to omitted fields.
const (
	DefaultDuration = 300 * time.Millisecond
	DefaultParallax = 1.0
	DefaultEasing   = "fast-out-slow-in"
)

// File is the root of a configuration document.
type File struct {
	Expanders []Expander `yaml:"expanders"`
}

// Expander describes one expandable container.
type Expander struct {
	Name              string         `yaml:"name"`
	Kind              string         `yaml:"kind,omitempty"`
	Duration          *time.Duration `yaml:"duration,omitempty"`
	InitiallyExpanded bool           `yaml:"initially_expanded,omitempty"`
	Orientation       string         `yaml:"orientation,omitempty"`
	Parallax          *float64       `yaml:"parallax,omitempty"`
	Easing            string         `yaml:"easing,omitempty"`
	Direction         string         `yaml:"direction,omitempty"`
	Width             Dimension      `yaml:"width,omitempty"`
	Height            Dimension      `yaml:"height,omitempty"`
	Children          []Child        `yaml:"children,omitempty"`
}

// Params converts the container size fields to layout params.
func (e Expander) Params() layout.Params {
	return layout.Params{Width: e.Width.Resolve(), Height: e.Height.Resolve()}
}

// Child describes a leaf inside an expander.
type Child struct {
	Name string `yaml:"name"`
	// Text is painted by hosts that draw labels.
	Text          string    `yaml:"text,omitempty"`
	Expandable    bool      `yaml:"expandable,omitempty"`
	Width         Dimension `yaml:"width,omitempty"`
	Height        Dimension `yaml:"height,omitempty"`
	Weight        float64   `yaml:"weight,omitempty"`
	ContentWidth  int       `yaml:"content_width,omitempty"`
	ContentHeight int       `yaml:"content_height,omitempty"`
}

// Params converts the authored child fields to layout params.
func (c Child) Params() layout.Params {
	return layout.Params{
		Width:      c.Width.Resolve(),
		Height:     c.Height.Resolve(),
		Weight:     c.Weight,
		Expandable: c.Expandable,
	}
}

// Content returns the intrinsic content size.
func (c Child) Content() layout.Size {
	return layout.Size{Width: c.ContentWidth, Height: c.ContentHeight}
}

// Dimension is an authored size: "wrap", "match" or a non-negative integer.
// An omitted dimension wraps content.
type Dimension struct {
	Value layout.Dimension
	Set   bool
}

// Exact returns a fixed dimension.
func Exact(n int) Dimension {
	return Dimension{Value: layout.Dimension(n), Set: true}
}

// Resolve returns the layout dimension, defaulting to WrapContent.
func (d Dimension) Resolve() layout.Dimension {
	if !d.Set {
		return layout.WrapContent
	}
	return d.Value
}

// IsZero lets yaml omit unset dimensions.
func (d Dimension) IsZero() bool {
	return !d.Set
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Dimension) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: dimension must be a scalar", node.Line)
	}
	v, err := ParseDimension(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Dimension{Value: v, Set: true}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Dimension) MarshalYAML() (any, error) {
	switch d.Resolve() {
	case layout.WrapContent:
		return "wrap", nil
	case layout.MatchParent:
		return "match", nil
	default:
		return int(d.Value), nil
	}
}

// ParseDimension parses "wrap", "match" or a non-negative integer.
func ParseDimension(s string) (layout.Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wrap", "wrap_content":
		return layout.WrapContent, nil
	case "match", "match_parent":
		return layout.MatchParent, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return layout.Dimension(n), nil
}

// Resolved holds the typed values of an Expander after defaults.
type Resolved struct {
	Name              string
	Kind              string
	Duration          time.Duration
	InitiallyExpanded bool
	Orientation       layout.Axis
	Parallax          float64
	Curve             animation.Curve
	Direction         layout.Direction
	Params            layout.Params
	Children          []Child
}

// Resolve validates e and applies defaults.
func (e Expander) Resolve() (Resolved, error) {
	r := Resolved{
		Name:              strings.TrimSpace(e.Name),
		Kind:              strings.ToLower(strings.TrimSpace(e.Kind)),
		Duration:          DefaultDuration,
		InitiallyExpanded: e.InitiallyExpanded,
		Orientation:       layout.Vertical,
		Parallax:          DefaultParallax,
		Params:            e.Params(),
		Children:          e.Children,
	}
	if r.Name == "" {
		return r, errors.ErrMissingName
	}
	switch r.Kind {
	case "":
		r.Kind = KindFrame
	case KindFrame, KindLinear:
	default:
		return r, fmt.Errorf("%w: %q", errors.ErrUnknownKind, e.Kind)
	}
	if e.Duration != nil {
		if *e.Duration < 0 {
			return r, errors.ErrNegativeDuration
		}
		r.Duration = *e.Duration
	}
	if e.Orientation != "" {
		axis, err := layout.ParseAxis(e.Orientation)
		if err != nil {
			return r, err
		}
		r.Orientation = axis
	}
	if e.Parallax != nil {
		if *e.Parallax < 0 || *e.Parallax > 1 {
			return r, fmt.Errorf("%w: %v", errors.ErrParallaxRange, *e.Parallax)
		}
		r.Parallax = *e.Parallax
	}
	easing := e.Easing
	if easing == "" {
		easing = DefaultEasing
	}
	curve, ok := animation.CurveByName(easing)
	if !ok {
		return r, fmt.Errorf("%w: %q", errors.ErrUnknownEasing, e.Easing)
	}
	r.Curve = curve
	dir, err := layout.ParseDirection(e.Direction)
	if err != nil {
		return r, err
	}
	r.Direction = dir
	return r, nil
}

// Validate checks every expander and name uniqueness.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Expanders))
	for i, e := range f.Expanders {
		r, err := e.Resolve()
		if err != nil {
			return errors.InvalidConfiguration("config.Validate", fmt.Errorf("expanders[%d] %q: %w", i, e.Name, err))
		}
		if seen[r.Name] {
			return errors.InvalidConfiguration("config.Validate", fmt.Errorf("expanders[%d]: %w: %q", i, errors.ErrDuplicateName, r.Name))
		}
		seen[r.Name] = true
	}
	return nil
}

// Find returns the expander with the given name.
func (f *File) Find(name string) (Expander, bool) {
	for _, e := range f.Expanders {
		if strings.TrimSpace(e.Name) == name {
			return e, true
		}
	}
	return Expander{}, false
}

// Parse decodes and validates a configuration document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.Error{Op: "config.Parse", Kind: errors.KindConfigLoad, Err: fmt.Errorf("failed to parse config: %w", err), Timestamp: time.Now()}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "config.Load", Kind: errors.KindConfigLoad, Err: fmt.Errorf("failed to read %s: %w", path, err), Timestamp: time.Now()}
	}
	return Parse(data)
}

// Marshal encodes f as YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
