package widgets

import (
	"time"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
)

// Expandable is the surface shared by [ExpandableFrame] and [ExpandableLinear].
type Expandable interface {
	layout.RenderObject

	// Name is the configured identifier.
	Name() string
	Expand(animate bool)
	Collapse(animate bool)
	Toggle(animate bool)
	IsExpanded() bool
	Phase() expander.Phase
	// SetListener registers the single progress listener, replacing any previous one.
	SetListener(l expander.Listener)
	SetDuration(d time.Duration) error
	SetCurve(c animation.Curve)
	// OnConfigurationChanged reports an external geometry change.
	OnConfigurationChanged()
	// Snapshot captures the resting state for persistence.
	Snapshot() State
	// Restore applies a snapshot taken from a widget of the same kind.
	Restore(state State)
	// Dispose cancels pending animations.
	Dispose()
}

// State is the persisted form of either widget. Exactly one field is set.
type State struct {
	Expansion *float64 `yaml:"expansion,omitempty"`
	Expanded  *bool    `yaml:"expanded,omitempty"`
}

// IsExpanded reports whether the snapshot describes an expanded widget.
func (s State) IsExpanded() bool {
	switch {
	case s.Expanded != nil:
		return *s.Expanded
	case s.Expansion != nil:
		return *s.Expansion >= 1
	default:
		return false
	}
}
