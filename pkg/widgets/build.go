package widgets

import (
	"fmt"

	"github.com/go-drift/expandable/pkg/animation"
	"github.com/go-drift/expandable/pkg/config"
	"github.com/go-drift/expandable/pkg/errors"
	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
)

// Build creates the widget described by cfg with one leaf per configured
// child. A nil driver uses the default scheduler.
func Build(cfg config.Expander, driver *animation.Driver) (Expandable, error) {
	r, err := cfg.Resolve()
	if err != nil {
		return nil, errors.InvalidConfiguration("widgets.Build", fmt.Errorf("%q: %w", cfg.Name, err))
	}

	switch r.Kind {
	case config.KindLinear:
		w, err := NewExpandableLinear(r.Name, r.Orientation, r.Params, expander.StackOptions{
			Name:              r.Name,
			Duration:          r.Duration,
			InitiallyExpanded: r.InitiallyExpanded,
			Curve:             r.Curve,
			Driver:            driver,
		})
		if err != nil {
			return nil, err
		}
		for _, c := range r.Children {
			w.AddChild(leafFor(c))
		}
		return w, nil

	default:
		w, err := NewExpandableFrame(r.Name, r.Params, expander.FrameOptions{
			Name:              r.Name,
			Duration:          r.Duration,
			InitiallyExpanded: r.InitiallyExpanded,
			Orientation:       r.Orientation,
			Parallax:          r.Parallax,
			Curve:             r.Curve,
			Driver:            driver,
		})
		if err != nil {
			return nil, err
		}
		w.SetLayoutDirection(r.Direction)
		for _, c := range r.Children {
			w.AddChild(leafFor(c))
		}
		return w, nil
	}
}

// BuildAll builds every expander in f, in file order.
func BuildAll(f *config.File, driver *animation.Driver) ([]Expandable, error) {
	out := make([]Expandable, 0, len(f.Expanders))
	for _, e := range f.Expanders {
		w, err := Build(e, driver)
		if err != nil {
			for _, built := range out {
				built.Dispose()
			}
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func leafFor(c config.Child) *layout.Leaf {
	label := c.Text
	if label == "" {
		label = c.Name
	}
	return layout.NewLeaf(label, c.Content(), c.Params())
}
