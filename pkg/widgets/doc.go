// Package widgets binds the expander behaviors to concrete layout containers.
//
// Two widgets are provided:
//
//   - [ExpandableFrame] is a clipping [layout.Frame] that grows and shrinks as
//     a whole along one axis. Children may be shifted (parallax) instead of
//     clipped while it is partly collapsed.
//   - [ExpandableLinear] is a [layout.Linear] whose children flagged
//     Expandable animate between zero and their natural size together, while
//     the other children keep their normal layout.
//
// Both satisfy [Expandable], so hosts can drive them uniformly:
//
//	frame, err := widgets.NewExpandableFrame("details", layout.WrapParams(), expander.DefaultFrameOptions())
//	if err != nil {
//	    return err
//	}
//	frame.AddChild(body)
//	frame.Toggle(true)
//
// # Declarative Construction
//
// [Build] and [BuildAll] create widgets from a parsed [config.File]; each
// configured child becomes a [layout.Leaf].
//
// # State
//
// Snapshot and Restore move a widget's resting state through [State], which
// encodes as YAML. Restoring never animates and never notifies the listener.
//
// # Threading
//
// Widgets are not safe for concurrent use. Create, mutate and pump them from
// the goroutine that runs the frame loop.
package widgets
