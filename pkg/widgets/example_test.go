package widgets_test

import (
	"fmt"
	"time"

	"github.com/go-drift/expandable/pkg/expander"
	"github.com/go-drift/expandable/pkg/layout"
	exptest "github.com/go-drift/expandable/pkg/testing"
	"github.com/go-drift/expandable/pkg/widgets"
)

// This example shows a frame that reveals its content when expanded.
func ExampleExpandableFrame() {
	tester := exptest.NewTester()
	defer tester.Cleanup()

	frame, err := widgets.NewExpandableFrame("details", layout.WrapParams(), expander.FrameOptions{
		Orientation: layout.Vertical,
		Duration:    200 * time.Millisecond,
		Parallax:    1,
		Driver:      tester.Driver(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	frame.AddChild(layout.NewLeaf("body", layout.Size{Width: 40, Height: 120}, layout.WrapParams()))
	tester.PumpRoot(frame)
	fmt.Println("collapsed:", frame.Size().Height)

	frame.Expand(true)
	_ = tester.PumpAndSettle(time.Second)
	fmt.Println("expanded:", frame.Size().Height)
	// Output:
	// collapsed: 0
	// expanded: 120
}

// This example shows an accordion whose panel slides open under its header.
func ExampleExpandableLinear() {
	tester := exptest.NewTester()
	defer tester.Cleanup()

	list, err := widgets.NewExpandableLinear("accordion", layout.Vertical, layout.WrapParams(), expander.StackOptions{
		Driver: tester.Driver(),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	panel := layout.WrapParams()
	panel.Expandable = true
	list.AddChild(layout.NewLeaf("header", layout.Size{Width: 40, Height: 16}, layout.WrapParams()))
	list.AddChild(layout.NewLeaf("panel", layout.Size{Width: 40, Height: 64}, panel))
	tester.PumpRoot(list)

	list.Expand(false)
	tester.Pump()
	fmt.Println("height:", list.Size().Height)
	// Output:
	// height: 80
}
