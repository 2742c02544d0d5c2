// Package testing provides a deterministic harness for expandable containers.
//
// # Quick Start
//
// Create a tester, pump a root, and make assertions:
//
//	func TestDetails(t *testing.T) {
//	    tester := exptest.NewTesterWithT(t)
//	    frame, _ := widgets.NewExpandableFrame("details", layout.WrapParams(), expander.FrameOptions{
//	        Orientation: layout.Vertical,
//	        Duration:    300 * time.Millisecond,
//	        Driver:      tester.Driver(),
//	    })
//	    frame.AddChild(layout.NewLeaf("body", layout.Size{Width: 40, Height: 200}, layout.WrapParams()))
//	    tester.PumpRoot(frame)
//
//	    frame.Expand(true)
//	    tester.PumpAndSettle(time.Second)
//
//	    if got := tester.Find(exptest.ByLabel("details")).Size().Height; got != 200 {
//	        t.Errorf("height = %d", got)
//	    }
//	}
//
// # Animation Testing
//
// Time only moves when the test says so. Animations run on the tester's
// scheduler, which reads a clockz.FakeClock:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// PumpFrames advances by one frame interval per pump.
//
// # Snapshot Testing
//
// Capture and compare the laid out tree:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/details.snapshot.json")
//
// Update snapshots with:
//
//	EXPANDABLE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import exptest "github.com/go-drift/expandable/pkg/testing"
package testing
