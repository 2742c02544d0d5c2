package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-drift/expandable/pkg/layout"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the layout tree and what would be painted.
type Snapshot struct {
	RenderTree *RenderNode `json:"renderTree"`
	PaintOps   []PaintOp   `json:"paintOps,omitempty"`
}

// RenderNode is a node in the serialized layout tree.
type RenderNode struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	Label       string        `json:"label,omitempty"`
	Size        [2]int        `json:"size"`
	Translation [2]float64    `json:"translation,omitempty"`
	Hidden      bool          `json:"hidden,omitempty"`
	Children    []*RenderNode `json:"children,omitempty"`
}

// PaintOp is one visible node with its absolute bounds and the visible
// part of those bounds after clipping.
type PaintOp struct {
	Label   string     `json:"label"`
	Bounds  [4]float64 `json:"bounds"`
	Visible [4]float64 `json:"visible"`
}

// CaptureSnapshot captures the current tree and paint order.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.root == nil {
		return snap
	}
	snap.RenderTree = captureRenderNode(t.root, &typeCounter{})
	surface := layout.Rect{Width: float64(t.size.Width), Height: float64(t.size.Height)}
	layout.Walk(t.root, layout.Offset{}, surface, func(node layout.RenderObject, bounds, clip layout.Rect) {
		snap.PaintOps = append(snap.PaintOps, PaintOp{
			Label:   labelOf(node),
			Bounds:  serializeRect(bounds),
			Visible: serializeRect(bounds.Intersect(clip)),
		})
	})
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// EXPANDABLE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("EXPANDABLE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: EXPANDABLE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: EXPANDABLE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// typeCounter assigns stable IDs like "Leaf#0", "Leaf#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureRenderNode(ro layout.RenderObject, counter *typeCounter) *RenderNode {
	typeName := renderTypeName(ro)
	size := ro.Size()
	tr := ro.Translation()
	node := &RenderNode{
		ID:          counter.next(typeName),
		Type:        typeName,
		Label:       labelOf(ro),
		Size:        [2]int{size.Width, size.Height},
		Translation: [2]float64{round2(tr.X), round2(tr.Y)},
		Hidden:      !ro.Visible(),
	}
	if visitor, ok := ro.(layout.ChildVisitor); ok {
		visitor.VisitChildren(func(child layout.RenderObject) {
			node.Children = append(node.Children, captureRenderNode(child, counter))
		})
	}
	return node
}

func renderTypeName(ro layout.RenderObject) string {
	t := reflect.TypeOf(ro)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func serializeRect(r layout.Rect) [4]float64 {
	return [4]float64{round2(r.X), round2(r.Y), round2(r.Width), round2(r.Height)}
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
