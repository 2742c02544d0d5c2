package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/expandable/pkg/layout"
)

// Finder locates render objects in the layout tree.
type Finder interface {
	// Evaluate returns all matching objects under root (depth-first pre-order).
	Evaluate(root layout.RenderObject) []layout.RenderObject
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	objects []layout.RenderObject
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() layout.RenderObject {
	if len(r.objects) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no render objects: %s", desc))
	}
	return r.objects[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() layout.RenderObject {
	if len(r.objects) == 0 {
		return nil
	}
	return r.objects[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []layout.RenderObject {
	return r.objects
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.objects)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.objects) > 0
}

// Size returns the laid out size of the first match. Panics if no matches.
func (r FinderResult) Size() layout.Size {
	return r.First().Size()
}

// labelFinder matches objects whose Label field or Name method equals label.
type labelFinder struct {
	label string
}

func (f *labelFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, func(ro layout.RenderObject) bool {
		return labelOf(ro) == f.label
	})
}

func (f *labelFinder) Description() string {
	return fmt.Sprintf("ByLabel(%q)", f.label)
}

// ByLabel returns a finder matching objects by label.
func ByLabel(label string) Finder {
	return &labelFinder{label: label}
}

// typeFinder matches objects of a concrete type.
type typeFinder struct {
	objectType reflect.Type
}

func (f *typeFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, func(ro layout.RenderObject) bool {
		return reflect.TypeOf(ro) == f.objectType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.objectType)
}

// ByType returns a finder matching objects whose dynamic type is T.
func ByType[T layout.RenderObject]() Finder {
	return &typeFinder{objectType: reflect.TypeFor[T]()}
}

// predicateFinder matches objects satisfying a predicate.
type predicateFinder struct {
	fn   func(layout.RenderObject) bool
	desc string
}

func (f *predicateFinder) Evaluate(root layout.RenderObject) []layout.RenderObject {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches objects satisfying fn.
func ByPredicate(fn func(layout.RenderObject) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// Visible returns a finder that keeps only the visible matches of inner.
func Visible(inner Finder) Finder {
	return &predicateFinder{
		fn: func(ro layout.RenderObject) bool {
			return ro.Visible() && contains(inner.Evaluate(ro), ro)
		},
		desc: fmt.Sprintf("Visible(%s)", inner.Description()),
	}
}

func contains(list []layout.RenderObject, ro layout.RenderObject) bool {
	for _, candidate := range list {
		if candidate == ro {
			return true
		}
	}
	return false
}

// labelOf prefers a Name method and falls back to an exported Label field.
func labelOf(ro layout.RenderObject) string {
	if named, ok := ro.(interface{ Name() string }); ok {
		return named.Name()
	}
	v := reflect.ValueOf(ro)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	field := v.FieldByName("Label")
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

// collectMatches performs depth-first pre-order traversal, collecting
// objects that satisfy the predicate.
func collectMatches(root layout.RenderObject, predicate func(layout.RenderObject) bool) []layout.RenderObject {
	var results []layout.RenderObject
	walkTree(root, func(ro layout.RenderObject) {
		if predicate(ro) {
			results = append(results, ro)
		}
	})
	return results
}

// walkTree performs a depth-first pre-order traversal, including hidden objects.
func walkTree(root layout.RenderObject, visitor func(layout.RenderObject)) {
	if root == nil {
		return
	}
	visitor(root)
	if parent, ok := root.(layout.ChildVisitor); ok {
		parent.VisitChildren(func(child layout.RenderObject) {
			walkTree(child, visitor)
		})
	}
}
