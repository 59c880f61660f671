package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/store"
)

type recorder struct {
	name  string
	boxes *[]string
}

func (r recorder) Draw(w io.Writer, area geometry.Box[int], _ *store.Store) {
	*r.boxes = append(*r.boxes, fmt.Sprintf("%s %v", r.name, area))
	fmt.Fprint(w, r.name)
}

func TestPlaceDirections(t *testing.T) {
	tests := []struct {
		dir    Direction
		offset int
		want   []string
	}{
		{Right, 8, []string{"old {0 0 8 5}", "new {8 0 2 5}"}},
		{Left, 3, []string{"new {0 0 3 5}", "old {3 0 7 5}"}},
		{Down, 4, []string{"old {0 0 10 4}", "new {0 4 10 1}"}},
		{Up, 1, []string{"new {0 0 10 1}", "old {0 1 10 4}"}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			var boxes []string
			tree := New(recorder{"old", &boxes})
			tree.Place(recorder{"new", &boxes}, tt.dir, geometry.Fixed(tt.offset))

			if err := tree.Descend(io.Discard, geometry.Terminal(10, 5), nil); err != nil {
				t.Fatalf("Descend: %v", err)
			}
			if fmt.Sprint(boxes) != fmt.Sprint(tt.want) {
				t.Fatalf("boxes = %v, want %v", boxes, tt.want)
			}
		})
	}
}

func TestDefaultShapedTree(t *testing.T) {
	var boxes []string
	tree := New(recorder{"feed", &boxes}).
		Place(recorder{"vbar", &boxes}, Right, geometry.FromEnd(1)).
		Place(recorder{"hist", &boxes}, Right, geometry.FromEnd(7)).
		Place(recorder{"hbar", &boxes}, Down, geometry.FromEnd(1)).
		Place(recorder{"summary", &boxes}, Down, geometry.FromEnd(6))

	var buf bytes.Buffer
	if err := tree.Descend(&buf, geometry.Terminal(80, 24), nil); err != nil {
		t.Fatalf("Descend: %v", err)
	}
	want := []string{
		"feed {0 0 72 17}",
		"vbar {72 0 1 17}",
		"hist {73 0 7 17}",
		"hbar {0 17 80 1}",
		"summary {0 18 80 6}",
	}
	if fmt.Sprint(boxes) != fmt.Sprint(want) {
		t.Fatalf("boxes = %v, want %v", boxes, want)
	}
	if buf.String() != "feedvbarhisthbarsummary" {
		t.Fatalf("frame = %q", buf.String())
	}
}

func TestDescendDrawsSiblingOfFailedSplit(t *testing.T) {
	var boxes []string
	left := SplitVertical(geometry.Fixed(50), Leaf(recorder{"a", &boxes}), Leaf(recorder{"b", &boxes}))
	right := Leaf(recorder{"c", &boxes})
	tree := &Tree{root: SplitVertical(geometry.Fixed(5), left, right)}

	err := tree.Descend(io.Discard, geometry.Terminal(10, 2), nil)
	var pe *geometry.PartitionError
	if !errors.As(err, &pe) {
		t.Fatalf("Descend error = %v, want *PartitionError", err)
	}
	if pe.Extent != 5 || pe.Offset != 50 {
		t.Fatalf("PartitionError = %+v", pe)
	}
	if fmt.Sprint(boxes) != "[c {5 0 5 2}]" {
		t.Fatalf("boxes = %v, want only c drawn", boxes)
	}
}

func TestDescendJoinsFailures(t *testing.T) {
	var boxes []string
	bad := func() *Node {
		return SplitHorizontal(geometry.Fixed(9), Leaf(recorder{"x", &boxes}), Leaf(recorder{"y", &boxes}))
	}
	tree := &Tree{root: SplitVertical(geometry.Fixed(2), bad(), bad())}

	err := tree.Descend(io.Discard, geometry.Terminal(4, 3), nil)
	if err == nil {
		t.Fatalf("Descend returned nil")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Fatalf("Descend error = %v, want two joined failures", err)
	}
	if len(boxes) != 0 {
		t.Fatalf("drew %v under failing splits", boxes)
	}
}

func TestRootSplitFailureDrawsNothing(t *testing.T) {
	var boxes []string
	tree := New(recorder{"a", &boxes}).Place(recorder{"b", &boxes}, Right, geometry.Fixed(20))
	if err := tree.Descend(io.Discard, geometry.Terminal(10, 1), nil); err == nil {
		t.Fatalf("Descend returned nil for oversized offset")
	}
	if len(boxes) != 0 {
		t.Fatalf("boxes = %v, want none", boxes)
	}
}

func TestFuncAndEmpty(t *testing.T) {
	called := false
	tree := New(Func(func(io.Writer, geometry.Box[int], *store.Store) { called = true }))
	if err := tree.Descend(io.Discard, geometry.Terminal(1, 1), nil); err != nil || !called {
		t.Fatalf("Func element: called=%v err=%v", called, err)
	}
	if err := descend(&Node{}, io.Discard, geometry.Terminal(1, 1), nil); err != nil {
		t.Fatalf("empty node: %v", err)
	}
	if tree.Root().Kind != KindLeaf {
		t.Fatalf("Root().Kind = %v, want KindLeaf", tree.Root().Kind)
	}
}
