// Package layout partitions the terminal into boxes and hands each box to a
// draw element.
//
// A Tree starts as a single leaf. Every Place call wraps the existing tree in
// a new split node, so the last placed element sits on the outside. Descend
// walks the tree every cycle with the current terminal box.
package layout

import (
	"errors"
	"io"

	"github.com/five82/glug/internal/geometry"
	"github.com/five82/glug/internal/store"
)

// Element draws into area of the frame. Elements read the store and never
// mutate it.
type Element interface {
	Draw(w io.Writer, area geometry.Box[int], st *store.Store)
}

// Func adapts a plain function to Element.
type Func func(w io.Writer, area geometry.Box[int], st *store.Store)

// Draw calls f.
func (f Func) Draw(w io.Writer, area geometry.Box[int], st *store.Store) {
	f(w, area, st)
}

// Direction says on which side of the existing tree a placed element goes.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Kind identifies a node variant.
type Kind int

const (
	KindEmpty Kind = iota
	KindLeaf
	KindSplitVertical
	KindSplitHorizontal
)

// Node is one vertex of the layout tree. Split nodes own two children: First
// is the left or top box, Second the right or bottom box.
type Node struct {
	Kind    Kind
	Offset  geometry.OffsetFunc[int]
	First   *Node
	Second  *Node
	Element Element
}

// Leaf wraps e in a node.
func Leaf(e Element) *Node {
	return &Node{Kind: KindLeaf, Element: e}
}

// SplitVertical returns a node drawing left and right side by side.
func SplitVertical(offset geometry.OffsetFunc[int], left, right *Node) *Node {
	return &Node{Kind: KindSplitVertical, Offset: offset, First: left, Second: right}
}

// SplitHorizontal returns a node drawing top above bottom.
func SplitHorizontal(offset geometry.OffsetFunc[int], top, bottom *Node) *Node {
	return &Node{Kind: KindSplitHorizontal, Offset: offset, First: top, Second: bottom}
}

// Tree is a layout rooted at a single node.
type Tree struct {
	root *Node
}

// New returns a tree whose only element is e.
func New(e Element) *Tree {
	return &Tree{root: Leaf(e)}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Place puts e on side dir of the current tree. offset splits the parent box:
// for Up and Left it measures the new element, for Down and Right it measures
// the existing tree.
func (t *Tree) Place(e Element, dir Direction, offset geometry.OffsetFunc[int]) *Tree {
	leaf := Leaf(e)
	old := t.root
	switch dir {
	case Up:
		t.root = SplitHorizontal(offset, leaf, old)
	case Down:
		t.root = SplitHorizontal(offset, old, leaf)
	case Left:
		t.root = SplitVertical(offset, leaf, old)
	default:
		t.root = SplitVertical(offset, old, leaf)
	}
	return t
}

// Descend partitions box down the tree and draws every leaf into w. When a
// split fails its subtree is skipped, the sibling subtree is still drawn and
// every failure is returned joined.
func (t *Tree) Descend(w io.Writer, box geometry.Box[int], st *store.Store) error {
	return descend(t.root, w, box, st)
}

func descend(n *Node, w io.Writer, box geometry.Box[int], st *store.Store) error {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindLeaf:
		if n.Element != nil {
			n.Element.Draw(w, box, st)
		}
		return nil
	case KindSplitVertical, KindSplitHorizontal:
		axis := geometry.Vertical
		if n.Kind == KindSplitHorizontal {
			axis = geometry.Horizontal
		}
		first, second, err := box.Split(axis, n.Offset)
		if err != nil {
			return err
		}
		return errors.Join(descend(n.First, w, first, st), descend(n.Second, w, second, st))
	default:
		return nil
	}
}
