// Package geometry describes rectangular regions of the terminal and how to
// cut them in two.
package geometry

import "fmt"

// Number is any type a Box can be measured in.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Box is a rectangle with its origin at (X, Y), Length columns wide and Height
// rows tall.
type Box[T Number] struct {
	X      T
	Y      T
	Length T
	Height T
}

// OffsetFunc computes where to cut given the extent along the split axis.
type OffsetFunc[T Number] func(extent T) T

// Axis names the dimension a split is measured along.
type Axis int

const (
	// Vertical splits cut along the length, producing left and right halves.
	Vertical Axis = iota
	// Horizontal splits cut along the height, producing top and bottom halves.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontally"
	}
	return "vertically"
}

// PartitionError reports a split offset outside the extent being split.
type PartitionError struct {
	Axis   Axis
	Extent any
	Offset any
}

func (e *PartitionError) Error() string {
	dim := "length"
	if e.Axis == Horizontal {
		dim = "height"
	}
	return fmt.Sprintf("tried to partition a box of %s %v by %v %s", dim, e.Extent, e.Offset, e.Axis)
}

// Terminal returns the root box for a terminal of cols by rows cells.
func Terminal(cols, rows int) Box[int] {
	return Box[int]{Length: cols, Height: rows}
}

// SplitVertical cuts b into a left part of offset(b.Length) columns and a
// right part holding the rest.
func (b Box[T]) SplitVertical(offset OffsetFunc[T]) (left, right Box[T], err error) {
	off := offset(b.Length)
	if off < 0 || off > b.Length {
		return Box[T]{}, Box[T]{}, &PartitionError{Axis: Vertical, Extent: b.Length, Offset: off}
	}
	left = b
	left.Length = off
	right = b
	right.X = b.X + off
	right.Length = b.Length - off
	return left, right, nil
}

// SplitHorizontal cuts b into a top part of offset(b.Height) rows and a
// bottom part holding the rest.
func (b Box[T]) SplitHorizontal(offset OffsetFunc[T]) (top, bottom Box[T], err error) {
	off := offset(b.Height)
	if off < 0 || off > b.Height {
		return Box[T]{}, Box[T]{}, &PartitionError{Axis: Horizontal, Extent: b.Height, Offset: off}
	}
	top = b
	top.Height = off
	bottom = b
	bottom.Y = b.Y + off
	bottom.Height = b.Height - off
	return top, bottom, nil
}

// Split dispatches to SplitVertical or SplitHorizontal.
func (b Box[T]) Split(axis Axis, offset OffsetFunc[T]) (Box[T], Box[T], error) {
	if axis == Horizontal {
		return b.SplitHorizontal(offset)
	}
	return b.SplitVertical(offset)
}

// Empty reports whether b covers no cells.
func (b Box[T]) Empty() bool {
	return b.Length <= 0 || b.Height <= 0
}

// Fixed always cuts at n, failing when the extent is smaller.
func Fixed[T Number](n T) OffsetFunc[T] {
	return func(T) T { return n }
}

// FromEnd leaves n units for the second half, or everything when the extent
// is smaller than n.
func FromEnd[T Number](n T) OffsetFunc[T] {
	return func(extent T) T {
		if extent < n {
			return 0
		}
		return extent - n
	}
}
