package gridfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. The structured
// [OutOfBoundsError] and [ShapeMismatchError] types unwrap to these.
var (
	ErrOutOfBounds   = errors.New("index out of bounds")
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrUnknownName   = errors.New("unknown name")
)

// Axis identifies a grid axis.
type Axis int

const (
	Row Axis = iota
	Column
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("alignment(%d)", int(a))
	}
}

// ParseAlignment parses an alignment name as produced by [Alignment.String].
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return 0, fmt.Errorf("%w: alignment %q", ErrUnknownName, s)
	}
}

// Dimensions is the (rows, columns) shape of a grid.
type Dimensions struct {
	Rows int
	Cols int
}

// String renders the shape as "RxC".
func (d Dimensions) String() string { return fmt.Sprintf("%dx%d", d.Rows, d.Cols) }

// OutOfBoundsError reports a builder directive that references a row or
// column index outside the declared dimensions. The builder's state is
// unchanged when it is returned.
type OutOfBoundsError struct {
	Axis  Axis // axis the index refers to
	Index int  // offending index
	Size  int  // declared size on that axis
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%v: %s index %d outside valid range [0, %d)", ErrOutOfBounds, e.Axis, e.Index, e.Size)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// ShapeMismatchError reports print data whose shape disagrees with the
// dimensions the printer was built for. Nothing is written to the output
// sink when it is returned.
type ShapeMismatchError struct {
	Expected Dimensions
	Actual   Dimensions
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %v, got %v", ErrShapeMismatch, e.Expected, e.Actual)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

func outOfBounds(axis Axis, index, size int) error {
	return &OutOfBoundsError{Axis: axis, Index: index, Size: size}
}

// checkShape verifies that data is exactly dims and returns a
// *ShapeMismatchError describing the first disagreement otherwise.
func checkShape[T any](dims Dimensions, data [][]T) error {
	actual := Dimensions{Rows: len(data), Cols: dims.Cols}
	ok := actual.Rows == dims.Rows
	for _, row := range data {
		if len(row) != dims.Cols {
			actual.Cols = len(row)
			ok = false
			break
		}
	}
	if ok {
		return nil
	}
	return &ShapeMismatchError{Expected: dims, Actual: actual}
}
