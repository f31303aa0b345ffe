package gridfmt

import (
	"fmt"
	"io"
	"os"
)

// Builder accumulates layout and style directives for a grid of fixed
// dimensions and produces an immutable [Printer]. Directives that reference
// a row or column index are validated against the declared dimensions as
// they are added; a failed call returns an [OutOfBoundsError] and leaves
// the builder untouched, so the caller may retry with a corrected index.
//
// A Builder is single-owner and not safe for concurrent use. After
// [Builder.Build] it should be discarded; the Printer holds its own
// snapshot of the configuration.
type Builder[T any] struct {
	cfg config[T]
}

// New creates a builder for a rows-by-cols grid. Negative dimensions are
// clamped to zero. Defaults: column spacing 2, alignment [AlignLeft], no
// style directives, output to standard output via the ANSI renderer.
func New[T any](rows, cols int) *Builder[T] {
	return &Builder[T]{cfg: config[T]{
		dims:       Dimensions{Rows: max(rows, 0), Cols: max(cols, 0)},
		colSpacing: 2,
		aligns:     make(map[int]Alignment),
		maxWidths:  make(map[int]int),
		rowStyles:  make(map[int]Style),
		colStyles:  make(map[int]Style),
		stringify:  func(v T) string { return fmt.Sprint(v) },
		renderer:   ANSIRenderer{},
		out:        os.Stdout,
	}}
}

// ColSpacing sets the number of literal spaces between columns. Negative
// values are clamped to zero.
func (b *Builder[T]) ColSpacing(n int) *Builder[T] {
	b.cfg.colSpacing = max(n, 0)
	return b
}

// DefaultAlignment sets the alignment used by columns without an explicit
// [Builder.Align] override.
func (b *Builder[T]) DefaultAlignment(a Alignment) *Builder[T] {
	b.cfg.defaultAlign = a
	return b
}

// Output sets the sink [Printer.Print] writes to.
func (b *Builder[T]) Output(w io.Writer) *Builder[T] {
	b.cfg.out = w
	return b
}

// Renderer sets the style renderer used to emit styled cell text.
func (b *Builder[T]) Renderer(r Renderer) *Builder[T] {
	b.cfg.renderer = r
	return b
}

// Stringify sets the cell-to-text conversion. The default is [fmt.Sprint].
func (b *Builder[T]) Stringify(fn func(T) string) *Builder[T] {
	b.cfg.stringify = fn
	return b
}

// StyleFunc registers a conditional directive over the given axis. At
// resolution time the predicate is evaluated on each cell's value and the
// directive contributes ifTrue or ifFalse accordingly. Predicate directives
// outrank row and column directives; among themselves, earlier-registered
// directives win on conflicting fields.
func (b *Builder[T]) StyleFunc(axis Axis, ifTrue, ifFalse Style, fn func(T) bool) *Builder[T] {
	b.cfg.predicates = append(b.cfg.predicates, predicate[T]{
		axis:    axis,
		fn:      fn,
		ifTrue:  ifTrue,
		ifFalse: ifFalse,
	})
	return b
}

// ColStyle sets the style for every cell in column index. A second call for
// the same column replaces the first.
func (b *Builder[T]) ColStyle(index int, s Style) error {
	if index < 0 || index >= b.cfg.dims.Cols {
		return outOfBounds(Column, index, b.cfg.dims.Cols)
	}
	b.cfg.colStyles[index] = s
	return nil
}

// RowStyle sets the style for every cell in row index. A second call for
// the same row replaces the first.
func (b *Builder[T]) RowStyle(index int, s Style) error {
	if index < 0 || index >= b.cfg.dims.Rows {
		return outOfBounds(Row, index, b.cfg.dims.Rows)
	}
	b.cfg.rowStyles[index] = s
	return nil
}

// Align overrides the alignment for column index.
func (b *Builder[T]) Align(index int, a Alignment) error {
	if index < 0 || index >= b.cfg.dims.Cols {
		return outOfBounds(Column, index, b.cfg.dims.Cols)
	}
	b.cfg.aligns[index] = a
	return nil
}

// MaxColWidth caps the computed width of column index. Cells wider than the
// cap are truncated, with "..." when the cap leaves room for it. A cap of
// zero removes the limit.
func (b *Builder[T]) MaxColWidth(index, width int) error {
	if index < 0 || index >= b.cfg.dims.Cols {
		return outOfBounds(Column, index, b.cfg.dims.Cols)
	}
	b.cfg.maxWidths[index] = max(width, 0)
	return nil
}

// Build returns a Printer for the accumulated configuration. It cannot
// fail: every directive was validated when it was added.
func (b *Builder[T]) Build() *Printer[T] {
	return &Printer[T]{cfg: b.cfg.clone()}
}
