package gridfmt

import "io"

// predicate is a conditional style directive registered with
// [Builder.StyleFunc]. Every cell is tested: the predicate's verdict on the
// cell value picks which of the two styles the directive contributes.
type predicate[T any] struct {
	axis    Axis
	fn      func(T) bool
	ifTrue  Style
	ifFalse Style
}

// config is the immutable layout/style configuration snapshotted by
// [Builder.Build]. A Printer only ever reads it.
type config[T any] struct {
	dims         Dimensions
	colSpacing   int
	defaultAlign Alignment
	aligns       map[int]Alignment
	maxWidths    map[int]int
	rowStyles    map[int]Style
	colStyles    map[int]Style
	predicates   []predicate[T]
	stringify    func(T) string
	renderer     Renderer
	out          io.Writer
}

// align returns the effective alignment for a column.
func (c *config[T]) align(col int) Alignment {
	if a, ok := c.aligns[col]; ok {
		return a
	}
	return c.defaultAlign
}

// resolve merges every directive that applies to the cell at (row, col)
// holding val into a single style. Precedence, highest first: predicate
// directives in the order they were registered, then the row directive for
// this row, then the column directive for this column. Merging is
// field-by-field: a higher-precedence directive's set fields win and its
// unset fields fall through to lower-precedence directives. With no
// applicable directive the result is the zero Style.
func (c *config[T]) resolve(row, col int, val T) Style {
	var s Style
	for _, p := range c.predicates {
		if p.fn(val) {
			s = s.fill(p.ifTrue)
		} else {
			s = s.fill(p.ifFalse)
		}
	}
	s = s.fill(c.rowStyles[row])
	return s.fill(c.colStyles[col])
}

// clone deep-copies the mutable containers so a Printer's config is
// insulated from further builder mutation.
func (c *config[T]) clone() config[T] {
	out := *c
	out.aligns = copyMap(c.aligns)
	out.maxWidths = copyMap(c.maxWidths)
	out.rowStyles = copyMap(c.rowStyles)
	out.colStyles = copyMap(c.colStyles)
	out.predicates = make([]predicate[T], len(c.predicates))
	copy(out.predicates, c.predicates)
	return out
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
