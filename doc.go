// Package gridfmt renders two-dimensional data as an aligned, optionally
// styled text grid for terminal output.
//
// A [Builder] is created with the grid's fixed dimensions, accumulates
// layout and style directives, and produces an immutable [Printer]:
//
//	cars := [][]string{
//		{"Make", "Model", "Color", "Year", "Price"},
//		{"Ford", "Pinto", "Green", "1978", "$750.00"},
//		{"Toyota", "Tacoma", "Red", "2006", "$15,475.23"},
//		{"Lamborghini", "Diablo", "Yellow", "2001", "$238,459.99"},
//	}
//
//	printer := gridfmt.New[string](len(cars), len(cars[0])).
//		ColSpacing(4).
//		Build()
//	printer.Print(cars)
//
// Output:
//
//	Make           Model     Color     Year    Price
//	Ford           Pinto     Green     1978    $750.00
//	Toyota         Tacoma    Red       2006    $15,475.23
//	Lamborghini    Diablo    Yellow    2001    $238,459.99
//
// # Validation
//
// Directives that name a row or column index ([Builder.ColStyle],
// [Builder.RowStyle], [Builder.Align], [Builder.MaxColWidth]) are checked
// against the declared dimensions when they are added and fail with an
// [OutOfBoundsError] without mutating the builder. [Builder.Build] can
// therefore never fail. The only runtime check left is the shape of the
// data handed to [Printer.Print]: a disagreement fails with a
// [ShapeMismatchError] before anything reaches the output sink.
//
// # Styling
//
// A [Style] is a value describing foreground color, background color, and
// decoration, each independently unset by default:
//
//	warn := gridfmt.NewStyle().Foreground(gridfmt.Yellow).Decorate(gridfmt.Bold)
//
// Styles attach to whole rows ([Builder.RowStyle]), whole columns
// ([Builder.ColStyle]), or conditionally per cell ([Builder.StyleFunc]).
// When several directives cover the same cell they are merged field by
// field in a fixed precedence order: predicate directives first (in
// registration order), then the row directive, then the column directive.
// A higher-precedence directive's set fields win; its unset fields fall
// through to the next directive.
//
// # Rendering
//
// Escape-code emission lives behind the [Renderer] interface.
// [ANSIRenderer] (the default) emits 16-color ANSI codes via fatih/color
// and suppresses them for non-terminal output; [LipglossRenderer] routes
// through charmbracelet/lipgloss; [PlainRenderer] strips all styling.
// Styling is applied after padding, so background colors cover the full
// cell width and escape codes never affect width computation.
//
// # Stylesheets
//
// [StyleSheet] round-trips the non-predicate parts of a configuration
// through YAML, so end users can theme a CLI's tables without code. Parse
// with [ParseSheet] and apply with [ApplySheet].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrOutOfBounds] — a directive referenced an index outside the grid
//   - [ErrShapeMismatch] — print data disagrees with the declared shape
//   - [ErrUnknownName] — unrecognized color, decoration, or alignment name
//
// The structured [OutOfBoundsError] and [ShapeMismatchError] types carry
// the offending values and unwrap to the sentinels.
package gridfmt
