package gridfmt

import "fmt"

// Color is a named terminal palette color. The zero value means "unset":
// a cell with an unset foreground or background inherits the terminal
// default.
type Color int

const (
	noColor Color = iota

	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var colorNames = map[Color]string{
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "bright-black",
	BrightRed:     "bright-red",
	BrightGreen:   "bright-green",
	BrightYellow:  "bright-yellow",
	BrightBlue:    "bright-blue",
	BrightMagenta: "bright-magenta",
	BrightCyan:    "bright-cyan",
	BrightWhite:   "bright-white",
}

// String returns the color name, or "" for the unset zero value.
func (c Color) String() string { return colorNames[c] }

// ParseColor parses a color name as produced by [Color.String].
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrUnknownName, s)
}

// Decoration is a text decoration. The zero value means "unset".
type Decoration int

const (
	noDecoration Decoration = iota

	Bold
	Faint
	Italic
	Underline
	StrikeThrough
)

var decorationNames = map[Decoration]string{
	Bold:          "bold",
	Faint:         "faint",
	Italic:        "italic",
	Underline:     "underline",
	StrikeThrough: "strikethrough",
}

// String returns the decoration name, or "" for the unset zero value.
func (d Decoration) String() string { return decorationNames[d] }

// ParseDecoration parses a decoration name as produced by
// [Decoration.String].
func ParseDecoration(s string) (Decoration, error) {
	for d, name := range decorationNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: decoration %q", ErrUnknownName, s)
}

// Style describes a visual cell style: optional foreground color, optional
// background color, optional decoration. Each field left unset inherits the
// terminal default (or a lower-precedence directive's value during
// resolution). Style is a small value type; two styles are equal when their
// fields are equal, and the zero Style applies no styling at all.
//
// Styles are built by chaining:
//
//	gridfmt.NewStyle().Foreground(gridfmt.Green).Decorate(gridfmt.Bold)
type Style struct {
	fg   Color
	bg   Color
	deco Decoration
}

// NewStyle returns a Style with every field unset.
func NewStyle() Style { return Style{} }

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy of s with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Decorate returns a copy of s with the decoration set.
func (s Style) Decorate(d Decoration) Style {
	s.deco = d
	return s
}

// GetForeground returns the foreground color (zero if unset).
func (s Style) GetForeground() Color { return s.fg }

// GetBackground returns the background color (zero if unset).
func (s Style) GetBackground() Color { return s.bg }

// GetDecoration returns the decoration (zero if unset).
func (s Style) GetDecoration() Decoration { return s.deco }

// IsZero reports whether every field is unset.
func (s Style) IsZero() bool { return s == Style{} }

// fill returns s with unset fields taken from lower. Set fields in s win.
func (s Style) fill(lower Style) Style {
	if s.fg == noColor {
		s.fg = lower.fg
	}
	if s.bg == noColor {
		s.bg = lower.bg
	}
	if s.deco == noDecoration {
		s.deco = lower.deco
	}
	return s
}
