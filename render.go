package gridfmt

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Renderer converts a style descriptor and a fully padded cell text into
// the final output fragment. Implementations own everything about terminal
// styling: escape codes, capability detection, color downgrading. A zero
// [Style] must render as the unmodified text.
type Renderer interface {
	Render(text string, style Style) string
}

// PlainRenderer emits cell text unmodified, ignoring all styles.
type PlainRenderer struct{}

func (PlainRenderer) Render(text string, _ Style) string { return text }

// ANSIRenderer is the default renderer. It emits 16-color ANSI escape
// codes via fatih/color, which suppresses them when the process is not
// attached to a terminal or NO_COLOR is set.
type ANSIRenderer struct {
	// Force emits escape codes regardless of terminal detection. Useful
	// when the output is piped to something that understands ANSI.
	Force bool
}

var ansiFg = map[Color]color.Attribute{
	Black:         color.FgBlack,
	Red:           color.FgRed,
	Green:         color.FgGreen,
	Yellow:        color.FgYellow,
	Blue:          color.FgBlue,
	Magenta:       color.FgMagenta,
	Cyan:          color.FgCyan,
	White:         color.FgWhite,
	BrightBlack:   color.FgHiBlack,
	BrightRed:     color.FgHiRed,
	BrightGreen:   color.FgHiGreen,
	BrightYellow:  color.FgHiYellow,
	BrightBlue:    color.FgHiBlue,
	BrightMagenta: color.FgHiMagenta,
	BrightCyan:    color.FgHiCyan,
	BrightWhite:   color.FgHiWhite,
}

var ansiBg = map[Color]color.Attribute{
	Black:         color.BgBlack,
	Red:           color.BgRed,
	Green:         color.BgGreen,
	Yellow:        color.BgYellow,
	Blue:          color.BgBlue,
	Magenta:       color.BgMagenta,
	Cyan:          color.BgCyan,
	White:         color.BgWhite,
	BrightBlack:   color.BgHiBlack,
	BrightRed:     color.BgHiRed,
	BrightGreen:   color.BgHiGreen,
	BrightYellow:  color.BgHiYellow,
	BrightBlue:    color.BgHiBlue,
	BrightMagenta: color.BgHiMagenta,
	BrightCyan:    color.BgHiCyan,
	BrightWhite:   color.BgHiWhite,
}

var ansiDeco = map[Decoration]color.Attribute{
	Bold:          color.Bold,
	Faint:         color.Faint,
	Italic:        color.Italic,
	Underline:     color.Underline,
	StrikeThrough: color.CrossedOut,
}

func (r ANSIRenderer) Render(text string, s Style) string {
	if s.IsZero() {
		return text
	}
	var attrs []color.Attribute
	if a, ok := ansiFg[s.fg]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := ansiBg[s.bg]; ok {
		attrs = append(attrs, a)
	}
	if a, ok := ansiDeco[s.deco]; ok {
		attrs = append(attrs, a)
	}
	c := color.New(attrs...)
	if r.Force {
		c.EnableColor()
	}
	return c.Sprint(text)
}

// LipglossRenderer renders styles through charmbracelet/lipgloss, which
// adapts output to the detected color profile of the terminal.
type LipglossRenderer struct{}

// lipglossColors maps the palette to lipgloss ANSI color codes.
var lipglossColors = map[Color]lipgloss.Color{
	Black:         lipgloss.Color("0"),
	Red:           lipgloss.Color("1"),
	Green:         lipgloss.Color("2"),
	Yellow:        lipgloss.Color("3"),
	Blue:          lipgloss.Color("4"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
	White:         lipgloss.Color("7"),
	BrightBlack:   lipgloss.Color("8"),
	BrightRed:     lipgloss.Color("9"),
	BrightGreen:   lipgloss.Color("10"),
	BrightYellow:  lipgloss.Color("11"),
	BrightBlue:    lipgloss.Color("12"),
	BrightMagenta: lipgloss.Color("13"),
	BrightCyan:    lipgloss.Color("14"),
	BrightWhite:   lipgloss.Color("15"),
}

func (LipglossRenderer) Render(text string, s Style) string {
	if s.IsZero() {
		return text
	}
	st := lipgloss.NewStyle()
	if c, ok := lipglossColors[s.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := lipglossColors[s.bg]; ok {
		st = st.Background(c)
	}
	switch s.deco {
	case Bold:
		st = st.Bold(true)
	case Faint:
		st = st.Faint(true)
	case Italic:
		st = st.Italic(true)
	case Underline:
		st = st.Underline(true)
	case StrikeThrough:
		st = st.Strikethrough(true)
	}
	return st.Render(text)
}
