package gridfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// columnWidths computes one width per column: the maximum display width of
// any cell in that column, capped by the per-column maximums (zero or
// absent means no cap). Widths are derived fresh from the supplied texts on
// every call and never persisted.
func columnWidths(texts [][]string, cols int, maxWidths map[int]int) []int {
	widths := make([]int, cols)
	for _, row := range texts {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, max := range maxWidths {
		if i < cols && max > 0 && widths[i] > max {
			widths[i] = max
		}
	}
	return widths
}

// formatCell truncates s to width if necessary and pads it per align.
func formatCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

// alignCell pads s to width. Left pads right, Right pads left, Center
// splits the padding with any odd remainder on the right.
func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
