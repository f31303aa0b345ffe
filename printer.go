package gridfmt

import (
	"io"
	"strings"
)

// Printer renders two-dimensional data as an aligned, optionally styled
// text block. A Printer is immutable and safe for concurrent use: every
// call only reads the configuration captured by [Builder.Build] and
// computes a fresh result.
type Printer[T any] struct {
	cfg config[T]
}

// Dimensions returns the grid shape the printer was built for.
func (p *Printer[T]) Dimensions() Dimensions { return p.cfg.dims }

// Print renders data and writes the block to the configured output sink.
// Data whose shape disagrees with the declared dimensions fails with a
// [ShapeMismatchError] before anything is written: the sink receives either
// the complete block or nothing.
func (p *Printer[T]) Print(data [][]T) error {
	return p.Fprint(p.cfg.out, data)
}

// Fprint is [Printer.Print] with an explicit sink.
func (p *Printer[T]) Fprint(w io.Writer, data [][]T) error {
	block, err := p.Render(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, block)
	return err
}

// Render returns the rendered block as a string. One line per row, each
// cell truncated and padded to its column's width per that column's
// alignment, columns separated by the configured spacing with no separator
// after the last column, rows joined by newline. Styling is applied to the
// padded cell text by the configured renderer, so backgrounds cover the
// padding.
func (p *Printer[T]) Render(data [][]T) (string, error) {
	if err := checkShape(p.cfg.dims, data); err != nil {
		return "", err
	}

	texts := make([][]string, len(data))
	for r, row := range data {
		texts[r] = make([]string, len(row))
		for c, val := range row {
			texts[r][c] = p.cfg.stringify(val)
		}
	}
	widths := columnWidths(texts, p.cfg.dims.Cols, p.cfg.maxWidths)

	var sb strings.Builder
	sep := strings.Repeat(" ", p.cfg.colSpacing)
	for r, row := range texts {
		for c, cell := range row {
			if c > 0 {
				sb.WriteString(sep)
			}
			text := formatCell(cell, widths[c], p.cfg.align(c))
			sb.WriteString(p.cfg.renderer.Render(text, p.cfg.resolve(r, c, data[r][c])))
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
