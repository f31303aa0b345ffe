package gridfmt

import (
	"slices"

	"gopkg.in/yaml.v3"
)

// StyleSheet is a serializable grid configuration, letting callers keep
// spacing, alignment, and styling in a YAML document instead of code:
//
//	col_spacing: 4
//	alignments:
//	  2: right
//	columns:
//	  0: {fg: magenta}
//	  1: {fg: black, bg: bright-yellow, decoration: italic}
//	rows:
//	  0: {decoration: bold}
//	max_widths:
//	  1: 10
//
// Index validation happens when the sheet is applied to a builder, not when
// it is parsed, since the sheet does not know the grid's dimensions.
type StyleSheet struct {
	ColSpacing       *int              `yaml:"col_spacing,omitempty"`
	DefaultAlignment *Alignment        `yaml:"default_alignment,omitempty"`
	Alignments       map[int]Alignment `yaml:"alignments,omitempty"`
	Columns          map[int]Style     `yaml:"columns,omitempty"`
	Rows             map[int]Style     `yaml:"rows,omitempty"`
	MaxWidths        map[int]int       `yaml:"max_widths,omitempty"`
}

// ParseSheet parses a YAML stylesheet.
func ParseSheet(data []byte) (*StyleSheet, error) {
	var s StyleSheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Bytes serializes the sheet back to YAML.
func (s *StyleSheet) Bytes() ([]byte, error) {
	return yaml.Marshal(s)
}

// ApplySheet applies every setting in the sheet to b. The first directive
// that references an index outside b's dimensions aborts with an
// [OutOfBoundsError]; settings applied before it remain in effect.
func ApplySheet[T any](sheet *StyleSheet, b *Builder[T]) error {
	if sheet.ColSpacing != nil {
		b.ColSpacing(*sheet.ColSpacing)
	}
	if sheet.DefaultAlignment != nil {
		b.DefaultAlignment(*sheet.DefaultAlignment)
	}
	for _, i := range sortedKeys(sheet.Alignments) {
		if err := b.Align(i, sheet.Alignments[i]); err != nil {
			return err
		}
	}
	for _, i := range sortedKeys(sheet.Columns) {
		if err := b.ColStyle(i, sheet.Columns[i]); err != nil {
			return err
		}
	}
	for _, i := range sortedKeys(sheet.Rows) {
		if err := b.RowStyle(i, sheet.Rows[i]); err != nil {
			return err
		}
	}
	for _, i := range sortedKeys(sheet.MaxWidths) {
		if err := b.MaxColWidth(i, sheet.MaxWidths[i]); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys keeps sheet application deterministic.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// styleYAML is the wire form of a Style.
type styleYAML struct {
	Foreground string `yaml:"fg,omitempty"`
	Background string `yaml:"bg,omitempty"`
	Decoration string `yaml:"decoration,omitempty"`
}

// MarshalYAML encodes the style with named colors and decorations.
func (s Style) MarshalYAML() (any, error) {
	return styleYAML{
		Foreground: s.fg.String(),
		Background: s.bg.String(),
		Decoration: s.deco.String(),
	}, nil
}

// UnmarshalYAML decodes a style, rejecting unknown color or decoration
// names with [ErrUnknownName].
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	var raw styleYAML
	if err := node.Decode(&raw); err != nil {
		return err
	}
	var out Style
	var err error
	if raw.Foreground != "" {
		if out.fg, err = ParseColor(raw.Foreground); err != nil {
			return err
		}
	}
	if raw.Background != "" {
		if out.bg, err = ParseColor(raw.Background); err != nil {
			return err
		}
	}
	if raw.Decoration != "" {
		if out.deco, err = ParseDecoration(raw.Decoration); err != nil {
			return err
		}
	}
	*s = out
	return nil
}

// MarshalYAML encodes the alignment by name.
func (a Alignment) MarshalYAML() (any, error) { return a.String(), nil }

// UnmarshalYAML decodes an alignment name.
func (a *Alignment) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseAlignment(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
