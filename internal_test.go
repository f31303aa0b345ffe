package gridfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignCellCenterOddRemainder(t *testing.T) {
	t.Parallel()
	// Odd padding puts the extra space on the right.
	assert.Equal(t, " ab  ", alignCell("ab", 5, AlignCenter))
}

func TestAlignCellNoPadNeeded(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", alignCell("abc", 3, AlignRight))
	assert.Equal(t, "abcd", alignCell("abcd", 2, AlignLeft))
}

func TestFormatCellTruncates(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab...", formatCell("abcdefgh", 5, AlignLeft))
	assert.Equal(t, "abc", formatCell("abcdefgh", 3, AlignLeft))
}

func TestColumnWidthsWideRunes(t *testing.T) {
	t.Parallel()
	widths := columnWidths([][]string{{"你好", "a"}, {"hi", "bbb"}}, 2, nil)
	assert.Equal(t, []int{4, 3}, widths)
}

func TestColumnWidthsCapped(t *testing.T) {
	t.Parallel()
	widths := columnWidths([][]string{{"abcdefgh"}}, 1, map[int]int{0: 5})
	assert.Equal(t, []int{5}, widths)
}

func TestColumnWidthsZeroCapIgnored(t *testing.T) {
	t.Parallel()
	widths := columnWidths([][]string{{"abcdefgh"}}, 1, map[int]int{0: 0})
	assert.Equal(t, []int{8}, widths)
}

func TestStyleFill(t *testing.T) {
	t.Parallel()
	high := Style{fg: Red}
	low := Style{fg: Blue, bg: White, deco: Bold}
	assert.Equal(t, Style{fg: Red, bg: White, deco: Bold}, high.fill(low))
	assert.Equal(t, low, Style{}.fill(low))
	assert.Equal(t, high, high.fill(Style{}))
}

func TestCheckShapeEmpty(t *testing.T) {
	t.Parallel()
	assert.NoError(t, checkShape[string](Dimensions{}, nil))
	assert.NoError(t, checkShape(Dimensions{}, [][]string{}))
	assert.Error(t, checkShape(Dimensions{Rows: 1, Cols: 1}, [][]string{}))
}

func TestConfigCloneIsolation(t *testing.T) {
	t.Parallel()
	c := config[string]{
		aligns:    map[int]Alignment{0: AlignRight},
		maxWidths: map[int]int{},
		rowStyles: map[int]Style{},
		colStyles: map[int]Style{0: {fg: Red}},
	}
	clone := c.clone()
	c.aligns[1] = AlignCenter
	c.colStyles[0] = Style{fg: Blue}

	assert.NotContains(t, clone.aligns, 1)
	assert.Equal(t, Style{fg: Red}, clone.colStyles[0])
}
