package gridfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidelake/gridfmt"
)

func TestResolveNoDirectives(t *testing.T) {
	t.Parallel()
	out, err := gridfmt.New[string](1, 1).Renderer(tagRenderer{}).Build().
		Render([][]string{{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "x\n", out, "no directive resolves to the zero style")
}

func TestResolveColumnStyle(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[string](1, 2).ColSpacing(1).Renderer(tagRenderer{})
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Magenta)))
	out, err := b.Build().Render([][]string{{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, "[fg=magenta]a[/] b\n", out)
}

func TestResolveRowStyle(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[string](2, 1).Renderer(tagRenderer{})
	require.NoError(t, b.RowStyle(1, gridfmt.NewStyle().Decorate(gridfmt.Underline)))
	out, err := b.Build().Render([][]string{{"a"}, {"b"}})
	require.NoError(t, err)
	assert.Equal(t, "a\n[underline]b[/]\n", out)
}

func TestResolveRowBeatsColumn(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[string](1, 1).Renderer(tagRenderer{})
	require.NoError(t, b.RowStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Red)))
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Blue).Background(gridfmt.White)))
	out, err := b.Build().Render([][]string{{"x"}})
	require.NoError(t, err)
	// Row wins the contested foreground; the column's background fills in.
	assert.Equal(t, "[fg=red bg=white]x[/]\n", out)
}

func TestResolvePredicateMergesWithColumn(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[int](1, 1).Renderer(tagRenderer{})
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Green)))
	printer := b.StyleFunc(
		gridfmt.Column,
		gridfmt.NewStyle().Background(gridfmt.Red),
		gridfmt.NewStyle(),
		func(v int) bool { return v > 100 },
	).Build()

	out, err := printer.Render([][]int{{150}})
	require.NoError(t, err)
	// Disjoint fields merge: predicate background plus column foreground.
	assert.Equal(t, "[fg=green bg=red]150[/]\n", out)
}

func TestResolvePredicateBeatsRowAndColumn(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[int](1, 1).Renderer(tagRenderer{})
	require.NoError(t, b.RowStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Blue)))
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.White)))
	printer := b.StyleFunc(
		gridfmt.Row,
		gridfmt.NewStyle().Foreground(gridfmt.Red),
		gridfmt.NewStyle(),
		func(v int) bool { return v != 0 },
	).Build()

	out, err := printer.Render([][]int{{1}})
	require.NoError(t, err)
	assert.Equal(t, "[fg=red]1[/]\n", out)
}

func TestResolvePredicateFalseBranch(t *testing.T) {
	t.Parallel()
	printer := gridfmt.New[int](1, 2).ColSpacing(1).Renderer(tagRenderer{}).
		StyleFunc(
			gridfmt.Column,
			gridfmt.NewStyle().Foreground(gridfmt.Green),
			gridfmt.NewStyle().Foreground(gridfmt.Red),
			func(v int) bool { return v >= 0 },
		).Build()

	out, err := printer.Render([][]int{{5, -5}})
	require.NoError(t, err)
	assert.Equal(t, "[fg=green]5[/] [fg=red]-5[/]\n", out)
}

func TestResolveEarlierPredicateWins(t *testing.T) {
	t.Parallel()
	always := func(int) bool { return true }
	printer := gridfmt.New[int](1, 1).Renderer(tagRenderer{}).
		StyleFunc(gridfmt.Column, gridfmt.NewStyle().Foreground(gridfmt.Yellow), gridfmt.NewStyle(), always).
		StyleFunc(gridfmt.Column, gridfmt.NewStyle().Foreground(gridfmt.Cyan).Background(gridfmt.Black), gridfmt.NewStyle(), always).
		Build()

	out, err := printer.Render([][]int{{7}})
	require.NoError(t, err)
	// First-registered wins the contested foreground; the later
	// directive still contributes its background.
	assert.Equal(t, "[fg=yellow bg=black]7[/]\n", out)
}

func TestResolveReplacesRepeatedIndexDirective(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[string](1, 1).Renderer(tagRenderer{})
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Red)))
	require.NoError(t, b.ColStyle(0, gridfmt.NewStyle().Foreground(gridfmt.Green)))
	out, err := b.Build().Render([][]string{{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "[fg=green]x[/]\n", out)
}

func TestResolveStyleAppliesToPaddedText(t *testing.T) {
	t.Parallel()
	b := gridfmt.New[string](2, 1).Renderer(tagRenderer{})
	require.NoError(t, b.RowStyle(0, gridfmt.NewStyle().Background(gridfmt.Blue)))
	out, err := b.Build().Render([][]string{{"ab"}, {"wider"}})
	require.NoError(t, err)
	// Padding happens before styling so backgrounds cover the pad.
	assert.Equal(t, "[bg=blue]ab   [/]\nwider\n", out)
}
