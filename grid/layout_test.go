package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParse_RoundTrip parses a layout and renders it back unchanged.
func TestParse_RoundTrip(t *testing.T) {
	layout := "A..#\n.9.#\n...B\n"
	g, err := grid.Parse(layout)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, pos(0, 0), g.Start)
	assert.Equal(t, pos(2, 3), g.End)

	s, _ := g.State(pos(1, 1))
	assert.Equal(t, grid.Weighted, s)
	s, _ = g.State(pos(0, 3))
	assert.Equal(t, grid.Wall, s)

	assert.Equal(t, layout, g.String())
}

// TestParse_Indented accepts surrounding whitespace and the '1' open symbol.
func TestParse_Indented(t *testing.T) {
	g, err := grid.Parse(`
		A1
		1B
	`)
	require.NoError(t, err)
	assert.Equal(t, "A.\n.B\n", g.String())
}

// TestParse_Errors covers malformed layouts.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		err    error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"Ragged", "A..\n.B", grid.ErrNonRectangular},
		{"Unknown", "A?\n.B", grid.ErrUnknownSymbol},
		{"NoEnd", "A.\n..", grid.ErrMissingEndpoint},
		{"TwoStarts", "AA\n.B", grid.ErrMissingEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.layout)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRender_Path overlays a path but keeps the endpoint symbols.
func TestRender_Path(t *testing.T) {
	g, err := grid.Parse("A..\n#..\n..B")
	require.NoError(t, err)

	path := []grid.Position{pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}
	assert.Equal(t, "A*.\n#*.\n.*B\n", g.Render(path))
}
