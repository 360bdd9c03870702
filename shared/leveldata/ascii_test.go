package leveldata

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMap(t *testing.T) {
	rows := []string{
		"#####",
		"#P C#",
		"#EHG#",
		"#B !#",
		"#####",
	}
	lvl, err := ParseMap("tiny", rows, 40)
	require.NoError(t, err)

	assert.Equal(t, 200.0, lvl.Width)
	assert.Equal(t, 200.0, lvl.Height)
	assert.Equal(t, Point{X: 40, Y: 40}, lvl.PlayerStart)
	assert.Equal(t, 1, lvl.Count(PlaceCoin))
	assert.Equal(t, 1, lvl.Count(PlacePatrol))
	assert.Equal(t, 1, lvl.Count(PlaceChaser))
	assert.Equal(t, 1, lvl.Count(PlaceStomper))
	assert.Equal(t, 1, lvl.Count(PlaceBreakable))
	assert.Equal(t, 1, lvl.Count(PlaceExit))
	assert.Equal(t, 16, lvl.Count(PlaceBlock))

	// Scan order is row-major.
	assert.Equal(t, Placement{Kind: PlaceBlock, X: 0, Y: 0}, lvl.Placements[0])
	assert.Equal(t, Placement{Kind: PlaceCoin, X: 120, Y: 40}, lvl.Placements[6])
}

func TestParseMapRaggedRows(t *testing.T) {
	rows := []string{
		"###",
		"#P###", // Extra columns are ignored
		"#",     // Short row is empty space past its end
		"###",
	}
	lvl, err := ParseMap("ragged", rows, 10)
	require.NoError(t, err)
	assert.Equal(t, 30.0, lvl.Width)
	assert.Equal(t, 3+2+1+3, lvl.Count(PlaceBlock))
}

func TestParseMapErrors(t *testing.T) {
	_, err := ParseMap("empty", nil, 40)
	assert.ErrorIs(t, err, ErrEmptyMap)

	_, err = ParseMap("nostart", []string{"###", "# #", "###"}, 40)
	assert.ErrorIs(t, err, ErrNoPlayerStart)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#87CEEB")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 255}, c)

	_, err = ParseHexColor("#123")
	assert.Error(t, err)
	_, err = ParseHexColor("zzzzzz")
	assert.Error(t, err)
}
