package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoardSimple(t *testing.T) {
	grid := NewGrid(Straight)
	for i := 0; i < 4; i++ {
		grid.SetTile(0, i)
	}

	b := ParseBoard("CATS", grid)
	require.Equal(t, 4, b.Size())
	assert.Equal(t, "C", b.Tile(0))
	assert.Equal(t, "A", b.Tile(1))
	assert.Equal(t, "T", b.Tile(2))
	assert.Equal(t, "S", b.Tile(3))
	for i := 0; i < 4; i++ {
		assert.Equal(t, 1, b.LetterMult(i))
		assert.Equal(t, 1, b.WordMult(i))
	}
}

func TestParseBoardMultiLetterTile(t *testing.T) {
	b := ParseBoard("Qu", NewGrid(Full))
	require.Equal(t, 1, b.Size())
	assert.Equal(t, "Qu", b.Tile(0))
}

func TestParseBoardMultipliers(t *testing.T) {
	// ':' bumps the letter multiplier, ';' the word multiplier, for the
	// tile that follows.
	b := ParseBoard("::A;B", NewGrid(Full))
	require.Equal(t, 2, b.Size())
	assert.Equal(t, 3, b.LetterMult(0))
	assert.Equal(t, 1, b.WordMult(0))
	assert.Equal(t, 1, b.LetterMult(1))
	assert.Equal(t, 2, b.WordMult(1))
}

func TestParseBoardBlankTile(t *testing.T) {
	b := ParseBoard("A.B", NewGrid(Full))
	require.Equal(t, 3, b.Size())
	assert.Equal(t, "", b.Tile(1))
}

func TestFullAdjacencyConnectsEveryTile(t *testing.T) {
	b := ParseBoard("ABC", NewGrid(Full))
	for i := 0; i < b.Size(); i++ {
		for j := 0; j < b.Size(); j++ {
			assert.True(t, b.IsAdjacent(i, j))
		}
	}
}

func TestNilGridIsFullyConnected(t *testing.T) {
	b := ParseBoard("AB", nil)
	assert.True(t, b.IsAdjacent(0, 1))
	assert.True(t, b.IsAdjacent(1, 0))
}

func TestStraightAdjacency2x2(t *testing.T) {
	grid := NewGrid(Straight)
	grid.SetTile(0, 0)
	grid.SetTile(0, 1)
	grid.SetTile(1, 0)
	grid.SetTile(1, 1)

	b := ParseBoard("ABCD", grid)
	// positions: 0=(0,0) 1=(0,1) 2=(1,0) 3=(1,1)
	assert.True(t, b.IsAdjacent(0, 1))  // same row
	assert.True(t, b.IsAdjacent(0, 2))  // same column
	assert.False(t, b.IsAdjacent(0, 3)) // diagonal only
}

func TestDiagonalAdjacencyIncludesCorners(t *testing.T) {
	grid := NewGrid(Diagonal)
	grid.SetTile(0, 0)
	grid.SetTile(0, 1)
	grid.SetTile(1, 0)
	grid.SetTile(1, 1)

	b := ParseBoard("ABCD", grid)
	assert.True(t, b.IsAdjacent(0, 3))
	assert.True(t, b.IsAdjacent(1, 2))
}
