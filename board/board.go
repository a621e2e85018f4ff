// Package board parses textual board descriptions into a Grid shape
// and a Board of tiles with per-tile letter/word multipliers and an
// adjacency matrix, the way a grid word game like Boggle represents a
// physical board.
package board

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// MaxGridWidth is the largest supported grid dimension in either axis.
const MaxGridWidth = 10

// Adjacency selects which neighboring cells are considered connected.
type Adjacency string

const (
	// Full connects every live cell to every other live cell,
	// appropriate for anagram-style "pool of letters" games that have
	// no physical board layout.
	Full Adjacency = "Full"
	// Straight connects only up/down/left/right neighbors.
	Straight Adjacency = "Straight"
	// Diagonal connects up/down/left/right and the four diagonals.
	Diagonal Adjacency = "Diagonal"
)

// Grid records which of the MaxGridWidth x MaxGridWidth positions are
// part of a valid board, along with the adjacency rule used to connect
// them.
type Grid struct {
	tiles     [MaxGridWidth][MaxGridWidth]bool
	adjacency Adjacency
	tilesSet  int
}

// NewGrid returns an empty grid using the given adjacency rule.
func NewGrid(adjacency Adjacency) *Grid {
	return &Grid{adjacency: adjacency}
}

// SetTile enables position (x, y) for use on the grid. Out-of-range
// coordinates are ignored, and re-enabling an already-set tile is a
// no-op, matching GameGrid::setTile.
func (g *Grid) SetTile(x, y int) {
	if x < 0 || x >= MaxGridWidth || y < 0 || y >= MaxGridWidth {
		return
	}
	if g.tiles[x][y] {
		return
	}
	g.tiles[x][y] = true
	g.tilesSet++
}

// IsTileSet reports whether (x, y) is part of the grid.
func (g *Grid) IsTileSet(x, y int) bool {
	if x < 0 || x >= MaxGridWidth || y < 0 || y >= MaxGridWidth {
		return false
	}
	return g.tiles[x][y]
}

// TilesSet returns the number of live positions in the grid.
func (g *Grid) TilesSet() int {
	return g.tilesSet
}

// AdjacencyMode returns the grid's configured adjacency rule.
func (g *Grid) AdjacencyMode() Adjacency {
	return g.adjacency
}

// Board is a parsed, scored board: a sequence of tiles (each possibly
// holding more than one letter, for games like Boggle where a die face
// can read "QU"), their letter/word multipliers, and an adjacency
// matrix derived from a Grid.
type Board struct {
	letters    string
	tiles      []string
	letterMult []int
	wordMult   []int
	adjMatrix  []bool // nil means fully connected
	size       int
}

// ParseBoard tokenizes letters into a Board. The tokenization rules,
// ported from Board::parse_board, are:
//
//   - ':' increments the pending letter multiplier for the next tile.
//   - ';' increments the pending word multiplier for the next tile.
//   - an uppercase letter or '?' starts a new tile, consuming the
//     pending multipliers.
//   - a lowercase letter is appended to the previous tile (so "Qu"
//     parses as the single two-letter tile "Qu" on one board position).
//   - '.' starts a new, empty tile (a blocked/blank position that still
//     consumes a position and multipliers but carries no letters).
//   - any other byte is ignored.
//
// grid may be nil, in which case the board is treated as fully
// connected (every tile adjacent to every other tile).
func ParseBoard(letters string, grid *Grid) *Board {
	size := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		if isUpper(c) || c == '?' || c == '.' {
			size++
		}
	}

	b := &Board{
		letters:    letters,
		tiles:      make([]string, size),
		letterMult: make([]int, size),
		wordMult:   make([]int, size),
		size:       size,
	}

	if size == 0 {
		b.buildAdjacencyMatrix(grid)
		return b
	}

	letterMultiplier := 1
	wordMultiplier := 1
	pos := 0

	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == ':':
			letterMultiplier++
		case c == ';':
			wordMultiplier++
		case isAlpha(c) || c == '?' || c == '.':
			switch {
			case isLower(c) && pos > 0:
				b.tiles[pos-1] += string(c)
			case isUpper(c) || c == '?':
				b.letterMult[pos] = letterMultiplier
				b.wordMult[pos] = wordMultiplier
				letterMultiplier, wordMultiplier = 1, 1
				b.tiles[pos] = string(c)
				pos++
			case c == '.':
				b.letterMult[pos] = letterMultiplier
				b.wordMult[pos] = wordMultiplier
				letterMultiplier, wordMultiplier = 1, 1
				b.tiles[pos] = ""
				pos++
			}
		}
	}

	if pos != size {
		log.Warn().Int("expected", size).Int("parsed", pos).Str("letters", letters).
			Msg("board tile count mismatch after parse")
	}

	b.buildAdjacencyMatrix(grid)
	return b
}

func (b *Board) buildAdjacencyMatrix(g *Grid) {
	if g == nil || g.adjacency == Full {
		return
	}

	posMatrix := [MaxGridWidth][MaxGridWidth]int{}
	for r := 0; r < MaxGridWidth; r++ {
		for c := 0; c < MaxGridWidth; c++ {
			posMatrix[r][c] = -1
		}
	}

	pos := 0
	for row := 0; row < MaxGridWidth; row++ {
		for col := 0; col < MaxGridWidth; col++ {
			if g.IsTileSet(row, col) && pos < b.size {
				posMatrix[row][col] = pos
				pos++
			}
		}
	}

	adj := make([]bool, b.size*b.size)

	link := func(p1, p2 int) {
		adj[p1*b.size+p2] = true
	}

	for row := 0; row < MaxGridWidth; row++ {
		for col := 0; col < MaxGridWidth; col++ {
			p := posMatrix[row][col]
			if p == -1 {
				continue
			}

			if g.adjacency == Diagonal {
				if row > 0 && col > 0 && posMatrix[row-1][col-1] != -1 {
					link(p, posMatrix[row-1][col-1])
				}
				if row > 0 && col < MaxGridWidth-1 && posMatrix[row-1][col+1] != -1 {
					link(p, posMatrix[row-1][col+1])
				}
				if row < MaxGridWidth-1 && col > 0 && posMatrix[row+1][col-1] != -1 {
					link(p, posMatrix[row+1][col-1])
				}
				if row < MaxGridWidth-1 && col < MaxGridWidth-1 && posMatrix[row+1][col+1] != -1 {
					link(p, posMatrix[row+1][col+1])
				}
			}

			if g.adjacency == Diagonal || g.adjacency == Straight {
				if row > 0 && posMatrix[row-1][col] != -1 {
					link(p, posMatrix[row-1][col])
				}
				if row < MaxGridWidth-1 && posMatrix[row+1][col] != -1 {
					link(p, posMatrix[row+1][col])
				}
				if col > 0 && posMatrix[row][col-1] != -1 {
					link(p, posMatrix[row][col-1])
				}
				if col < MaxGridWidth-1 && posMatrix[row][col+1] != -1 {
					link(p, posMatrix[row][col+1])
				}
			}
		}
	}

	b.adjMatrix = adj
}

// Tile returns the letters (possibly empty, possibly multi-letter) at
// board position i.
func (b *Board) Tile(i int) string {
	return b.tiles[i]
}

// LetterMult returns the letter-score multiplier at position i.
func (b *Board) LetterMult(i int) int {
	return b.letterMult[i]
}

// WordMult returns the word-score multiplier at position i.
func (b *Board) WordMult(i int) int {
	return b.wordMult[i]
}

// Size returns the number of tiles on the board.
func (b *Board) Size() int {
	return b.size
}

// IsAdjacent reports whether positions i and j are connected. A board
// built against a nil or Full grid is fully connected.
func (b *Board) IsAdjacent(i, j int) bool {
	if b.adjMatrix == nil {
		return true
	}
	return b.adjMatrix[i*b.size+j]
}

// Letters returns the original, unparsed board description.
func (b *Board) Letters() string {
	return b.letters
}

// String renders the board's tiles space-joined, mostly useful for
// debugging/logging.
func (b *Board) String() string {
	return strings.Join(b.tiles, " ")
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isAlpha(c byte) bool { return isUpper(c) || isLower(c) }
