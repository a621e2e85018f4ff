package solver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/scoring"
)

func rulesWithLetterValues() *scoring.Rules {
	r := scoring.NewRules()
	for c := byte('A'); c <= 'Z'; c++ {
		r.SetLetterValue(c, 1)
	}
	return r
}

func wordsOf(sols []Solution) []string {
	words := make([]string, len(sols))
	for i, s := range sols {
		words[i] = s.Word
	}
	sort.Strings(words)
	return words
}

func TestSolveFindsStraightLineWords(t *testing.T) {
	grid := board.NewGrid(board.Straight)
	grid.SetTile(0, 0)
	grid.SetTile(0, 1)
	grid.SetTile(0, 2)
	b := board.ParseBoard("CAT", grid)

	s := New()
	s.AddWord("CAT")
	s.AddWord("CA")
	s.AddWord("AT")
	s.AddWord("DOG")

	r := rulesWithLetterValues()
	s.Solve(b, r)

	got := wordsOf(s.Solutions())
	assert.Equal(t, []string{"AT", "CA", "CAT"}, got)
}

func TestSolveRespectsAdjacency(t *testing.T) {
	// "CAT" laid out on a single 1x3 row under Straight rules: C and T
	// sit at the two ends with A between them, so the solver cannot
	// reach T from C directly without A.
	grid := board.NewGrid(board.Straight)
	grid.SetTile(0, 0)
	grid.SetTile(0, 1)
	grid.SetTile(0, 2)
	b := board.ParseBoard("CAT", grid)

	s := New()
	s.AddWord("CT") // not spellable, C and T are not adjacent
	r := rulesWithLetterValues()
	s.Solve(b, r)
	assert.Empty(t, s.Solutions())
}

func TestSolveMinWordLength(t *testing.T) {
	grid := board.NewGrid(board.Full)
	b := board.ParseBoard("CAT", grid)

	s := New()
	s.AddWord("CA")
	s.AddWord("CAT")
	r := rulesWithLetterValues()
	r.MinWordLength = 3
	s.Solve(b, r)

	got := wordsOf(s.Solutions())
	assert.Equal(t, []string{"CAT"}, got)
}

func TestSolveWildcardExpansion(t *testing.T) {
	b := board.ParseBoard("C?T", board.NewGrid(board.Full))
	s := New()
	s.AddWord("CAT")
	r := rulesWithLetterValues()
	s.Solve(b, r)

	require.Len(t, s.Solutions(), 1)
	assert.Equal(t, "CAT", s.Solutions()[0].Word)
}

func TestSolveQIsQuExpansion(t *testing.T) {
	b := board.ParseBoard("QT", board.NewGrid(board.Full))
	s := New()
	s.AddWord("QUT")
	r := rulesWithLetterValues()
	s.Solve(b, r)

	require.Len(t, s.Solutions(), 1)
	assert.Equal(t, "QUT", s.Solutions()[0].Word)
}

func TestScoreSolutionWordMultiplier(t *testing.T) {
	b := board.ParseBoard(";CAT", board.NewGrid(board.Full))
	s := New()
	s.AddWord("CAT")
	r := rulesWithLetterValues()
	s.Solve(b, r)

	require.Len(t, s.Solutions(), 1)
	sol := s.Solutions()[0]
	assert.Equal(t, 3, sol.LetterPoints)
	assert.Equal(t, 2, sol.WordMultiplier)
	assert.Equal(t, 6, sol.Score)
}

func TestShortWordScoring(t *testing.T) {
	b := board.ParseBoard("AT", board.NewGrid(board.Full))
	s := New()
	s.AddWord("AT")
	r := rulesWithLetterValues()
	r.ShortWordLength = 2
	r.ShortWordPoints = 5
	s.Solve(b, r)

	require.Len(t, s.Solutions(), 1)
	assert.Equal(t, 5, s.Solutions()[0].Score)
}
