package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/wgs/analyzer"
	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/solver"
)

func TestSolutionFormat(t *testing.T) {
	sol := solver.Solution{
		Word: "CAT", Score: 6, LetterPoints: 3, WordMultiplier: 2,
		LengthBonus: 0, Path: []int{0, 1, 2},
	}
	got := Solution("%w:%s (%p,)", sol, true)
	assert.Equal(t, "CAT:6 (1,2,3)", got)
}

func TestSolutionFormatSeparatorSkippedOnLast(t *testing.T) {
	sol := solver.Solution{Word: "CAT", Score: 6}
	notLast := Solution("%w%( | )", sol, false)
	isLast := Solution("%w%( | )", sol, true)
	assert.Equal(t, "CAT | ", notLast)
	assert.Equal(t, "CAT", isLast)
}

func TestSolutionFormatEscapes(t *testing.T) {
	sol := solver.Solution{Word: "CAT"}
	got := Solution("%w\\t\\n", sol, true)
	assert.Equal(t, "CAT\t\n", got)
}

func TestAnalysisFormat(t *testing.T) {
	b := board.ParseBoard("CAT", board.NewGrid(board.Full))
	solutions := []solver.Solution{
		{Word: "AT", Score: 2, WordLength: 2, Path: []int{1, 2}},
		{Word: "CAT", Score: 6, WordLength: 3, Path: []int{0, 1, 2}},
	}
	a := analyzer.Analyze(b, solutions)

	got := Analysis("%B %0W %0S %3C %2+C", a, 0)
	assert.Equal(t, "CAT 2 8 1 2", got)
}
