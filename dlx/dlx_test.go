package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveExactCoverSimple(t *testing.T) {
	// Two exact covers exist (rows 0 and 1 together, or row 2 alone);
	// with allSolutions false the search stops after the first.
	d := New()
	for i := 0; i < 4; i++ {
		d.AddColumn()
	}
	d.AddRow([]int{0, 1})
	d.AddRow([]int{2, 3})
	d.AddRow([]int{0, 1, 2, 3})

	assert.Equal(t, 1, d.Solve(false))
}

func TestSolveNoExactCover(t *testing.T) {
	d := New()
	for i := 0; i < 3; i++ {
		d.AddColumn()
	}
	d.AddRow([]int{0, 1})
	d.AddRow([]int{1, 2})

	assert.Equal(t, 0, d.Solve(false))
}

func TestSolveMultipleSolutionsCountedWhenRequested(t *testing.T) {
	d := New()
	for i := 0; i < 2; i++ {
		d.AddColumn()
	}
	d.AddRow([]int{0})
	d.AddRow([]int{1})
	d.AddRow([]int{0, 1})

	assert.Equal(t, 2, d.Solve(true))
}

func TestSolveEmptyMatrixIsTriviallyCovered(t *testing.T) {
	d := New()
	assert.Equal(t, 1, d.Solve(false))
}

func TestSolveDiceLetterAssignment(t *testing.T) {
	// 3 letter-slots (columns 0-2), one row per die placement; die A
	// can fill slot 0 or 1, die B only slot 1, die C only slot 2. There
	// are no die columns, so nothing stops die A from filling both
	// slot 0 and slot 1: slot 1 can come from either of its two rows,
	// giving two exact covers.
	d := New()
	for i := 0; i < 3; i++ {
		d.AddColumn()
	}
	d.AddRow([]int{0}) // die A -> slot 0
	d.AddRow([]int{1}) // die A -> slot 1 (alternate use, different row)
	d.AddRow([]int{1}) // die B -> slot 1
	d.AddRow([]int{2}) // die C -> slot 2

	assert.Equal(t, 2, d.Solve(true))
}
