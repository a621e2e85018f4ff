package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wgs/randsrc"
)

func testDice() [][]string {
	return [][]string{
		{"A", "B", "C"},
		{"D", "E", "F"},
		{"G", "H", "I"},
	}
}

func TestNewRollsAllPositions(t *testing.T) {
	d := New(testDice(), randsrc.Seeded([]byte("dice-test-seed-0123456789012345")))
	letters := d.GetLetters()
	require.Len(t, letters, 3)
	for _, l := range letters {
		assert.NotEmpty(t, l)
	}
}

func TestSwapDiceExchangesPositionsAndFaces(t *testing.T) {
	d := New(testDice(), randsrc.Seeded([]byte("dice-test-seed-0123456789012345")))
	before := append([]string{}, d.GetLetters()...)
	d.SwapDice(0, 1)
	after := d.GetLetters()

	assert.Equal(t, before[0], after[1])
	assert.Equal(t, before[1], after[0])
}

func TestRollOneOnlyChangesOnePosition(t *testing.T) {
	d := New(testDice(), randsrc.Seeded([]byte("dice-test-seed-0123456789012345")))
	before := append([]string{}, d.GetLetters()...)
	d.RollOne(0)
	after := d.GetLetters()

	// Position 0's face is still one of the faces of the die at
	// position 0 (positions unchanged by RollOne).
	assert.Contains(t, testDice()[d.positions[0]], after[0])
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[2], after[2])
}

func TestRollIsDeterministicWithSameSeed(t *testing.T) {
	seed := []byte("dice-test-seed-0123456789012345")
	d1 := New(testDice(), randsrc.Seeded(seed))
	d2 := New(testDice(), randsrc.Seeded(seed))

	assert.Equal(t, d1.GetLetters(), d2.GetLetters())
}
