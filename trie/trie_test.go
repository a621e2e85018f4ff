package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWordAndLookup(t *testing.T) {
	n := New()
	n.AddWord("cat")
	n.AddWord("car")
	n.AddWord("cats")

	assert.True(t, n.HasWord("cat"))
	assert.True(t, n.HasWord("car"))
	assert.True(t, n.HasWord("cats"))
	assert.False(t, n.HasWord("ca"))
	assert.False(t, n.HasWord("dog"))
}

func TestAddWordLowercased(t *testing.T) {
	n := New()
	n.AddWord("dog")
	assert.True(t, n.HasWord("DOG"))
	assert.True(t, n.HasWord("dog"))
}

func TestChildTraversalSingleThenDense(t *testing.T) {
	n := New()
	n.AddWord("at")

	child := n.Child('A')
	require.NotNil(t, child)
	assert.Nil(t, n.Child('B'))

	// Adding a second distinct first letter forces the dense conversion.
	n.AddWord("by")
	assert.NotNil(t, n.Child('A'))
	assert.NotNil(t, n.Child('B'))
	assert.Nil(t, n.Child('C'))
}

func TestAddWordStopsOnNonLetter(t *testing.T) {
	n := New()
	n.AddWord("a1b")
	assert.False(t, n.HasWord("a1b"))
	// "a" itself was never marked terminal either, since add_word
	// returns on the non-letter byte without flagging the node it
	// stopped at.
	assert.False(t, n.HasWord("a"))
}

func TestIsTerminal(t *testing.T) {
	n := New()
	n.AddWord("it")
	assert.True(t, n.Child('I').Child('T').IsTerminal())
	assert.False(t, n.Child('I').IsTerminal())
}
