package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/distribution"
	"github.com/domino14/wgs/scoring"
)

func diceDist(diceLetters string) *distribution.Distribution {
	d := distribution.New()
	d.GenerationMethod = distribution.Dice
	d.SetDiceLetters(diceLetters)
	return d
}

func propDist(letters string, withoutReplace bool) *distribution.Distribution {
	d := distribution.New()
	d.GenerationMethod = distribution.Propensity
	d.SampleWithoutReplacement = withoutReplace
	d.SetPropensityLetters(letters)
	return d
}

func TestValidateDiceWordSimpleMatch(t *testing.T) {
	v := New()
	dist := diceDist("ABC,DEF,GHI")
	rules := scoring.NewRules()
	// One letter per die: A from die 1, D from die 2, G from die 3.
	ok := v.Validate(dist, rules, nil, "adg", true)
	assert.True(t, ok)
}

func TestValidateDiceWordImpossible(t *testing.T) {
	v := New()
	dist := diceDist("ABC,DEF,GHI")
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "zzz", true)
	assert.False(t, ok)
}

func TestValidateDiceWordTooLong(t *testing.T) {
	v := New()
	dist := diceDist("AB,CD")
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "abcde", true)
	assert.False(t, ok)
	assert.Equal(t, 1, v.Stats().LongWords)
}

func TestValidateDiceWordMultiLetterFaceFallsBackToDLX(t *testing.T) {
	v := New()
	// die 1 has a "QU" face, die 2 has "A", die 3 has "T"
	dist := diceDist("QuX,AY,TZ")
	rules := scoring.NewRules()
	// QIsQu defaults to true and would rewrite the "QU" face to "QUU".
	rules.QIsQu = false
	ok := v.Validate(dist, rules, nil, "quat", true)
	assert.True(t, ok)
	assert.Equal(t, 1, v.Stats().DLXUsed)
	assert.Equal(t, 1, v.Stats().DLXFound)
}

func TestValidateDiceWordQIsQuExpandsBoardQ(t *testing.T) {
	v := New()
	dist := diceDist("QX,AY,TZ")
	rules := scoring.NewRules()
	rules.QIsQu = true
	ok := v.Validate(dist, rules, nil, "quat", true)
	assert.True(t, ok)
}

func TestValidateDiceBoardLiteralMatch(t *testing.T) {
	v := New()
	dist := diceDist("ABC,DEF")
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "AD", false)
	assert.True(t, ok)
}

func TestValidateDiceBoardUnmatchedTile(t *testing.T) {
	v := New()
	dist := diceDist("ABC,DEF")
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "AZ", false)
	assert.False(t, ok)
}

func TestValidatePropensityWordSingleLetters(t *testing.T) {
	v := New()
	dist := propDist("CCAATTSS", true)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "cats", true)
	assert.True(t, ok)
}

func TestValidatePropensityWordExhaustsPoolWithoutReplacement(t *testing.T) {
	v := New()
	dist := propDist("CAT", true)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "catcat", true)
	assert.False(t, ok)
}

func TestValidatePropensityWordWithReplacementReusesLetters(t *testing.T) {
	v := New()
	dist := propDist("CAT", false)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "tact", true)
	assert.True(t, ok)
}

func TestValidatePropensityWordWildcard(t *testing.T) {
	v := New()
	dist := propDist("CA?", true)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "cat", true)
	assert.True(t, ok)
}

func TestValidatePropensityBoardConsumesPool(t *testing.T) {
	v := New()
	dist := propDist("AABB", true)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "AB", false)
	assert.True(t, ok)
}

func TestValidatePropensityBoardMissingTile(t *testing.T) {
	v := New()
	dist := propDist("AABB", true)
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "ABC", false)
	assert.False(t, ok)
}

func TestValidateUnsupportedMethod(t *testing.T) {
	v := New()
	dist := distribution.New()
	dist.GenerationMethod = distribution.WordListDist
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, nil, "cat", true)
	assert.False(t, ok)
}

func TestGridIsRespectedForBoardTokenization(t *testing.T) {
	grid := board.NewGrid(board.Full)
	v := New()
	dist := diceDist("ABC,DEF")
	rules := scoring.NewRules()
	ok := v.Validate(dist, rules, grid, "AD", false)
	require.True(t, ok)
}
