// Package distribution parses and holds the letter-generation rules
// used to build random boards and to validate hand-entered ones: a
// die-face list for physical-dice-style generation, or a weighted
// letter-propensity list to sample tiles from.
package distribution

import "unicode"

// Method selects how a board's letters are produced.
type Method string

const (
	Dice         Method = "dice"
	Propensity   Method = "propensity"
	WordListDist Method = "wordlist"
)

// Distribution holds one named letter-generation configuration.
type Distribution struct {
	ShuffleLetters            bool
	SampleWithoutReplacement  bool
	ShuffleDice               bool
	GenerationMethod          Method
	WordListFile              string

	propensityLetters string
	propensityList    []string

	diceLetters string
	dice        [][]string
}

// New returns a Distribution with the original tool's defaults.
func New() *Distribution {
	return &Distribution{
		ShuffleLetters:           true,
		SampleWithoutReplacement: true,
		ShuffleDice:              true,
	}
}

// PropensityLetters returns the raw propensity-list source string.
func (d *Distribution) PropensityLetters() string { return d.propensityLetters }

// PropensityList returns the parsed letter faces, each possibly
// carrying a run of leading ':' (letter-value bumps) and ';'
// (word-multiplier bumps), e.g. "::A" or "Qu".
func (d *Distribution) PropensityList() []string { return d.propensityList }

// DiceLetters returns the raw dice-list source string.
func (d *Distribution) DiceLetters() string { return d.diceLetters }

// Dice returns the parsed dice, each a list of face strings.
func (d *Distribution) Dice() [][]string { return d.dice }

// SetPropensityLetters parses a propensity-list letter string into
// individual weighted faces. A face is built up starting new on each
// uppercase letter, '?', or '.', with ':' and ';' accumulating onto
// the face under construction and lowercase letters appending to the
// most recently completed face (multi-letter tiles, e.g. "Qu").
func (d *Distribution) SetPropensityLetters(letters string) {
	d.propensityLetters = letters
	d.propensityList = nil

	var cur []byte
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == ':' || c == ';':
			cur = append(cur, c)
		case unicode.IsUpper(rune(c)) || c == '?' || c == '.':
			cur = append(cur, c)
			d.propensityList = append(d.propensityList, string(cur))
			cur = nil
		case unicode.IsLower(rune(c)) && len(d.propensityList) > 0:
			last := len(d.propensityList) - 1
			d.propensityList[last] += string(c)
		}
	}
}

// SetDiceLetters parses a dice-list letter string. Faces follow the
// same grammar as SetPropensityLetters; ',' ends the current die and
// starts a new one once at least one face has been accumulated.
func (d *Distribution) SetDiceLetters(letters string) {
	d.diceLetters = letters
	d.dice = nil

	var cur []byte
	var sides []string
	for i := 0; i < len(letters); i++ {
		c := letters[i]
		switch {
		case c == ':' || c == ';':
			cur = append(cur, c)
		case unicode.IsUpper(rune(c)) || c == '?' || c == '.':
			cur = append(cur, c)
			sides = append(sides, string(cur))
			cur = nil
		case unicode.IsLower(rune(c)) && len(sides) > 0:
			last := len(sides) - 1
			sides[last] += string(c)
		case c == ',' && len(sides) > 0:
			d.dice = append(d.dice, sides)
			sides = nil
			cur = nil
		}
	}
	if len(sides) > 0 {
		d.dice = append(d.dice, sides)
	}
}
