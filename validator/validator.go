// Package validator checks whether a hand-entered word or board is
// actually spellable from a game's configured letter distribution: a
// set of dice (each with one or more faces) or a weighted letter
// pool. It tries fast bipartite matching first and only falls back to
// exact-cover search when multi-letter tiles make that necessary.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/distribution"
	"github.com/domino14/wgs/dlx"
	"github.com/domino14/wgs/maxflow"
	"github.com/domino14/wgs/scoring"
)

// Validator holds debug verbosity and running statistics across
// repeated validation calls.
type Validator struct {
	Debug int

	ffUsed    int
	ffFound   int
	dlxUsed   int
	dlxFound  int
	longWords int
}

// New returns a Validator with debugging disabled and zeroed stats.
func New() *Validator {
	return &Validator{}
}

// Stats is a snapshot of a Validator's running counters.
type Stats struct {
	FFUsed    int
	FFFound   int
	DLXUsed   int
	DLXFound  int
	LongWords int
}

// Stats returns the current counters: how many times Ford-Fulkerson
// and DLX were invoked and found a match, and how many times the
// long-word capacity check short-circuited the search.
func (v *Validator) Stats() Stats {
	return Stats{
		FFUsed:    v.ffUsed,
		FFFound:   v.ffFound,
		DLXUsed:   v.dlxUsed,
		DLXFound:  v.dlxFound,
		LongWords: v.longWords,
	}
}

// PrintStats logs the current counters at info level.
func (v *Validator) PrintStats() {
	s := v.Stats()
	log.Info().
		Int("ff_used", s.FFUsed).
		Int("ff_found", s.FFFound).
		Int("dlx_used", s.DLXUsed).
		Int("dlx_found", s.DLXFound).
		Int("long_words", s.LongWords).
		Msg("validator stats")
}

func (v *Validator) debugLog(msg string) {
	if v.Debug > 0 {
		log.Debug().Msg(msg)
	}
}

// Validate checks to_check against the given distribution, grid, and
// scoring rules. When interpret is true, to_check is treated as a
// word to spell (wildcards expand, Q becomes QU when the rules call
// for it); when false, to_check is treated as a literal board string
// to validate tile-for-tile against the distribution's source pool.
func (v *Validator) Validate(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, toCheck string, interpret bool) bool {
	switch dist.GenerationMethod {
	case distribution.Dice:
		return v.validateDiceMethod(dist, rules, grid, toCheck, interpret)
	case distribution.Propensity:
		return v.validatePropensityMethod(dist, rules, grid, toCheck, interpret)
	default:
		v.debugLog("Unsupported game type")
		return false
	}
}

func (v *Validator) validateDiceMethod(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, toCheck string, interpret bool) bool {
	dice := cloneDice(dist.Dice())
	for i, die := range dice {
		for j, face := range die {
			dice[i][j] = upperAlphaQ(face)
		}
	}
	for i := range dice {
		dice[i] = dedupStrings(dice[i])
	}

	filtered := filterToCheck(toCheck, interpret)
	b := board.ParseBoard(filtered, grid)
	boardTiles := upperTiles(b)
	word := strings.ToUpper(filtered)

	if interpret {
		if rules.QIsQu {
			for i, die := range dice {
				for j, face := range die {
					dice[i][j] = strings.ReplaceAll(face, "Q", "QU")
				}
			}
		}
		return v.validateDiceWord(dice, word)
	}
	return v.validateDiceBoard(dice, boardTiles)
}

func (v *Validator) validatePropensityMethod(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, toCheck string, interpret bool) bool {
	letters := make([]string, len(dist.PropensityList()))
	for i, l := range dist.PropensityList() {
		letters[i] = upperAlphaQ(l)
	}

	filtered := filterToCheck(toCheck, interpret)
	b := board.ParseBoard(filtered, grid)
	boardTiles := upperTiles(b)
	word := strings.ToUpper(filtered)

	sampleWithoutReplace := dist.SampleWithoutReplacement
	if !sampleWithoutReplace {
		letters = dedupStrings(letters)
	}

	if interpret {
		if rules.QIsQu {
			for i, l := range letters {
				letters[i] = strings.ReplaceAll(l, "Q", "QU")
			}
		}
		return v.validatePropensityWord(letters, word, sampleWithoutReplace)
	}
	return v.validatePropensityBoard(letters, boardTiles, sampleWithoutReplace)
}

// validateDiceWord determines whether word can be spelled using some
// arrangement of dice: bipartite match first, falling back to exact
// cover only when FF fails and a multi-letter face could plausibly
// match the word.
func (v *Validator) validateDiceWord(dice [][]string, word string) bool {
	multiletterFaces := multiLetterDice(dice)

	v.debugLog("Checking with FF")
	v.ffUsed++

	n, m := len(dice), len(word)
	ff := maxflow.New(n + m + 2)
	source := 0
	sink := n + m + 1

	for i := 1; i <= n; i++ {
		ff.AddEdge(source, i)
	}
	for i := 1; i <= m; i++ {
		ff.AddEdge(i+n, sink)
	}
	for i := 1; i <= n; i++ {
		for _, face := range dice[i-1] {
			if len(face) > 1 {
				continue
			}
			for k := 1; k <= m; k++ {
				if face[0] == word[k-1] || face[0] == '?' {
					ff.AddEdge(i, k+n)
				}
			}
		}
	}

	if ff.MaxFlow(source, sink) == m {
		v.debugLog("FF found a solution, done")
		v.ffFound++
		return true
	}

	capacity := 0
	for i := 1; i <= n; i++ {
		maxFaceLen := 0
		for _, face := range dice[i-1] {
			if len(face) > maxFaceLen {
				maxFaceLen = len(face)
			}
		}
		capacity += maxFaceLen
	}
	if m > capacity {
		v.debugLog("Word is too long to be spelled with candidate dice, done")
		v.longWords++
		return false
	}

	if multiletterFaces {
		fallback := false
		for i := 1; i <= n && !fallback; i++ {
			for _, face := range dice[i-1] {
				if len(face) <= 1 {
					continue
				}
				if multiLetterMatchesWord(face, word) {
					fallback = true
					break
				}
			}
		}
		if fallback {
			return v.diceWordDLX(dice, word)
		}
	}

	v.debugLog("FF returned false and there are no matching multi-letter tiles, done")
	return false
}

func (v *Validator) diceWordDLX(dice [][]string, word string) bool {
	v.debugLog("Using DLX")
	v.dlxUsed++

	cols := len(word) + len(dice)
	d := dlx.New()
	for i := 0; i < cols; i++ {
		d.AddColumn()
	}

	dieOffset := len(word)
	for _, die := range dice {
		for _, face := range die {
			if face == "?" {
				for i := 0; i < len(word); i++ {
					d.AddRow([]int{i, dieOffset})
				}
				continue
			}

			pos := 0
			faceText := face
			usingWildcard := false
			if face[0] == '?' {
				pos = 1
				faceText = face[1:]
				usingWildcard = true
			}

			for {
				idx := findFrom(word, faceText, pos)
				if idx == -1 {
					break
				}
				positions := make([]int, 0, len(faceText)+2)
				for i := 0; i < len(faceText); i++ {
					positions = append(positions, idx+i)
				}
				if usingWildcard {
					positions = append(positions, idx-1)
				}
				positions = append(positions, dieOffset)
				d.AddRow(positions)
				pos = idx + 1
			}
		}
		d.AddRow([]int{dieOffset})
		dieOffset++
	}

	if d.Solve(false) > 0 {
		v.debugLog("DLX found a solution, done")
		v.dlxFound++
		return true
	}
	v.debugLog("DLX did not find a solution, done")
	return false
}

// validateDiceBoard checks that a literal set of board tiles can be
// matched one-for-one against the provided dice (not all dice need be
// used).
func (v *Validator) validateDiceBoard(dice [][]string, boardTiles []string) bool {
	v.ffUsed++

	n, m := len(dice), len(boardTiles)
	ff := maxflow.New(n + m + 2)
	source := 0
	sink := n + m + 1

	for i := 1; i <= n; i++ {
		ff.AddEdge(source, i)
	}
	for i := 1; i <= m; i++ {
		ff.AddEdge(i+n, sink)
	}
	for i := 1; i <= n; i++ {
		for _, face := range dice[i-1] {
			for k := 1; k <= m; k++ {
				if face == boardTiles[k-1] {
					ff.AddEdge(i, k+n)
				}
			}
		}
	}

	result := ff.MaxFlow(source, sink) == m
	if result {
		v.ffFound++
	}
	return result
}

// validatePropensityBoard verifies each board tile exists in the
// letter pool, consuming it from the pool when sampling without
// replacement.
func (v *Validator) validatePropensityBoard(propLetters, boardTiles []string, sampleWithoutReplace bool) bool {
	v.debugLog("In validatePropensityBoard()")
	letters := append([]string{}, propLetters...)

	for _, tile := range boardTiles {
		idx := indexOf(letters, tile)
		if idx == -1 {
			v.debugLog(fmt.Sprintf("Tile '%s' does not exist in pool, done", tile))
			return false
		}
		if sampleWithoutReplace {
			letters = append(letters[:idx], letters[idx+1:]...)
		}
	}
	return true
}

// validatePropensityWord checks word against the letter pool greedily
// one letter at a time, falling back to DLX when single-letter/
// wildcard matching fails but a multi-letter tile might still cover
// the word.
func (v *Validator) validatePropensityWord(propLetters []string, word string, sampleWithoutReplace bool) bool {
	multiletterTiles := multiLetterTiles(propLetters)

	v.debugLog("In validatePropensityWord()")
	letters := append([]string{}, propLetters...)

	for i := 0; i < len(word); i++ {
		letter := string(word[i])
		idx := indexOf(letters, letter)
		if idx == -1 {
			idx = indexOf(letters, "?")
			if idx == -1 {
				if multiletterTiles {
					fallback := false
					for _, l := range letters {
						if len(l) <= 1 {
							continue
						}
						if multiLetterMatchesWord(l, word) {
							fallback = true
							break
						}
					}
					if fallback {
						return v.propensityWordDLX(propLetters, word, sampleWithoutReplace)
					}
					v.debugLog("no solution found using single-letter tiles and no multi-letter tiles match word, done")
					return false
				}
				v.debugLog(fmt.Sprintf("Tile '%s' does not exist in pool and no multi-letter tiles exist, done", letter))
				return false
			}
		}
		if sampleWithoutReplace {
			letters = append(letters[:idx], letters[idx+1:]...)
		}
	}
	return true
}

func (v *Validator) propensityWordDLX(propLetters []string, word string, sampleWithoutReplace bool) bool {
	v.debugLog("Using DLX")
	v.dlxUsed++

	propCounts := map[string]int{}
	for _, l := range propLetters {
		propCounts[l]++
	}

	lettersMap := map[string]int{}
	for letter, count := range propCounts {
		if letter == "?" {
			if sampleWithoutReplace {
				lettersMap[letter] = minInt(len(word), count)
			}
			continue
		}

		faceText := letter
		pos := 0
		if letter[0] == '?' {
			faceText = letter[1:]
			pos = 1
		}

		matchCount := 0
		for p := pos; ; {
			idx := findFrom(word, faceText, p)
			if idx == -1 {
				break
			}
			matchCount++
			p = idx + 1
		}

		if sampleWithoutReplace {
			lettersMap[letter] = minInt(matchCount, count)
		} else {
			lettersMap[letter] = matchCount
		}
	}

	keys := make([]string, 0, len(lettersMap))
	for k := range lettersMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var letters []string
	for _, k := range keys {
		for i := 0; i < lettersMap[k]; i++ {
			letters = append(letters, k)
		}
	}

	cols := len(word) + len(letters)
	d := dlx.New()
	for i := 0; i < cols; i++ {
		d.AddColumn()
	}

	tileOffset := len(word)
	for _, letter := range letters {
		if letter == "?" {
			for i := 0; i < len(word); i++ {
				d.AddRow([]int{i, tileOffset})
			}
			d.AddRow([]int{tileOffset})
			tileOffset++
			continue
		}

		pos := 0
		faceText := letter
		usingWildcard := false
		if letter[0] == '?' {
			pos = 1
			faceText = letter[1:]
			usingWildcard = true
		}

		for {
			idx := findFrom(word, faceText, pos)
			if idx == -1 {
				break
			}
			positions := make([]int, 0, len(faceText)+2)
			for i := 0; i < len(faceText); i++ {
				positions = append(positions, idx+i)
			}
			if usingWildcard {
				positions = append(positions, idx-1)
			}
			positions = append(positions, tileOffset)
			d.AddRow(positions)
			pos = idx + 1
		}

		d.AddRow([]int{tileOffset})
		tileOffset++
	}

	result := d.Solve(false) > 0
	if result {
		v.dlxFound++
	}
	return result
}

func multiLetterDice(dice [][]string) bool {
	for _, die := range dice {
		for _, face := range die {
			if len(face) > 1 {
				return true
			}
		}
	}
	return false
}

func multiLetterTiles(tiles []string) bool {
	for _, t := range tiles {
		if len(t) > 1 {
			return true
		}
	}
	return false
}

// multiLetterMatchesWord reports whether a multi-letter face could
// plausibly be placed somewhere in word: a non-wildcard face must
// appear verbatim; a wildcard-prefixed face's letter portion must
// appear at an index greater than zero (there must be room for the
// wildcard tile ahead of it).
func multiLetterMatchesWord(face, word string) bool {
	if face == "" {
		return false
	}
	if face[0] == '?' {
		idx := strings.Index(word, face[1:])
		return idx > 0
	}
	return strings.Contains(word, face)
}

func filterToCheck(s string, interpret bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlpha(c) || (!interpret && c == '?') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func upperAlphaQ(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAlpha(c) || c == '?' {
			b.WriteByte(upper(c))
		}
	}
	return b.String()
}

func upperTiles(b *board.Board) []string {
	tiles := make([]string, b.Size())
	for i := 0; i < b.Size(); i++ {
		tiles[i] = strings.ToUpper(b.Tile(i))
	}
	return tiles
}

func cloneDice(dice [][]string) [][]string {
	out := make([][]string, len(dice))
	for i, die := range dice {
		out[i] = append([]string{}, die...)
	}
	return out
}

func dedupStrings(in []string) []string {
	sorted := append([]string{}, in...)
	sort.Strings(sorted)
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func findFrom(s, sub string, start int) int {
	if start > len(s) {
		return -1
	}
	idx := strings.Index(s[start:], sub)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
