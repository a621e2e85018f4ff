// Package analyzer computes per-board and per-position statistics
// over a list of solutions: word/point counts by length, "n or more
// letters" running totals, the best-scoring word at each length, and
// per-position word/point tallies - the data behind the analyze
// command's report format.
package analyzer

import (
	"github.com/cespare/xxhash"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/solver"
)

// Analysis holds the bucketed statistics computed from a sorted
// solution list. Bucket index 0 is always the "all words" total.
type Analysis struct {
	boardLetters string

	wordLengthCounts  map[int]int
	pointLengthCounts map[int]int
	wordLengthPlus    map[int]int
	pointLengthPlus   map[int]int

	positionWords  map[int]int
	positionPoints map[int]int

	bestWords      map[int]string
	bestWordPoints map[int]int
	maxWordLength  int
}

// Analyze computes an Analysis from b and solutions. solutions must
// already be sorted the way Solver.Solutions are conventionally
// presented: alphabetically by word, highest score first for ties
// (see solver.Less), so that the first occurrence of a repeated word
// is its best-scoring instance.
func Analyze(b *board.Board, solutions []solver.Solution) *Analysis {
	a := &Analysis{
		boardLetters:      b.Letters(),
		wordLengthCounts:  make(map[int]int),
		pointLengthCounts: make(map[int]int),
		wordLengthPlus:    make(map[int]int),
		pointLengthPlus:   make(map[int]int),
		positionWords:     make(map[int]int),
		positionPoints:    make(map[int]int),
		bestWords:         make(map[int]string),
		bestWordPoints:    make(map[int]int),
	}

	lastWord := ""
	lastWordPositions := make(map[uint64]bool)

	for _, sol := range solutions {
		score := sol.Score
		word := sol.Word
		wordLength := len(word)
		if wordLength > a.maxWordLength {
			a.maxWordLength = wordLength
		}

		if word != lastWord {
			lastWordPositions = make(map[uint64]bool)
		}

		if a.bestWordPoints[wordLength] < score {
			a.bestWords[wordLength] = word
			a.bestWordPoints[wordLength] = score
		}
		if a.bestWordPoints[0] < score {
			a.bestWords[0] = word
			a.bestWordPoints[0] = score
		}

		if word != lastWord {
			a.wordLengthCounts[wordLength]++
			a.wordLengthCounts[0]++

			a.pointLengthCounts[wordLength] += score
			a.pointLengthCounts[0] += score

			for j := 0; j <= wordLength; j++ {
				a.wordLengthPlus[j]++
				a.pointLengthPlus[j] += score
			}

			a.positionWords[0]++
			a.positionPoints[0] += score
		}

		for _, pos := range sol.Path {
			p := pos + 1 // 0-based to 1-based
			key := positionKey(word, p)
			if lastWordPositions[key] {
				continue
			}
			a.positionWords[p]++
			a.positionPoints[p] += score
			lastWordPositions[key] = true
		}

		lastWord = word
	}

	return a
}

func positionKey(word string, pos int) uint64 {
	h := xxhash.New()
	h.Write([]byte(word))
	h.Write([]byte{byte(pos), byte(pos >> 8)})
	return h.Sum64()
}

// BoardLetters returns the original board description passed to Analyze.
func (a *Analysis) BoardLetters() string { return a.boardLetters }

// WordCount returns the number of distinct words of the given length,
// or the overall total if length is 0.
func (a *Analysis) WordCount(length int) int { return a.wordLengthCounts[length] }

// PointCount returns the summed points of distinct words of the given
// length, or the overall total if length is 0.
func (a *Analysis) PointCount(length int) int { return a.pointLengthCounts[length] }

// WordCountPlus returns the number of distinct words with at least
// length letters.
func (a *Analysis) WordCountPlus(length int) int { return a.wordLengthPlus[length] }

// PointCountPlus returns the summed points of distinct words with at
// least length letters.
func (a *Analysis) PointCountPlus(length int) int { return a.pointLengthPlus[length] }

// PositionWords returns the number of distinct words touching the
// 1-based board position pos, or the board total if pos is 0.
func (a *Analysis) PositionWords(pos int) int { return a.positionWords[pos] }

// PositionPoints returns the summed points of distinct words touching
// the 1-based board position pos, or the board total if pos is 0.
func (a *Analysis) PositionPoints(pos int) int { return a.positionPoints[pos] }

// BestWord returns the highest-scoring word of the given length, or
// overall if length is 0.
func (a *Analysis) BestWord(length int) string { return a.bestWords[length] }

// BestWordScore returns the score of BestWord(length).
func (a *Analysis) BestWordScore(length int) int { return a.bestWordPoints[length] }
