// Package solver finds every dictionary word spellable by walking
// adjacent tiles on a board, and scores each one it finds.
package solver

import (
	"strings"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/scoring"
	"github.com/domino14/wgs/trie"
)

// Solution is one word found on a board: the path of board positions
// that spell it and the score breakdown for that path.
type Solution struct {
	Word           string
	Path           []int
	WordLength     int
	Score          int
	LetterPoints   int
	WordMultiplier int
	LengthBonus    float64
}

// Less orders solutions alphabetically by word, then by descending
// score for ties - the same ordering as Solution::operator< in the
// original, used to put the highest-scoring instance of a duplicate
// word first so a "drop duplicates" pass keeps the best one.
func Less(a, b Solution) bool {
	if a.Word != b.Word {
		return a.Word < b.Word
	}
	return a.Score > b.Score
}

// EqualWords reports whether a and b spell the same word, ignoring
// score/path - used to dedupe a sorted solution list.
func EqualWords(a, b Solution) bool {
	return a.Word == b.Word
}

// Solver walks a board's adjacency graph against a dictionary trie,
// collecting every word it can spell.
type Solver struct {
	dict      *trie.Node
	solutions []Solution

	board    *board.Board
	used     []bool
	path     []int
	curLen   int
	wildcard []byte
}

// New returns an empty Solver with no words loaded yet.
func New() *Solver {
	return &Solver{dict: trie.New()}
}

// AddWord adds word to the solver's dictionary.
func (s *Solver) AddWord(word string) {
	s.dict.AddWord(word)
}

// Solutions returns the solutions found by the most recent Solve call.
func (s *Solver) Solutions() []Solution {
	return s.solutions
}

// Solve finds every word spellable on b under scoring rules r, storing
// the results for retrieval via Solutions.
func (s *Solver) Solve(b *board.Board, r *scoring.Rules) {
	s.solutions = s.solutions[:0]
	s.board = b
	s.curLen = 0

	size := b.Size()
	s.used = make([]bool, size)
	s.path = make([]int, size)
	s.wildcard = make([]byte, size)

	for i := 0; i < size; i++ {
		s.solve(i, s.dict, b.Tile(i), r)
	}
}

func (s *Solver) solve(pos int, t *trie.Node, tile string, r *scoring.Rules) {
	if t == nil || tile == "" {
		return
	}

	for i := 0; i < len(tile); i++ {
		c := tile[i]
		if c == '?' {
			rest := tile[i+1:]
			for letter := byte('A'); letter <= 'Z'; letter++ {
				s.wildcard[pos] = letter
				s.solve(pos, t, string(letter)+rest, r)
			}
			return
		}

		t = t.Child(upper(c))
		if t == nil {
			return
		}

		if r.QIsQu && upper(c) == 'Q' {
			t = t.Child('U')
			if t == nil {
				return
			}
		}
	}

	s.used[pos] = true
	s.path[s.curLen] = pos
	s.curLen++

	if t.IsTerminal() {
		sol := s.scoreSolution(r, s.path[:s.curLen])
		if sol.WordLength >= r.MinWordLength {
			s.solutions = append(s.solutions, sol)
		}
	}

	size := s.board.Size()
	for i := 0; i < size; i++ {
		if !s.used[i] && s.board.IsAdjacent(pos, i) {
			s.solve(i, t, s.board.Tile(i), r)
		}
	}

	s.used[pos] = false
	s.curLen--
}

func (s *Solver) scoreSolution(r *scoring.Rules, path []int) Solution {
	wordLen := 0
	letterPoints := 0
	wordMultiplier := 1
	var word strings.Builder

	for _, p := range path {
		tileValue := 0
		letters := s.board.Tile(p)

		for i := 0; i < len(letters); i++ {
			letter := letters[i]
			isWildcard := false
			if letter == '?' {
				letter = s.wildcard[p]
				isWildcard = true
			}

			wordLen++
			word.WriteByte(upper(letter))

			if upper(letter) == 'Q' && r.QIsQu {
				word.WriteByte('U')
				if r.QuLength == 2 {
					wordLen++
				}
			}

			if !isWildcard || r.WildCardPoints {
				tileValue += r.LetterValue(letter)
			}
		}

		letterMultiplier := s.board.LetterMult(p)
		letterPoints += tileValue * letterMultiplier
		wordMultiplier *= s.board.WordMult(p)
	}

	wordStr := word.String()
	pathCopy := append([]int(nil), path...)

	if wordLen < r.MinWordLength {
		return Solution{Word: wordStr, Path: pathCopy, WordLength: wordLen, WordMultiplier: 1}
	}

	if wordLen <= r.ShortWordLength {
		if r.ShortWordMultiplier {
			return Solution{
				Word: wordStr, Path: pathCopy, WordLength: wordLen,
				Score: wordMultiplier * r.ShortWordPoints, LetterPoints: r.ShortWordPoints,
				WordMultiplier: wordMultiplier,
			}
		}
		return Solution{
			Word: wordStr, Path: pathCopy, WordLength: wordLen,
			Score: r.ShortWordPoints, LetterPoints: r.ShortWordPoints,
			WordMultiplier: 1,
		}
	}

	lengthBonus := r.LengthBonus(wordLen)
	var score float64
	if r.MultiplyLengthBonus {
		score = float64(letterPoints*wordMultiplier) * lengthBonus
	} else {
		score = float64(letterPoints*wordMultiplier) + lengthBonus
	}
	if r.RoundBonusUp {
		score = ceil(score)
	}

	return Solution{
		Word: wordStr, Path: pathCopy, WordLength: wordLen,
		Score: int(score), LetterPoints: letterPoints,
		WordMultiplier: wordMultiplier, LengthBonus: lengthBonus,
	}
}

func ceil(f float64) float64 {
	i := int(f)
	if f > float64(i) {
		return float64(i + 1)
	}
	return f
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
