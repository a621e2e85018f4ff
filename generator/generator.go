// Package generator builds random boards: either a quick, unscored
// deal straight from a distribution, or a hill-climbing search that
// keeps resampling until a board meets a target word count and score
// (or gives up after too many unproductive tries).
package generator

import (
	"math"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/dice"
	"github.com/domino14/wgs/distribution"
	"github.com/domino14/wgs/randsrc"
	"github.com/domino14/wgs/scoring"
	"github.com/domino14/wgs/solver"
)

const maxDuds = 200

// GenerateSimple deals a board straight from the distribution with no
// scoring feedback: a single random draw from dice, propensity pool,
// or word list, depending on the distribution's method. wordList
// supplies the candidate lines for the WordList method; it is ignored
// otherwise.
func GenerateSimple(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, wordList []string, rng randsrc.Source) string {
	if rng == nil {
		rng = randsrc.Global
	}
	switch dist.GenerationMethod {
	case distribution.Dice:
		return generateSimpleDiceBoard(dist, rules, grid, rng)
	case distribution.Propensity:
		return generateSimplePropBoard(dist, rules, grid, rng)
	case distribution.WordListDist:
		return generateSimpleListBoard(dist, grid, wordList, rng)
	default:
		return ""
	}
}

// Generate hill-climbs toward a board with at least minWords distinct
// words worth at least minScore total points, starting from a random
// deal and repeatedly perturbing it (one die/letter changed, or two
// swapped) while keeping whichever variant scores better. Search
// stops after maxDuds consecutive non-improving attempts.
//
// When reverseTarget is true, the search instead hunts for a board
// with AT MOST minWords words worth AT MOST minScore points - useful
// for generating deliberately sparse boards.
func Generate(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, s *solver.Solver, minWords, minScore int, reverseTarget bool, rng randsrc.Source) string {
	if rng == nil {
		rng = randsrc.Global
	}
	switch dist.GenerationMethod {
	case distribution.Dice:
		return generateDiceBoard(dist, rules, grid, s, minWords, minScore, reverseTarget, rng)
	case distribution.Propensity:
		return generatePropBoard(dist, rules, grid, s, minWords, minScore, reverseTarget, rng)
	default:
		return ""
	}
}

func computeMaxLetters(rules *scoring.Rules, grid *board.Grid) int {
	maxLetters := rules.RandomBoardSize
	if maxLetters == 0 || grid.TilesSet() < maxLetters {
		maxLetters = grid.TilesSet()
	}
	return maxLetters
}

func generateSimpleDiceBoard(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, rng randsrc.Source) string {
	maxLetters := computeMaxLetters(rules, grid)

	dice := append([][]string{}, dist.Dice()...)
	if dist.ShuffleDice {
		rng.Shuffle(len(dice), func(i, j int) { dice[i], dice[j] = dice[j], dice[i] })
	}
	if len(dice) > maxLetters {
		dice = dice[:maxLetters]
	}

	var b strings.Builder
	for _, die := range dice {
		b.WriteString(die[rng.Intn(len(die))])
	}
	return b.String()
}

func generateSimplePropBoard(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, rng randsrc.Source) string {
	maxLetters := computeMaxLetters(rules, grid)
	letters := append([]string{}, dist.PropensityList()...)

	var out []string
	if dist.SampleWithoutReplacement {
		for i := 0; i < maxLetters; i++ {
			if i == len(letters) {
				break
			}
			j := i + rng.Intn(len(letters)-i)
			out = append(out, letters[j])
			letters[i], letters[j] = letters[j], letters[i]
		}
	} else {
		for i := 0; i < maxLetters; i++ {
			out = append(out, letters[rng.Intn(len(letters))])
		}
	}
	return strings.Join(out, "")
}

// generateSimpleListBoard picks one line from wordList uniformly at
// random via reservoir sampling, then - if the distribution calls for
// it - reparses it as a board and shuffles its tiles (multiplier
// markers travel with their tile).
func generateSimpleListBoard(dist *distribution.Distribution, grid *board.Grid, wordList []string, rng randsrc.Source) string {
	if len(wordList) == 0 {
		return ""
	}

	chosen := ""
	for i, line := range wordList {
		if rng.Intn(i+1) == 0 {
			chosen = line
		}
	}

	if !dist.ShuffleLetters {
		return chosen
	}

	b := board.ParseBoard(chosen, grid)
	tiles := make([]string, b.Size())
	for i := 0; i < b.Size(); i++ {
		prefix := strings.Repeat(":", b.LetterMult(i)-1) + strings.Repeat(";", b.WordMult(i)-1)
		tile := b.Tile(i)
		if tile == "" {
			tiles[i] = prefix + "."
		} else {
			tiles[i] = prefix + tile
		}
	}
	rng.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
	return strings.Join(tiles, "")
}

// sortedUniqueSolutions sorts by solver.Less (word asc, score desc)
// and keeps one Solution per distinct word - the highest-scoring
// instance, since ties sort score-descending.
func sortedUniqueSolutions(sols []solver.Solution) []solver.Solution {
	out := append([]solver.Solution{}, sols...)
	sort.Slice(out, func(i, j int) bool { return solver.Less(out[i], out[j]) })

	return lo.UniqBy(out, func(s solver.Solution) string { return s.Word })
}

func totalScore(sols []solver.Solution) int {
	total := 0
	for _, s := range sols {
		total += s.Score
	}
	return total
}

// initialBest returns the sentinel best score/points a hill climb
// starts from: zero when hunting for a maximum, the largest possible
// int when hunting for a minimum, so that the very first candidate is
// always accepted as an improvement.
func initialBest(reverseTarget bool) int {
	if reverseTarget {
		return math.MaxInt
	}
	return 0
}

// improves reports whether a candidate board (score/points) beats the
// current best under the search direction, including the "good
// enough, and it's been a while" slack term that lets the climb keep
// moving even without a strict improvement.
func improves(reverseTarget bool, boardScore, boardPoints, bestScore, bestPoints, changes int) bool {
	if reverseTarget {
		return boardScore < bestScore || boardPoints < bestPoints || (boardScore-bestScore) < 250/changes
	}
	return boardScore > bestScore || boardPoints > bestPoints || (bestScore-boardScore) < 250/changes
}

// targetReached reports whether the current best already satisfies
// the caller's min-words/min-score target, ending the search.
func targetReached(reverseTarget bool, bestScore, bestPoints, minWords, minScore int) bool {
	if reverseTarget {
		return !(bestScore > minWords || bestPoints > minScore)
	}
	return !(bestScore < minWords || bestPoints < minScore)
}

func generateDiceBoard(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, s *solver.Solver, minWords, minScore int, reverseTarget bool, rng randsrc.Source) string {
	isAnagram := grid.AdjacencyMode() == board.Full
	maxLetters := computeMaxLetters(rules, grid)

	diceDefs := append([][]string{}, dist.Dice()...)
	if dist.ShuffleDice {
		rng.Shuffle(len(diceDefs), func(i, j int) { diceDefs[i], diceDefs[j] = diceDefs[j], diceDefs[i] })
	}
	if len(diceDefs) > maxLetters {
		diceDefs = diceDefs[:maxLetters]
	}
	numDice := len(diceDefs)

	bestScore := initialBest(reverseTarget)
	bestPoints := initialBest(reverseTarget)
	duds := 0
	changes := 1

	best := dice.New(diceDefs, rng)

	for {
		tmp := best.Clone()

		if isAnagram || rng.Intn(2) == 1 {
			i := rng.Intn(numDice)
			tmp.RollOne(i)
		} else {
			i := rng.Intn(numDice)
			j := rng.Intn(numDice)
			tmp.SwapDice(i, j)
		}

		letters := strings.Join(tmp.GetLetters(), "")
		b := board.ParseBoard(letters, grid)
		s.Solve(b, rules)
		solutions := sortedUniqueSolutions(s.Solutions())

		boardScore := len(solutions)
		boardPoints := totalScore(solutions)

		if improves(reverseTarget, boardScore, boardPoints, bestScore, bestPoints, changes) {
			best = tmp
			bestScore = boardScore
			bestPoints = boardPoints
			duds = 0
			changes++
		} else {
			duds++
		}

		if duds >= maxDuds || targetReached(reverseTarget, bestScore, bestPoints, minWords, minScore) {
			break
		}
	}

	return strings.Join(best.GetLetters(), "")
}

func generatePropBoard(dist *distribution.Distribution, rules *scoring.Rules, grid *board.Grid, s *solver.Solver, minWords, minScore int, reverseTarget bool, rng randsrc.Source) string {
	isAnagram := grid.AdjacencyMode() == board.Full
	maxLetters := computeMaxLetters(rules, grid)
	numLetters := maxLetters

	propLetters := append([]string{}, dist.PropensityList()...)
	var best []string
	var pool []string

	if dist.SampleWithoutReplacement {
		i := 0
		for ; i < maxLetters; i++ {
			if i == len(propLetters) {
				numLetters = i
				break
			}
			j := i + rng.Intn(len(propLetters)-i)
			best = append(best, propLetters[j])
			propLetters[i], propLetters[j] = propLetters[j], propLetters[i]
		}
		if i < len(propLetters) {
			pool = append([]string{}, propLetters[i:]...)
		}
	} else {
		for i := 0; i < maxLetters; i++ {
			best = append(best, propLetters[rng.Intn(len(propLetters))])
		}
	}

	if isAnagram && dist.SampleWithoutReplacement && len(pool) == 0 {
		return strings.Join(best, "")
	}

	bestScore := initialBest(reverseTarget)
	bestPoints := initialBest(reverseTarget)
	duds := 0
	changes := 1

	for {
		tmp := append([]string{}, best...)
		savePool := append([]string{}, pool...)

		changeOneLetter := isAnagram || (rng.Intn(2) == 1 && !(dist.SampleWithoutReplacement && len(pool) == 0))
		if changeOneLetter {
			i := rng.Intn(numLetters)
			if dist.SampleWithoutReplacement {
				j := rng.Intn(len(pool))
				tmp[i], pool[j] = pool[j], tmp[i]
			} else {
				j := rng.Intn(len(propLetters))
				tmp[i] = propLetters[j]
			}
		} else {
			i := rng.Intn(numLetters)
			j := rng.Intn(numLetters)
			tmp[i], tmp[j] = tmp[j], tmp[i]
		}

		b := board.ParseBoard(strings.Join(tmp, ""), grid)
		s.Solve(b, rules)
		solutions := sortedUniqueSolutions(s.Solutions())

		boardScore := len(solutions)
		boardPoints := totalScore(solutions)

		if improves(reverseTarget, boardScore, boardPoints, bestScore, bestPoints, changes) {
			best = tmp
			bestScore = boardScore
			bestPoints = boardPoints
			duds = 0
			changes++
		} else {
			duds++
			pool = savePool
		}

		if duds >= maxDuds || targetReached(reverseTarget, bestScore, bestPoints, minWords, minScore) {
			break
		}
	}

	return strings.Join(best, "")
}
