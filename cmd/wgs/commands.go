package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wgs/analyzer"
	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/cache"
	"github.com/domino14/wgs/config"
	"github.com/domino14/wgs/distribution"
	"github.com/domino14/wgs/format"
	"github.com/domino14/wgs/generator"
	"github.com/domino14/wgs/randsrc"
	"github.com/domino14/wgs/solver"
	"github.com/domino14/wgs/validator"
)

// unescapeString interprets \t, \n, and \\ escapes across an entire
// string, matching solver.cpp's unescape_string used on the
// solve/solve-dups prefix and suffix arguments.
func unescapeString(s string) string {
	var out strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inEscape {
			switch c {
			case 't':
				out.WriteByte('\t')
			case 'n':
				out.WriteByte('\n')
			case '\\':
				out.WriteByte('\\')
			default:
				out.WriteByte(c)
			}
			inEscape = false
			continue
		}
		if c == '\\' {
			inEscape = true
			continue
		}
		out.WriteByte(c)
	}
	return out.String()
}

func loadWords(gc *config.GameConfig, path string) ([]string, error) {
	obj, err := cache.Load(gc, path, func(gc *config.GameConfig, key string) (interface{}, error) {
		return config.LoadWordList(key)
	})
	if err != nil {
		return nil, err
	}
	return obj.([]string), nil
}

func newSolver(gc *config.GameConfig, dictPath string) (*solver.Solver, error) {
	words, err := loadWords(gc, dictPath)
	if err != nil {
		return nil, err
	}
	s := solver.New()
	for _, w := range words {
		s.AddWord(w)
	}
	return s, nil
}

func sortedSolutions(s *solver.Solver, dedup bool) []solver.Solution {
	return sortSolutions(s.Solutions(), dedup)
}

// sortSolutions sorts sols by solver.Less (word ascending, score
// descending for ties) and, when dedup is true, keeps only the first
// - and so highest-scoring - occurrence of each word.
func sortSolutions(sols []solver.Solution, dedup bool) []solver.Solution {
	out := append([]solver.Solution{}, sols...)
	sort.Slice(out, func(i, j int) bool { return solver.Less(out[i], out[j]) })
	if !dedup {
		return out
	}
	deduped := out[:0]
	seen := map[string]bool{}
	for _, sol := range out {
		if !seen[sol.Word] {
			seen[sol.Word] = true
			deduped = append(deduped, sol)
		}
	}
	return deduped
}

func doScoreBoards(gc *config.GameConfig, rs *config.RuleSet) error {
	s, err := newSolver(gc, rs.Dictionary)
	if err != nil {
		return err
	}

	src := newLineSource("Enter letters (empty to quit): ")
	defer src.close()

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		b := board.ParseBoard(line, rs.Grid)
		s.Solve(b, rs.ScoringRules)
		sols := sortedSolutions(s, true)

		points := 0
		for _, sol := range sols {
			points += sol.Score
		}
		fmt.Printf("%d %d\n", len(sols), points)
	}
	return nil
}

func doSolveBoards(gc *config.GameConfig, rs *config.RuleSet, fmtStr string, solveDups bool, prefix, suffix string) error {
	s, err := newSolver(gc, rs.Dictionary)
	if err != nil {
		return err
	}

	prefix = unescapeString(prefix)
	suffix = unescapeString(suffix)

	src := newLineSource("Enter letters (empty to quit): ")
	defer src.close()

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		b := board.ParseBoard(line, rs.Grid)
		s.Solve(b, rs.ScoringRules)
		sols := sortedSolutions(s, !solveDups)

		fmt.Print(prefix)
		for i, sol := range sols {
			fmt.Print(format.Solution(fmtStr, sol, i == len(sols)-1))
		}
		fmt.Print(suffix)
	}
	return nil
}

func doAnalyzeBoards(gc *config.GameConfig, rs *config.RuleSet, fmtStr string, dumpWords bool) error {
	s, err := newSolver(gc, rs.Dictionary)
	if err != nil {
		return err
	}

	src := newLineSource("Enter letters (empty to quit): ")
	defer src.close()

	wordCounts := map[string]int{}

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		b := board.ParseBoard(line, rs.Grid)
		s.Solve(b, rs.ScoringRules)
		sols := sortedSolutions(s, false)

		an := analyzer.Analyze(b, sols)
		fmt.Print(format.Analysis(fmtStr, an, 0))

		if dumpWords {
			for _, sol := range sortedSolutions(s, true) {
				wordCounts[sol.Word]++
			}
		}
	}

	if dumpWords {
		words := make([]string, 0, len(wordCounts))
		for w := range wordCounts {
			words = append(words, w)
		}
		sort.Strings(words)
		for _, w := range words {
			log.Info().Str("word", w).Int("count", wordCounts[w]).Msg("word occurrence")
		}
	}
	return nil
}

func doGenerateSimpleBoards(rs *config.RuleSet, boards int, wordList []string, rng randsrc.Source) {
	for i := 0; i < boards; i++ {
		fmt.Println(generator.GenerateSimple(rs.Letters, rs.ScoringRules, rs.Grid, wordList, rng))
	}
}

func doGenerateBoards(gc *config.GameConfig, rs *config.RuleSet, boards, minWords, minScore int, reverseTarget bool, rng randsrc.Source) error {
	if minWords == 0 && minScore == 0 && !reverseTarget {
		var wordList []string
		if rs.Letters.GenerationMethod == distribution.WordListDist {
			words, err := loadWords(gc, rs.Letters.WordListFile)
			if err != nil {
				return err
			}
			wordList = words
		}
		doGenerateSimpleBoards(rs, boards, wordList, rng)
		return nil
	}

	if rs.Letters.GenerationMethod == distribution.WordListDist {
		return fmt.Errorf("minimum word/score board generation not supported for word list games")
	}

	s, err := newSolver(gc, rs.Dictionary)
	if err != nil {
		return err
	}

	const fmtStr = "%B %W %S"
	for i := 0; i < boards; i++ {
		letters := generator.Generate(rs.Letters, rs.ScoringRules, rs.Grid, s, minWords, minScore, reverseTarget, rng)
		b := board.ParseBoard(letters, rs.Grid)
		s.Solve(b, rs.ScoringRules)
		sols := sortedSolutions(s, false)
		an := analyzer.Analyze(b, sols)
		fmt.Println(format.Analysis(fmtStr, an, 0))
	}
	return nil
}

// verbosity levels for check-word/check-board, matching solver.cpp's
// "stats"/"verbose" options.
const (
	verbosityNone = iota
	verbosityStats
	verbosityVerbose
)

func parseVerbosity(s string) (int, error) {
	switch s {
	case "":
		return verbosityNone, nil
	case "stats":
		return verbosityStats, nil
	case "verbose":
		return verbosityVerbose, nil
	default:
		return 0, fmt.Errorf("unknown verbosity option %q", s)
	}
}

func doCheckWords(rs *config.RuleSet, verbosity int) {
	v := validator.New()
	if verbosity == verbosityVerbose {
		v.Debug = 1
	}

	src := newLineSource("Enter word to check (empty to quit): ")
	defer src.close()

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		result := v.Validate(rs.Letters, rs.ScoringRules, rs.Grid, line, true)
		fmt.Printf("%s%s \n", checkMark(result), line)
	}
	if verbosity > verbosityNone {
		v.PrintStats()
	}
}

func doCheckBoards(rs *config.RuleSet, verbosity int) {
	v := validator.New()
	if verbosity == verbosityVerbose {
		v.Debug = 1
	}

	src := newLineSource("Enter word to check (empty to quit): ")
	defer src.close()

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		result := v.Validate(rs.Letters, rs.ScoringRules, rs.Grid, line, false)
		fmt.Printf("%s%s \n", checkMark(result), line)
	}
	if verbosity > verbosityNone {
		v.PrintStats()
	}
}

func checkMark(ok bool) string {
	if ok {
		return "+"
	}
	return "-"
}

func parseUint(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
