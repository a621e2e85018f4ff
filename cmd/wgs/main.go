// Command wgs is the command-line entry point for the word-game
// solver: scoring, solving, analyzing, and generating boards, plus
// checking whether a word or board is spellable under a game's letter
// distribution. Commands read their input (board strings, or words to
// check) one line at a time from standard input until EOF, matching
// the original tool's interactive loop.
package main

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wgs/config"
	"github.com/domino14/wgs/randsrc"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	flags, rest, err := config.LoadFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("parsing flags")
	}
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wgs -config file -game name <command> [options...]")
		fmt.Fprintln(os.Stderr, "   or: wgs -config file -game name run <scriptfile>")
		os.Exit(1)
	}

	gc, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	command := rest[0]
	args := rest[1:]

	if command == "run" {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: wgs -config file -game name run <scriptfile>")
			os.Exit(1)
		}
		if err := runScript(gc, flags.Game, args[0]); err != nil {
			log.Fatal().Err(err).Msg("running script")
		}
		return
	}

	rs, err := gc.Resolve(flags.Game)
	if err != nil {
		log.Fatal().Err(err).Msg("resolving game rules")
	}

	if err := dispatch(gc, rs, command, args); err != nil {
		log.Fatal().Err(err).Msg("running command")
	}
}

// dispatch runs one subcommand against an already-resolved ruleset.
func dispatch(gc *config.GameConfig, rs *config.RuleSet, command string, args []string) error {
	switch command {
	case "score":
		return doScoreBoards(gc, rs)

	case "solve", "solve-dups":
		fmtStr := rs.Preferences["SolutionFormat"]
		prefix := rs.Preferences["SolutionPrefix"]
		suffix := rs.Preferences["SolutionSuffix"]
		if len(args) >= 1 {
			fmtStr = args[0]
		}
		if len(args) >= 2 {
			prefix = args[1]
		}
		if len(args) >= 3 {
			suffix = args[2]
		}
		return doSolveBoards(gc, rs, fmtStr, command == "solve-dups", prefix, suffix)

	case "analyze":
		fmtStr := rs.Preferences["AnalysisFormat"]
		dumpWords := false
		if len(args) >= 1 {
			fmtStr = args[0]
		}
		if len(args) >= 2 {
			dumpWords = args[1] == "dump-words"
		}
		return doAnalyzeBoards(gc, rs, fmtStr, dumpWords)

	case "create":
		boards := parseUint(argAt(args, 0), 1)
		minWords := parseUint(argAt(args, 1), 0)
		minScore := parseUint(argAt(args, 2), 0)
		reverseTarget := argAt(args, 3) == "minimize"
		return doGenerateBoards(gc, rs, boards, minWords, minScore, reverseTarget, randsrc.Global)

	case "check-word":
		verbosity, err := parseVerbosity(argAt(args, 0))
		if err != nil {
			return err
		}
		doCheckWords(rs, verbosity)
		return nil

	case "check-board":
		opt := argAt(args, 0)
		if opt != "" && opt != "stats" {
			return fmt.Errorf("unknown verbosity option %q", opt)
		}
		verbosity := verbosityNone
		if opt == "stats" {
			verbosity = verbosityStats
		}
		doCheckBoards(rs, verbosity)
		return nil

	default:
		return fmt.Errorf("%q is not a valid command", command)
	}
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// runScript executes one command per line of a batch script file
// against the named game, tokenizing each line with go-shellquote so
// quoted format strings survive intact.
func runScript(gc *config.GameConfig, game, path string) error {
	rs, err := gc.Resolve(game)
	if err != nil {
		return err
	}

	src, err := newScriptLineSource(path)
	if err != nil {
		return err
	}
	defer src.close()

	for {
		line, ok := src.next()
		if !ok {
			break
		}
		if line == "" {
			continue
		}
		tokens, err := shellquote.Split(line)
		if err != nil {
			log.Error().Err(err).Str("line", line).Msg("skipping unparsable script line")
			continue
		}
		if len(tokens) == 0 {
			continue
		}
		if err := dispatch(gc, rs, tokens[0], tokens[1:]); err != nil {
			log.Error().Err(err).Str("line", line).Msg("script command failed")
		}
	}
	return nil
}
