package main

import (
	"bufio"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// lineSource reads successive input lines - board strings for score/
// solve/analyze, words for check-word/check-board - until EOF.
type lineSource interface {
	// next returns the next line and true, or "" and false at EOF.
	next() (string, bool)
	close()
}

// newLineSource picks an interactive readline-backed source when
// stdin is a terminal, and a plain line scanner otherwise (piped or
// redirected input, as used by batch/test invocations).
func newLineSource(prompt string) lineSource {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		rl, err := readline.New(prompt)
		if err == nil {
			return &readlineSource{rl: rl}
		}
	}
	return &scannerSource{scanner: bufio.NewScanner(os.Stdin)}
}

type readlineSource struct {
	rl *readline.Instance
}

func (r *readlineSource) next() (string, bool) {
	line, err := r.rl.Readline()
	if err != nil {
		return "", false
	}
	return line, true
}

func (r *readlineSource) close() {
	r.rl.Close()
}

type scannerSource struct {
	scanner *bufio.Scanner
}

func (s *scannerSource) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *scannerSource) close() {}

// scriptLineSource reads one command per line from a batch script
// file, used by the "run" subcommand for reproducible test fixtures.
type scriptLineSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func newScriptLineSource(path string) (*scriptLineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &scriptLineSource{scanner: bufio.NewScanner(f), closer: f}, nil
}

func (s *scriptLineSource) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *scriptLineSource) close() {
	s.closer.Close()
}
