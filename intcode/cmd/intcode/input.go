package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
)

type inputSource interface {
	// next returns the next input value, or io.EOF when there are none.
	next() (int64, error)
	Close() error
}

func newInputSource(f *os.File) (inputSource, error) {
	if !isTerminal(int(f.Fd())) {
		return newScanInput(f), nil
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "input> ",
		HistoryFile: filepath.Join(os.TempDir(), "intcode_history"),
	})
	if err != nil {
		return nil, err
	}
	return &promptInput{rl: rl}, nil
}

// promptInput asks for each value interactively.
type promptInput struct {
	rl *readline.Instance
}

func (in *promptInput) next() (int64, error) {
	for {
		line, err := in.rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt, io.EOF:
			return 0, io.EOF
		default:
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "not an integer: %q\n", line)
			continue
		}
		return n, nil
	}
}

func (in *promptInput) Close() error { return in.rl.Close() }

// scanInput reads integers separated by commas or whitespace.
type scanInput struct {
	scanner *bufio.Scanner
	pending []string
}

func newScanInput(r io.Reader) *scanInput {
	return &scanInput{scanner: bufio.NewScanner(r)}
}

func (in *scanInput) next() (int64, error) {
	for len(in.pending) == 0 {
		if !in.scanner.Scan() {
			if err := in.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		in.pending = splitInts(in.scanner.Text())
	}
	field := in.pending[0]
	in.pending = in.pending[1:]
	return strconv.ParseInt(field, 10, 64)
}

func (in *scanInput) Close() error { return nil }
