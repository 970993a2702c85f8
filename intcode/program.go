// Package intcode implements the Intcode virtual machine: a stored-program
// interpreter over a flat array of integers with position and immediate
// addressing modes.
package intcode

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// A Program is an immutable Intcode program. It is the template from which
// working memory is copied for each run. A Program is safe for concurrent
// use.
type Program struct {
	code []int64
}

// Parse parses a single line of comma-separated base-10 integers.
// Whitespace around each token is ignored.
func Parse(text string) (*Program, error) {
	text = strings.TrimSpace(text)
	fields := strings.Split(text, ",")
	code := make([]int64, len(fields))
	for i, field := range fields {
		tok := strings.TrimSpace(field)
		if tok == "" {
			return nil, &ParseError{Index: i, Token: tok, Err: errors.New("empty token")}
		}
		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, &ParseError{Index: i, Token: tok, Err: err}
		}
		code[i] = n
	}
	return &Program{code: code}, nil
}

// Load reads all of r and parses it with Parse.
func Load(r io.Reader) (*Program, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// Len returns the number of values in p.
func (p *Program) Len() int { return len(p.code) }

// At returns the value at index i. It panics if i is out of range.
func (p *Program) At(i int) int64 { return p.code[i] }

// Snapshot returns a fresh mutable copy of the program. Snapshots share no
// memory with p or with each other.
func (p *Program) Snapshot() []int64 {
	mem := make([]int64, len(p.code))
	copy(mem, p.code)
	return mem
}

// NewMachine returns a machine whose working memory is a new snapshot of p.
func (p *Program) NewMachine() *Machine {
	return NewMachine(p.Snapshot())
}
