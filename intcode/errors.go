package intcode

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOpcode is the cause of a Fault for an instruction whose
	// opcode is not one of 1-8 or 99.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidMode is the cause of a Fault for a parameter mode digit
	// other than 0 (position) or 1 (immediate).
	ErrInvalidMode = errors.New("invalid parameter mode")
	// ErrOutOfBounds is the cause of a Fault for a read, write, or jump
	// outside of working memory.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrStarvedInput is returned by Run when an input instruction is
	// reached with an empty input queue.
	ErrStarvedInput = errors.New("input instruction with empty input queue")
	// ErrNoOutput is returned by the amplifier helpers when a stage halts
	// without emitting a signal.
	ErrNoOutput = errors.New("halted without output")
)

// A ParseError records a malformed token in program text.
type ParseError struct {
	Index int    // 0-based token index
	Token string // the token, with surrounding whitespace removed
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("intcode: bad token %d (%q): %s", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A FaultError is a fatal execution error. A machine that faults does not
// execute any further instructions.
type FaultError struct {
	IP    int   // instruction pointer of the faulting instruction
	Value int64 // value at IP, or the offending address/target
	Err   error // one of ErrInvalidOpcode, ErrInvalidMode, ErrOutOfBounds
}

func (f *FaultError) Error() string {
	return fmt.Sprintf("intcode: %s at ip %d (value %d)", f.Err, f.IP, f.Value)
}

func (f *FaultError) Unwrap() error { return f.Err }
