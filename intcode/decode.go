package intcode

import (
	"fmt"
	"strings"
)

// An Opcode is the low two decimal digits of an instruction value.
type Opcode int64

const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpInput       Opcode = 3
	OpOutput      Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpHalt        Opcode = 99
)

var opInfo = map[Opcode]struct {
	name  string
	arity int
}{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpInput:       {"in", 1},
	OpOutput:      {"out", 1},
	OpJumpIfTrue:  {"jt", 2},
	OpJumpIfFalse: {"jf", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpHalt:        {"halt", 0},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opInfo[op]
	return ok
}

// Arity returns the number of parameters op takes, or -1 for an unknown
// opcode.
func (op Opcode) Arity() int {
	info, ok := opInfo[op]
	if !ok {
		return -1
	}
	return info.arity
}

func (op Opcode) String() string {
	if info, ok := opInfo[op]; ok {
		return info.name
	}
	return fmt.Sprintf("op(%d)", int64(op))
}

// A Mode is a parameter addressing mode.
type Mode int8

const (
	Position  Mode = 0 // the parameter is an address to dereference
	Immediate Mode = 1 // the parameter is the value itself
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "pos"
	case Immediate:
		return "imm"
	}
	return fmt.Sprintf("mode(%d)", int8(m))
}

// maxArity is the largest parameter count of any instruction.
const maxArity = 3

// An Instruction is a decoded opcode together with its parameter modes.
type Instruction struct {
	Op    Opcode
	Modes [maxArity]Mode // only the first Op.Arity() entries are meaningful
}

// Size is the number of memory cells the instruction occupies.
func (insn Instruction) Size() int { return 1 + insn.Op.Arity() }

func (insn Instruction) String() string {
	n := insn.Op.Arity()
	if n <= 0 {
		return insn.Op.String()
	}
	modes := make([]string, n)
	for i := range modes {
		modes[i] = insn.Modes[i].String()
	}
	return insn.Op.String() + " " + strings.Join(modes, ",")
}

// Decode splits an instruction value into its opcode (v mod 100) and the
// modes of its parameters, read from the remaining digits lowest first.
// Absent digits mean position mode. Mode digits beyond the opcode's arity
// are ignored.
func Decode(v int64) (Instruction, error) {
	insn := Instruction{Op: Opcode(v % 100)}
	if !insn.Op.Valid() {
		return insn, ErrInvalidOpcode
	}
	digits := v / 100
	for i := 0; i < insn.Op.Arity(); i++ {
		m := Mode(digits % 10)
		if m != Position && m != Immediate {
			return insn, ErrInvalidMode
		}
		insn.Modes[i] = m
		digits /= 10
	}
	return insn, nil
}

// Resolve returns the value of a source parameter: raw itself in immediate
// mode, or the memory cell at address raw in position mode.
// Destination parameters are never resolved; their raw value is the write
// address whatever their mode digit says.
func Resolve(mem []int64, raw int64, mode Mode) (int64, error) {
	switch mode {
	case Immediate:
		return raw, nil
	case Position:
		if raw < 0 || raw >= int64(len(mem)) {
			return 0, ErrOutOfBounds
		}
		return mem[raw], nil
	}
	return 0, ErrInvalidMode
}
