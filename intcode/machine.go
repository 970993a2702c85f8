package intcode

import "fmt"

// State is the execution state of a Machine.
type State int

const (
	Running State = iota
	AwaitingInput
	Halted
	Faulted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting input"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Status is the outcome of a single Step.
type Status int

const (
	// Continue means an instruction executed and the machine can step again.
	Continue Status = iota
	// NeedsInput means the current instruction is an input and the queue is
	// empty. The machine did not advance; supply input and step again.
	NeedsInput
	// Output means an output instruction executed; the value accompanies
	// the status.
	Output
	// Halt means the machine executed (or had previously executed) a halt.
	Halt
	// Fault means the machine hit a fatal error; the error is a *FaultError.
	Fault
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case NeedsInput:
		return "needs input"
	case Output:
		return "output"
	case Halt:
		return "halt"
	case Fault:
		return "fault"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// A Machine executes an Intcode program. It exclusively owns its working
// memory. A Machine is not safe for concurrent use.
type Machine struct {
	mem   []int64
	ip    int
	input []int64
	state State
	fault *FaultError
	steps int64

	// Trace, if non-nil, is called before each instruction executes with
	// the instruction pointer, the decoded instruction, and its raw
	// parameters. The params slice aliases working memory and must not be
	// retained or modified.
	Trace func(ip int, insn Instruction, params []int64)
}

// NewMachine returns a machine that runs on mem, starting at address 0.
// The machine takes ownership of mem.
func NewMachine(mem []int64) *Machine {
	return &Machine{mem: mem}
}

// Input appends values to the machine's input queue. Input instructions
// consume the queue in FIFO order.
func (m *Machine) Input(vals ...int64) {
	m.input = append(m.input, vals...)
}

// State returns the machine's current state.
func (m *Machine) State() State { return m.state }

// IP returns the current instruction pointer.
func (m *Machine) IP() int { return m.ip }

// Steps returns the number of instructions executed so far.
func (m *Machine) Steps() int64 { return m.steps }

// Memory returns a copy of the working memory.
func (m *Machine) Memory() []int64 {
	mem := make([]int64, len(m.mem))
	copy(mem, m.mem)
	return mem
}

// Result returns the value at memory position 0, which is conventionally
// the result of a non-interactive program.
func (m *Machine) Result() int64 {
	if len(m.mem) == 0 {
		return 0
	}
	return m.mem[0]
}

func (m *Machine) fail(ip int, v int64, err error) (Status, int64, error) {
	m.state = Faulted
	m.fault = &FaultError{IP: ip, Value: v, Err: err}
	return Fault, 0, m.fault
}

// Step executes a single instruction.
//
// Once a machine halts, Step returns Halt without executing anything.
// Once it faults, Step returns the same Fault.
func (m *Machine) Step() (Status, int64, error) {
	switch m.state {
	case Halted:
		return Halt, 0, nil
	case Faulted:
		return Fault, 0, m.fault
	}

	ip := m.ip
	if ip < 0 || ip >= len(m.mem) {
		return m.fail(ip, int64(ip), ErrOutOfBounds)
	}
	v := m.mem[ip]
	insn, err := Decode(v)
	if err != nil {
		return m.fail(ip, v, err)
	}
	end := ip + insn.Size()
	if end > len(m.mem) {
		return m.fail(ip, v, ErrOutOfBounds)
	}
	params := m.mem[ip+1 : end]

	if insn.Op == OpInput && len(m.input) == 0 {
		m.state = AwaitingInput
		return NeedsInput, 0, nil
	}
	m.state = Running
	m.steps++
	if m.Trace != nil {
		m.Trace(ip, insn, params)
	}

	// Both sources of a two-source instruction.
	var a, b int64
	switch insn.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals, OpJumpIfTrue, OpJumpIfFalse:
		if a, err = Resolve(m.mem, params[0], insn.Modes[0]); err != nil {
			return m.fail(ip, params[0], err)
		}
		if b, err = Resolve(m.mem, params[1], insn.Modes[1]); err != nil {
			return m.fail(ip, params[1], err)
		}
	}

	switch insn.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		var r int64
		switch insn.Op {
		case OpAdd:
			r = a + b
		case OpMul:
			r = a * b
		case OpLessThan:
			r = boolInt(a < b)
		case OpEquals:
			r = boolInt(a == b)
		}
		if err := m.store(params[2], r); err != nil {
			return m.fail(ip, params[2], err)
		}
		m.ip = end
		return Continue, 0, nil

	case OpInput:
		if err := m.store(params[0], m.input[0]); err != nil {
			return m.fail(ip, params[0], err)
		}
		m.input = m.input[1:]
		m.ip = end
		return Continue, 0, nil

	case OpOutput:
		out, err := Resolve(m.mem, params[0], insn.Modes[0])
		if err != nil {
			return m.fail(ip, params[0], err)
		}
		m.ip = end
		return Output, out, nil

	case OpJumpIfTrue, OpJumpIfFalse:
		if (a != 0) != (insn.Op == OpJumpIfTrue) {
			m.ip = end
			return Continue, 0, nil
		}
		if b < 0 || b >= int64(len(m.mem)) {
			return m.fail(ip, b, ErrOutOfBounds)
		}
		m.ip = int(b)
		return Continue, 0, nil

	case OpHalt:
		m.state = Halted
		return Halt, 0, nil
	}
	panic("unreachable")
}

// store writes v to the destination address addr. Destinations are always
// addresses, never immediate values.
func (m *Machine) store(addr, v int64) error {
	if addr < 0 || addr >= int64(len(m.mem)) {
		return ErrOutOfBounds
	}
	m.mem[addr] = v
	return nil
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Run queues inputs and executes until the machine halts or faults. It
// returns every output in order and the final value at memory position 0.
//
// Run is the single-shot mode of execution: reaching an input instruction
// with an empty queue is an error wrapping ErrStarvedInput.
func (m *Machine) Run(inputs ...int64) (outputs []int64, result int64, err error) {
	m.Input(inputs...)
	for {
		st, v, err := m.Step()
		switch st {
		case Output:
			outputs = append(outputs, v)
		case NeedsInput:
			return outputs, m.Result(), fmt.Errorf("intcode: %w at ip %d", ErrStarvedInput, m.ip)
		case Halt:
			return outputs, m.Result(), nil
		case Fault:
			return outputs, m.Result(), err
		}
	}
}

// RunUntilOutput queues inputs and executes until the machine emits an
// output, halts, needs input, or faults. The returned status is Output
// (with its value), Halt, NeedsInput, or Fault (with a *FaultError error).
//
// The machine keeps its memory, instruction pointer, and remaining input
// between calls, so a caller can resume it after supplying more input.
func (m *Machine) RunUntilOutput(inputs ...int64) (Status, int64, error) {
	m.Input(inputs...)
	for {
		st, v, err := m.Step()
		if st != Continue {
			return st, v, err
		}
	}
}
