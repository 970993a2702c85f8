package main

import (
	"log"
	"sync/atomic"

	"github.com/cespare/aoc2019/intcode"
	"golang.org/x/exp/constraints"
)

// executed counts Intcode instructions across all machines made by
// newMachine, for -v.
var executed atomic.Int64

func newMachine(mem []int64) *intcode.Machine {
	m := intcode.NewMachine(mem)
	if traceInsns {
		m.Trace = traceInsn
	}
	return m
}

func traceInsn(ip int, insn intcode.Instruction, params []int64) {
	log.Printf("%6d  %-16s %v", ip, insn, params)
}

func countSteps(m *intcode.Machine) {
	executed.Add(m.Steps())
}

func abs[T constraints.Signed](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
