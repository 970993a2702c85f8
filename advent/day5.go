package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/cespare/aoc2019/intcode"
)

func init() {
	register("5", day5)
}

func day5(_ []string) {
	p, err := cfg.program(5)
	if err != nil {
		log.Fatal(err)
	}
	for _, key := range []struct {
		name string
		def  int64
	}{
		{"input1", 1}, // air conditioner
		{"input2", 5}, // thermal radiator controller
	} {
		input, err := cfg.intValue("5", key.name, key.def)
		if err != nil {
			log.Fatal(err)
		}
		code, err := diagnostic(p, input)
		if err != nil {
			log.Fatalf("system %d: %s", input, err)
		}
		fmt.Println(code)
	}
}

// diagnostic runs the test program for a system ID. Every output but the
// last is a test result that must be 0; the last is the diagnostic code.
func diagnostic(p *intcode.Program, system int64) (int64, error) {
	m := newMachine(p.Snapshot())
	defer countSteps(m)
	outputs, _, err := m.Run(system)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 {
		return 0, errors.New("no diagnostic code")
	}
	last := len(outputs) - 1
	for i, out := range outputs[:last] {
		if out != 0 {
			return 0, fmt.Errorf("test %d failed with output %d", i, out)
		}
	}
	return outputs[last], nil
}
