package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/cespare/aoc2019/intcode"
)

func init() {
	register("2", day2)
}

func day2(_ []string) {
	p, err := cfg.program(2)
	if err != nil {
		log.Fatal(err)
	}
	noun, err := cfg.intValue("2", "noun", 12)
	if err != nil {
		log.Fatal(err)
	}
	verb, err := cfg.intValue("2", "verb", 2)
	if err != nil {
		log.Fatal(err)
	}
	target, err := cfg.intValue("2", "target", 19690720)
	if err != nil {
		log.Fatal(err)
	}

	result, err := runNounVerb(p, noun, verb)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result)

	noun, verb, err = findNounVerb(p, target)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(100*noun + verb)
}

var errShortProgram = errors.New("program too short to hold a noun and verb")

// runNounVerb runs p with memory positions 1 and 2 replaced by noun and
// verb and returns the value left at position 0.
func runNounVerb(p *intcode.Program, noun, verb int64) (int64, error) {
	mem := p.Snapshot()
	if len(mem) < 3 {
		return 0, errShortProgram
	}
	mem[1], mem[2] = noun, verb
	m := newMachine(mem)
	defer countSteps(m)
	_, result, err := m.Run()
	return result, err
}

func findNounVerb(p *intcode.Program, target int64) (noun, verb int64, err error) {
	for noun = 0; noun < 100; noun++ {
		for verb = 0; verb < 100; verb++ {
			result, err := runNounVerb(p, noun, verb)
			if err == errShortProgram {
				return 0, 0, err
			}
			// Many inputs make the program fault; those just don't match.
			if err == nil && result == target {
				return noun, verb, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("no noun and verb produce %d", target)
}
