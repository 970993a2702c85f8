// Command intcode runs an Intcode program.
//
// Outputs are printed one per line. When the program asks for input beyond
// what -i supplied, values are read from stdin: with a prompt if stdin is
// a terminal, or as comma- or space-separated integers otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/aoc2019/intcode"
	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
)

func main() {
	log.SetFlags(0)
	inputFlag := flag.String("i", "", "comma-separated initial input values")
	trace := flag.Bool("trace", false, "log each instruction as it executes")
	dump := flag.Bool("dump", false, "print working memory after the program halts")
	stats := flag.Bool("stats", false, "print the number of instructions executed")
	amplify := flag.String("amplify", "", "comma-separated phases: run the program as an amplifier chain and print the best signal over all phase orders")
	feedback := flag.Bool("feedback", false, "with -amplify, wire the amplifiers in a feedback loop")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] program.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	p, err := loadProgram(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *amplify != "" {
		phases, err := parseInts(*amplify)
		if err != nil {
			log.Fatalf("bad -amplify: %s", err)
		}
		chain := intcode.RunSequence
		if *feedback {
			chain = intcode.RunFeedback
		}
		signal, order, err := intcode.MaxSignal(p, phases, chain)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(signal)
		log.Printf("phases: %v", order)
		return
	}

	inputs, err := parseInts(*inputFlag)
	if err != nil {
		log.Fatalf("bad -i: %s", err)
	}
	m := p.NewMachine()
	m.Input(inputs...)
	if *trace {
		m.Trace = func(ip int, insn intcode.Instruction, params []int64) {
			log.Printf("%6d  %-16s %v", ip, insn, params)
		}
	}

	src, err := newInputSource(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()
	if err := run(m, src, os.Stdout); err != nil {
		log.Fatal(err)
	}

	if *stats {
		log.Printf("%s instructions executed", humanize.Comma(m.Steps()))
	}
	if *dump {
		pretty.Println(m.Memory())
	}
}

func loadProgram(name string) (*intcode.Program, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return intcode.Load(f)
}

// run drives m until it halts, asking src for input whenever m needs it.
func run(m *intcode.Machine, src inputSource, w io.Writer) error {
	for {
		st, v, err := m.RunUntilOutput()
		switch st {
		case intcode.Output:
			fmt.Fprintln(w, v)
		case intcode.NeedsInput:
			n, err := src.next()
			if err == io.EOF {
				return fmt.Errorf("program needs input at ip %d but input is exhausted", m.IP())
			}
			if err != nil {
				return err
			}
			m.Input(n)
		case intcode.Halt:
			return nil
		default:
			return err
		}
	}
}

// parseInts parses a comma- or space-separated list of integers.
func parseInts(s string) ([]int64, error) {
	var ns []int64
	for _, field := range splitInts(s) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, nil
}

func splitInts(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
