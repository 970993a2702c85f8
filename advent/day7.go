package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/cespare/aoc2019/intcode"
	"github.com/cespare/wait"
)

func init() {
	register("7", day7)
}

func day7(args []string) {
	def, err := cfg.intValue("7", "workers", int64(runtime.GOMAXPROCS(0)))
	if err != nil {
		log.Fatal(err)
	}
	fs := flag.NewFlagSet("7", flag.ExitOnError)
	workers := fs.Int("workers", int(def), "number of phase settings to try concurrently")
	fs.Parse(args)

	p, err := cfg.program(7)
	if err != nil {
		log.Fatal(err)
	}
	for _, part := range []struct {
		phases []int64
		chain  func(intcode.Amplifiers, *intcode.Program, []int64) (int64, error)
	}{
		{[]int64{0, 1, 2, 3, 4}, intcode.Amplifiers.RunSequence},
		{[]int64{5, 6, 7, 8, 9}, intcode.Amplifiers.RunFeedback},
	} {
		signal, phases, err := maxSignal(p, part.phases, counted(part.chain), *workers)
		if err != nil {
			log.Fatal(err)
		}
		if verbose {
			log.Printf("best phase setting: %v", phases)
		}
		fmt.Println(signal)
	}
}

// counted runs chain with machines from newMachine, so -trace applies to
// the amplifiers and their instructions count toward -v's total.
func counted(chain func(intcode.Amplifiers, *intcode.Program, []int64) (int64, error)) func(*intcode.Program, []int64) (int64, error) {
	return func(p *intcode.Program, phases []int64) (int64, error) {
		var ms []*intcode.Machine
		amps := intcode.Amplifiers{
			NewMachine: func(p *intcode.Program) *intcode.Machine {
				m := newMachine(p.Snapshot())
				ms = append(ms, m)
				return m
			},
		}
		defer func() {
			for _, m := range ms {
				countSteps(m)
			}
		}()
		return chain(amps, p, phases)
	}
}

// maxSignal is intcode.MaxSignal with the permutations spread over
// workers goroutines. Each amplifier chain still runs sequentially.
func maxSignal(p *intcode.Program, phases []int64, run func(*intcode.Program, []int64) (int64, error), workers int) (int64, []int64, error) {
	if workers <= 1 {
		return intcode.MaxSignal(p, phases, run)
	}
	perms := intcode.Permutations(phases)
	signals := make([]int64, len(perms))
	work := make(chan int)
	var wg wait.Group
	for i := 0; i < workers; i++ {
		wg.Go(func(quit <-chan struct{}) error {
			for {
				select {
				case j, ok := <-work:
					if !ok {
						return nil
					}
					signal, err := run(p, perms[j])
					if err != nil {
						return fmt.Errorf("phases %v: %w", perms[j], err)
					}
					signals[j] = signal
				case <-quit:
					return nil
				}
			}
		})
	}
	wg.Go(func(quit <-chan struct{}) error {
		for j := range perms {
			select {
			case work <- j:
			case <-quit:
				return nil
			}
		}
		close(work)
		return nil
	})
	if err := wg.Wait(); err != nil {
		return 0, nil, err
	}

	best := 0
	for j, signal := range signals {
		if signal > signals[best] {
			best = j
		}
	}
	return signals[best], perms[best], nil
}
