package intcode

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

const (
	ampSeq0 = "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0"
	ampSeq1 = "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0"
	ampSeq2 = "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0"

	ampLoop0 = "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	ampLoop1 = "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53," +
		"1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10"
)

func TestPermutations(t *testing.T) {
	perms := Permutations([]int64{0, 1, 2, 3, 4})
	if got, want := len(perms), 120; got != want {
		t.Fatalf("got %d permutations; want %d", got, want)
	}
	seen := make(map[[5]int64]bool)
	for _, perm := range perms {
		var key [5]int64
		copy(key[:], perm)
		if seen[key] {
			t.Fatalf("duplicate permutation %v", perm)
		}
		seen[key] = true
		sorted := append([]int64(nil), perm...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		if want := []int64{0, 1, 2, 3, 4}; !reflect.DeepEqual(sorted, want) {
			t.Fatalf("bad permutation %v", perm)
		}
	}

	if got := len(Permutations([]int64{0, 1, 2})); got != 6 {
		t.Errorf("got %d permutations of 3; want 6", got)
	}
	if got := len(Permutations(nil)); got != 1 {
		t.Errorf("got %d permutations of 0; want 1", got)
	}
}

func TestRunSequence(t *testing.T) {
	p := mustParse(t, ampSeq0)
	for _, tt := range []struct {
		phases []int64
		want   int64
	}{
		{[]int64{4, 3, 2, 1, 0}, 43210},
		{[]int64{0, 1, 2, 3, 4}, 1234},
		{[]int64{1, 0, 4, 3, 2}, 10432},
	} {
		got, err := RunSequence(p, tt.phases)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("RunSequence(%v): got %d; want %d", tt.phases, got, tt.want)
		}
	}
}

func TestMaxSignal(t *testing.T) {
	for _, tt := range []struct {
		prog       string
		phases     []int64
		run        func(*Program, []int64) (int64, error)
		want       int64
		wantPhases []int64
	}{
		{ampSeq0, []int64{0, 1, 2, 3, 4}, RunSequence, 43210, []int64{4, 3, 2, 1, 0}},
		{ampSeq1, []int64{0, 1, 2, 3, 4}, RunSequence, 54321, []int64{0, 1, 2, 3, 4}},
		{ampSeq2, []int64{0, 1, 2, 3, 4}, RunSequence, 65210, []int64{1, 0, 4, 3, 2}},
		{ampLoop0, []int64{5, 6, 7, 8, 9}, RunFeedback, 139629729, []int64{9, 8, 7, 6, 5}},
		{ampLoop1, []int64{5, 6, 7, 8, 9}, RunFeedback, 18216, []int64{9, 7, 8, 5, 6}},
	} {
		p := mustParse(t, tt.prog)
		got, gotPhases, err := MaxSignal(p, tt.phases, tt.run)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want || !reflect.DeepEqual(gotPhases, tt.wantPhases) {
			t.Errorf("MaxSignal(%s): got %d with %v; want %d with %v",
				tt.prog, got, gotPhases, tt.want, tt.wantPhases)
		}
		// The search is deterministic.
		again, _, err := MaxSignal(p, tt.phases, tt.run)
		if err != nil || again != got {
			t.Errorf("MaxSignal(%s) not reproducible: %d then %d (%v)", tt.prog, got, again, err)
		}
	}
}

func TestRunSequenceErrors(t *testing.T) {
	_, err := RunSequence(mustParse(t, "3,0,99"), []int64{0, 1})
	if !errors.Is(err, ErrNoOutput) {
		t.Errorf("got %v; want ErrNoOutput", err)
	}
	_, err = RunSequence(mustParse(t, "3,0,3,0,3,0,99"), []int64{0})
	if !errors.Is(err, ErrStarvedInput) {
		t.Errorf("got %v; want ErrStarvedInput", err)
	}
	_, err = RunSequence(mustParse(t, "3,0,3,0,42"), []int64{0})
	if !errors.Is(err, ErrInvalidOpcode) {
		t.Errorf("got %v; want ErrInvalidOpcode", err)
	}
}

// Phase 0 adds one to a single input and halts; any other phase echoes
// inputs forever.
const ampHaltEarly = "3,21,1005,21,14,3,22,101,1,22,22,4,22,99,3,22,4,22,1105,1,14,0,0"

func TestRunFeedbackErrors(t *testing.T) {
	for _, tt := range []struct {
		prog    string
		phases  []int64
		wantErr error
	}{
		{"3,0,99", []int64{0, 0}, ErrNoOutput},
		{"3,0,3,0,3,0,99", []int64{0}, ErrStarvedInput},
		// The first stage halts after one round, so the echo stage is
		// never handed its old signal again.
		{ampHaltEarly, []int64{0, 1}, ErrStarvedInput},
		{"3,0,3,0,42", []int64{0}, ErrInvalidOpcode},
	} {
		_, err := RunFeedback(mustParse(t, tt.prog), tt.phases)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("RunFeedback(%s, %v): got %v; want %v", tt.prog, tt.phases, err, tt.wantErr)
		}
	}
}

func TestRunFeedbackHaltedStage(t *testing.T) {
	// With the halting stage last, its only output ends the loop.
	got, err := RunFeedback(mustParse(t, ampHaltEarly), []int64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("got %d; want 1", got)
	}
}

func TestAmplifiersNewMachine(t *testing.T) {
	var made []*Machine
	amps := Amplifiers{
		NewMachine: func(p *Program) *Machine {
			m := p.NewMachine()
			made = append(made, m)
			return m
		},
	}
	got, err := amps.RunFeedback(mustParse(t, ampLoop0), []int64{9, 8, 7, 6, 5})
	if err != nil {
		t.Fatal(err)
	}
	if got != 139629729 {
		t.Errorf("got %d; want 139629729", got)
	}
	if len(made) != 5 {
		t.Fatalf("got %d machines; want 5", len(made))
	}
	for i, m := range made {
		if m.State() != Halted {
			t.Errorf("amplifier %d: got state %s; want halted", i, m.State())
		}
	}
}
