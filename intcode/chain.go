package intcode

import "fmt"

// Amplifiers controls how amplifier chains build their stages.
type Amplifiers struct {
	// NewMachine returns the machine for one stage. If nil,
	// (*Program).NewMachine is used.
	NewMachine func(p *Program) *Machine
}

func (a Amplifiers) newMachine(p *Program) *Machine {
	if a.NewMachine == nil {
		return p.NewMachine()
	}
	return a.NewMachine(p)
}

// RunSequence runs an amplifier chain: one fresh machine per phase, in
// order. Each stage receives its phase and then the previous stage's
// output signal; the first stage receives signal 0. It returns the last
// stage's output.
func RunSequence(p *Program, phases []int64) (int64, error) {
	return Amplifiers{}.RunSequence(p, phases)
}

// RunFeedback is like Amplifiers.RunFeedback with default machines.
func RunFeedback(p *Program, phases []int64) (int64, error) {
	return Amplifiers{}.RunFeedback(p, phases)
}

// RunSequence is like the package-level RunSequence, building each
// stage with a.NewMachine.
func (a Amplifiers) RunSequence(p *Program, phases []int64) (int64, error) {
	var signal int64
	for i, phase := range phases {
		m := a.newMachine(p)
		st, v, err := m.RunUntilOutput(phase, signal)
		switch st {
		case Output:
			signal = v
		case Halt:
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
		case NeedsInput:
			return 0, fmt.Errorf("amplifier %d: %w at ip %d", i, ErrStarvedInput, m.IP())
		default:
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
	}
	return signal, nil
}

// RunFeedback runs an amplifier chain in a feedback loop: the last stage's
// output goes back to the first stage, and the stages are resumed in order
// until the last stage halts. A stage only receives a signal when the stage
// before it emitted one; a stage that halts passes nothing on. It returns
// the last signal emitted by the last stage.
func (a Amplifiers) RunFeedback(p *Program, phases []int64) (int64, error) {
	if len(phases) == 0 {
		return 0, nil
	}
	ms := make([]*Machine, len(phases))
	for i, phase := range phases {
		ms[i] = a.newMachine(p)
		ms[i].Input(phase)
	}
	signal, pending := int64(0), true
	var last int64
	var emitted bool
	for {
		for i, m := range ms {
			var in []int64
			if pending {
				in = append(in, signal)
			}
			st, v, err := m.RunUntilOutput(in...)
			switch st {
			case Output:
				signal, pending = v, true
				if i == len(ms)-1 {
					last = v
					emitted = true
				}
			case Halt:
				pending = false
				if i == len(ms)-1 {
					if !emitted {
						return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoOutput)
					}
					return last, nil
				}
			case NeedsInput:
				// Nothing upstream can feed this stage.
				return 0, fmt.Errorf("amplifier %d: %w at ip %d", i, ErrStarvedInput, m.IP())
			default:
				return 0, fmt.Errorf("amplifier %d: %w", i, err)
			}
		}
	}
}

// Permutations returns every ordering of vals. The result has len(vals)!
// entries, each an independent slice.
func Permutations(vals []int64) [][]int64 {
	var perms [][]int64
	s := make([]int64, len(vals))
	copy(s, vals)
	var permute func(k int)
	permute = func(k int) {
		if k >= len(s)-1 {
			perm := make([]int64, len(s))
			copy(perm, s)
			perms = append(perms, perm)
			return
		}
		for i := k; i < len(s); i++ {
			s[k], s[i] = s[i], s[k]
			permute(k + 1)
			s[k], s[i] = s[i], s[k]
		}
	}
	permute(0)
	return perms
}

// MaxSignal tries run (RunSequence or RunFeedback) on every permutation of
// phases and returns the highest signal along with the phase order that
// produced it. Ties go to the first permutation in Permutations order.
func MaxSignal(p *Program, phases []int64, run func(*Program, []int64) (int64, error)) (int64, []int64, error) {
	var best int64
	var bestPhases []int64
	for _, perm := range Permutations(phases) {
		signal, err := run(p, perm)
		if err != nil {
			return 0, nil, fmt.Errorf("phases %v: %w", perm, err)
		}
		if bestPhases == nil || signal > best {
			best = signal
			bestPhases = perm
		}
	}
	return best, bestPhases, nil
}
