package machines

import (
	"fmt"

	"github.com/reusee/tm/rules"
	"github.com/reusee/tm/states"
)

type Progress bool

const (
	NoProgress Progress = false
	Progressed Progress = true
)

// Transition records one applied step
type Transition struct {
	// 1-based step number within the run
	Step  int
	From  *states.State
	Heads [rules.Tapes]int
	Rule  rules.Rule
}

// Step applies at most one rule. A halting state or a missing rule leaves the machine untouched.
func (m *Machine) Step() (Progress, error) {
	_, progress, err := m.step()
	return progress, err
}

func (m *Machine) step() (rules.Rule, Progress, error) {
	if m.state.IsHalting() {
		return rules.Rule{}, NoProgress, nil
	}

	rule, ok := m.table.Lookup(m.state, m.Scan())
	if !ok {
		return rules.Rule{}, NoProgress, nil
	}

	// check every write before touching any tape
	for i, sym := range rule.Write {
		if err := m.tapes[i].Alphabet().Validate(sym); err != nil {
			return rule, NoProgress, fmt.Errorf("rule %s, tape %d: %w", rule, i+1, err)
		}
	}

	// write at the pre-move positions, even when unchanged
	for i, sym := range rule.Write {
		if err := m.tapes[i].Write(m.heads[i], sym); err != nil {
			panic(err) // validated above
		}
	}

	for i, move := range rule.Moves {
		m.heads[i] += move.Delta()
	}

	m.state = rule.Next
	return rule, Progressed, nil
}
