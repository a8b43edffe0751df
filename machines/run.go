package machines

import (
	"fmt"

	"github.com/reusee/tm/states"
)

type Reason uint8

const (
	Halted Reason = iota + 1
	NoMatchingRule
	BudgetExhausted
)

func (r Reason) String() string {
	switch r {
	case Halted:
		return "halted"
	case NoMatchingRule:
		return "no matching rule"
	case BudgetExhausted:
		return "budget exhausted"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

type Result struct {
	State  *states.State
	Steps  int
	Reason Reason
}

func (r Result) String() string {
	return fmt.Sprintf("%s after %d steps in %s", r.Reason, r.Steps, r.State.Name())
}

// Observer is called after every applied step. It must not mutate the machine.
type Observer func(m *Machine, transition Transition)

// Run steps the machine until it halts, finds no rule, or has taken budget steps.
// An error means a rule tried to write a symbol outside a tape's alphabet; the
// machine is left at the configuration before that rule.
func (m *Machine) Run(budget int, observers ...Observer) (Result, error) {
	steps := 0
	for steps < budget && !m.state.IsHalting() {
		from := m.state
		heads := m.heads
		rule, progress, err := m.step()
		if err != nil {
			return Result{
				State: m.state,
				Steps: steps,
			}, err
		}
		if progress == NoProgress {
			return Result{
				State:  m.state,
				Steps:  steps,
				Reason: NoMatchingRule,
			}, nil
		}
		steps++
		for _, observe := range observers {
			observe(m, Transition{
				Step:  steps,
				From:  from,
				Heads: heads,
				Rule:  rule,
			})
		}
	}

	reason := BudgetExhausted
	if m.state.IsHalting() {
		reason = Halted
	}
	return Result{
		State:  m.state,
		Steps:  steps,
		Reason: reason,
	}, nil
}
