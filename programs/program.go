package programs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/rules"
	"github.com/reusee/tm/states"
	"github.com/reusee/tm/symbols"
)

var (
	ErrUnknownState = errors.New("unknown state")
	ErrBadArity     = errors.New("bad arity")
)

// Program is a compiled rule table together with its initial configuration
type Program struct {
	Name     string
	Alphabet symbols.Alphabet
	States   *states.Registry
	Table    *rules.Table
	Start    *states.State
	Config   machines.Config
}

func Compile(def Definition) (*Program, error) {
	program := &Program{
		Name:     def.Name,
		Alphabet: symbols.NewAlphabet(symbols.FromStrings(def.Alphabet)...),
		States:   states.NewRegistry(),
	}

	// states
	var starts []string
	for _, s := range def.States {
		var flags states.Flag
		if s.Start {
			flags |= states.Start
		}
		if s.Halting {
			flags |= states.Halting
		}
		state, err := program.States.Define(s.Name, flags)
		if err != nil {
			return nil, err
		}
		if s.Start && !slices.Contains(starts, s.Name) {
			starts = append(starts, s.Name)
			program.Start = state
		}
	}
	switch {
	case len(starts) == 0:
		return nil, rules.ErrNoStartState
	case len(starts) > 1:
		return nil, fmt.Errorf("%w: %v", rules.ErrMultipleStartStates, starts)
	}

	// rules
	rs := make([]rules.Rule, 0, len(def.Rules))
	for i, r := range def.Rules {
		rule, err := program.compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rs = append(rs, rule)
	}
	program.Table = rules.Load(rs)

	// initial configuration
	if len(def.Tapes) > rules.Tapes || len(def.Inputs) > rules.Tapes {
		return nil, fmt.Errorf("%w: at most %d tapes", ErrBadArity, rules.Tapes)
	}
	if len(def.Heads) > rules.Tapes {
		return nil, fmt.Errorf("%w: at most %d heads", ErrBadArity, rules.Tapes)
	}
	config := machines.Config{
		Alphabet: program.Alphabet,
		State:    program.Start,
	}
	for i := range rules.Tapes {
		switch {
		case i < len(def.Tapes) && def.Tapes[i] != nil:
			config.Tapes[i] = symbols.FromStrings(def.Tapes[i])
		case i < len(def.Inputs):
			config.Tapes[i] = symbols.Split(def.Inputs[i])
		}
		if err := program.Alphabet.ValidateAll(config.Tapes[i]); err != nil {
			return nil, fmt.Errorf("tape %d: %w", i+1, err)
		}
	}
	copy(config.Heads[:], def.Heads)
	program.Config = config

	return program, nil
}

func (p *Program) compileRule(def RuleDefinition) (rule rules.Rule, err error) {
	var ok bool
	rule.State, ok = p.States.Lookup(def.State)
	if !ok {
		return rule, fmt.Errorf("%w: %s", ErrUnknownState, def.State)
	}
	rule.Next, ok = p.States.Lookup(def.Next)
	if !ok {
		return rule, fmt.Errorf("%w: %s", ErrUnknownState, def.Next)
	}

	if len(def.Read) != rules.Tapes || len(def.Write) != rules.Tapes || len(def.Moves) != rules.Tapes {
		return rule, fmt.Errorf("%w: read, write and moves need %d elements", ErrBadArity, rules.Tapes)
	}
	for i := range rules.Tapes {
		rule.Read[i] = symbols.Symbol(def.Read[i])
		rule.Write[i] = symbols.Symbol(def.Write[i])
		rule.Moves[i], err = rules.ParseMove(def.Moves[i])
		if err != nil {
			return rule, err
		}
	}
	return rule, nil
}

// Validate reports duplicate keys and foreign symbols. Machines run unvalidated tables too.
func (p *Program) Validate() error {
	return rules.Validate(p.Table, p.Alphabet)
}

func (p *Program) NewMachine() (*machines.Machine, error) {
	return machines.New(p.Table, p.Config)
}

// Restore rebuilds a machine of this program from a snapshot
func (p *Program) Restore(snapshot machines.Snapshot) (*machines.Machine, error) {
	return machines.Restore(p.Table, p.Alphabet, p.States.Lookup, snapshot)
}

// WithInput returns a copy of the program with tape i replaced
func (p *Program) WithInput(i int, syms []symbols.Symbol) (*Program, error) {
	if i < 0 || i >= rules.Tapes {
		return nil, fmt.Errorf("%w: no tape %d", ErrBadArity, i+1)
	}
	if err := p.Alphabet.ValidateAll(syms); err != nil {
		return nil, fmt.Errorf("tape %d: %w", i+1, err)
	}
	ret := *p
	ret.Config.Tapes[i] = slices.Clone(syms)
	return &ret, nil
}
