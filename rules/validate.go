package rules

import (
	"errors"
	"fmt"

	"github.com/reusee/tm/symbols"
)

var (
	ErrAmbiguousRuleTable  = errors.New("ambiguous rule table")
	ErrNoStartState        = errors.New("no start state")
	ErrMultipleStartStates = errors.New("multiple start states")
	ErrNilState            = errors.New("nil state")
)

// Duplicate describes a rule shadowed by an earlier rule with the same key
type Duplicate struct {
	First  int
	Shadow int
	Rule   Rule
}

func (d Duplicate) Error() string {
	return fmt.Sprintf("rule %d (%s %s) is shadowed by rule %d",
		d.Shadow, d.Rule.State.Name(), d.Rule.Read, d.First)
}

func (t *Table) Duplicates() (ret []Duplicate) {
	for i, rule := range t.rules {
		first := t.first[key{rule.State, rule.Read}]
		if first != i {
			ret = append(ret, Duplicate{
				First:  first,
				Shadow: i,
				Rule:   rule,
			})
		}
	}
	return
}

// Validate reports every problem of the table at once. Lookup does not depend on it.
func Validate(t *Table, alphabet symbols.Alphabet) error {
	var errs []error

	for _, dup := range t.Duplicates() {
		errs = append(errs, fmt.Errorf("%w: %w", ErrAmbiguousRuleTable, dup))
	}

	for i, rule := range t.rules {
		if rule.State == nil || rule.Next == nil {
			errs = append(errs, fmt.Errorf("rule %d: %w", i, ErrNilState))
		}
		for _, sym := range rule.Read {
			if err := alphabet.Validate(sym); err != nil {
				errs = append(errs, fmt.Errorf("rule %d read: %w", i, err))
			}
		}
		for _, sym := range rule.Write {
			if err := alphabet.Validate(sym); err != nil {
				errs = append(errs, fmt.Errorf("rule %d write: %w", i, err))
			}
		}
	}

	var starts []string
	for s := range t.States() {
		if s.IsStart() {
			starts = append(starts, s.Name())
		}
	}
	switch {
	case len(starts) == 0 && len(t.rules) > 0:
		errs = append(errs, ErrNoStartState)
	case len(starts) > 1:
		errs = append(errs, fmt.Errorf("%w: %v", ErrMultipleStartStates, starts))
	}

	return errors.Join(errs...)
}
