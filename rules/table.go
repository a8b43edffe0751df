package rules

import (
	"iter"
	"slices"

	"github.com/reusee/tm/states"
)

type key struct {
	state *states.State
	read  Tuple
}

// Table is an ordered, read-only rule sequence. It is safe to share between machines.
type Table struct {
	rules []Rule
	// index of the first rule carrying each key; later duplicates are unreachable
	first map[key]int
}

func Load(rules []Rule) *Table {
	t := &Table{
		rules: slices.Clone(rules),
		first: make(map[key]int, len(rules)),
	}
	for i, rule := range t.rules {
		k := key{rule.State, rule.Read}
		if _, ok := t.first[k]; ok {
			continue
		}
		t.first[k] = i
	}
	return t
}

// Lookup returns the first rule in table order matching state and read
func (t *Table) Lookup(state *states.State, read Tuple) (Rule, bool) {
	i, ok := t.first[key{state, read}]
	if !ok {
		return Rule{}, false
	}
	return t.rules[i], true
}

func (t *Table) Len() int {
	return len(t.rules)
}

func (t *Table) Rule(i int) Rule {
	return t.rules[i]
}

func (t *Table) All() iter.Seq2[int, Rule] {
	return slices.All(t.rules)
}

// States iterates every distinct state mentioned by the table, in first-appearance order
func (t *Table) States() iter.Seq[*states.State] {
	return func(yield func(*states.State) bool) {
		seen := make(map[*states.State]bool)
		for _, rule := range t.rules {
			for _, s := range []*states.State{rule.State, rule.Next} {
				if s == nil || seen[s] {
					continue
				}
				seen[s] = true
				if !yield(s) {
					return
				}
			}
		}
	}
}
