package symbols

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Symbol is an atomic tape value
type Symbol string

// Blank is held by every cell that was never written
const Blank Symbol = "_"

var ErrInvalidSymbol = errors.New("invalid symbol")

// Alphabet is an immutable set of symbols. It always contains Blank.
type Alphabet struct {
	set map[Symbol]struct{}
}

func NewAlphabet(syms ...Symbol) Alphabet {
	set := make(map[Symbol]struct{}, len(syms)+1)
	set[Blank] = struct{}{}
	for _, sym := range syms {
		set[sym] = struct{}{}
	}
	return Alphabet{
		set: set,
	}
}

func (a Alphabet) Contains(sym Symbol) bool {
	if sym == Blank {
		return true
	}
	_, ok := a.set[sym]
	return ok
}

func (a Alphabet) Validate(sym Symbol) error {
	if !a.Contains(sym) {
		return fmt.Errorf("%w: %q not in %s", ErrInvalidSymbol, sym, a)
	}
	return nil
}

func (a Alphabet) ValidateAll(syms []Symbol) error {
	for i, sym := range syms {
		if err := a.Validate(sym); err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
	}
	return nil
}

// Symbols returns the members in sorted order
func (a Alphabet) Symbols() []Symbol {
	ret := make([]Symbol, 0, len(a.set)+1)
	ret = append(ret, Blank)
	for sym := range a.set {
		if sym == Blank {
			continue
		}
		ret = append(ret, sym)
	}
	slices.Sort(ret[1:])
	return ret
}

func (a Alphabet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sym := range a.Symbols() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(string(sym))
	}
	b.WriteString("}")
	return b.String()
}

func FromStrings(strs []string) []Symbol {
	ret := make([]Symbol, len(strs))
	for i, str := range strs {
		ret[i] = Symbol(str)
	}
	return ret
}

// Split turns a string of single-rune symbols into a symbol sequence
func Split(str string) []Symbol {
	var ret []Symbol
	for _, r := range str {
		ret = append(ret, Symbol(string(r)))
	}
	return ret
}

func Join(syms []Symbol) string {
	var b strings.Builder
	for _, sym := range syms {
		b.WriteString(string(sym))
	}
	return b.String()
}
