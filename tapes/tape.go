package tapes

import (
	"slices"

	"github.com/reusee/tm/symbols"
)

// Tape is a bi-infinite symbol sequence. Only the window [origin, origin+len(cells))
// is stored, every other position holds symbols.Blank.
type Tape struct {
	alphabet symbols.Alphabet
	cells    []symbols.Symbol
	// logical index of cells[0]
	origin int
}

// New returns a tape holding initial at logical positions 0..len(initial)-1
func New(alphabet symbols.Alphabet, initial []symbols.Symbol) (*Tape, error) {
	return NewAt(alphabet, 0, initial)
}

// NewAt returns a tape holding initial starting at logical position origin
func NewAt(alphabet symbols.Alphabet, origin int, initial []symbols.Symbol) (*Tape, error) {
	if err := alphabet.ValidateAll(initial); err != nil {
		return nil, err
	}
	return &Tape{
		alphabet: alphabet,
		cells:    slices.Clone(initial),
		origin:   origin,
	}, nil
}

func (t *Tape) Alphabet() symbols.Alphabet {
	return t.alphabet
}

func (t *Tape) Read(pos int) symbols.Symbol {
	i := pos - t.origin
	if i < 0 || i >= len(t.cells) {
		return symbols.Blank
	}
	return t.cells[i]
}

func (t *Tape) Write(pos int, sym symbols.Symbol) error {
	if err := t.alphabet.Validate(sym); err != nil {
		return err
	}
	t.grow(pos)
	t.cells[pos-t.origin] = sym
	return nil
}

// grow materializes pos, keeping the logical index of every existing cell
func (t *Tape) grow(pos int) {
	if len(t.cells) == 0 {
		t.cells = []symbols.Symbol{symbols.Blank}
		t.origin = pos
		return
	}

	if pos < t.origin {
		missing := t.origin - pos
		cells := make([]symbols.Symbol, missing+len(t.cells))
		for i := range missing {
			cells[i] = symbols.Blank
		}
		copy(cells[missing:], t.cells)
		t.cells = cells
		t.origin = pos
	}

	if end := t.origin + len(t.cells); pos >= end {
		for range pos - end + 1 {
			t.cells = append(t.cells, symbols.Blank)
		}
	}
}

// Bounds returns the lowest and highest materialized positions
func (t *Tape) Bounds() (low, high int, ok bool) {
	if len(t.cells) == 0 {
		return 0, 0, false
	}
	return t.origin, t.origin + len(t.cells) - 1, true
}

func (t *Tape) Origin() int {
	return t.origin
}

func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells returns a copy of the materialized window
func (t *Tape) Cells() []symbols.Symbol {
	return slices.Clone(t.cells)
}

func (t *Tape) Clone() *Tape {
	return &Tape{
		alphabet: t.alphabet,
		cells:    slices.Clone(t.cells),
		origin:   t.origin,
	}
}

func (t *Tape) String() string {
	return symbols.Join(t.cells)
}
