package machines

import (
	"errors"
	"fmt"

	"github.com/reusee/tm/rules"
	"github.com/reusee/tm/states"
	"github.com/reusee/tm/symbols"
	"github.com/reusee/tm/tapes"
)

var (
	ErrNilTable = errors.New("nil rule table")
	ErrNilState = errors.New("nil state")
	// a snapshot's state flags differ from the state they resolve to
	ErrStateMismatch = errors.New("state mismatch")
)

// Config is an initial configuration
type Config struct {
	Alphabet symbols.Alphabet
	Tapes    [rules.Tapes][]symbols.Symbol
	Heads    [rules.Tapes]int
	State    *states.State
}

// Machine is one run of a rule table. Only Step mutates it.
type Machine struct {
	table *rules.Table
	tapes [rules.Tapes]*tapes.Tape
	heads [rules.Tapes]int
	state *states.State
}

func New(table *rules.Table, config Config) (*Machine, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	if config.State == nil {
		return nil, ErrNilState
	}
	m := &Machine{
		table: table,
		heads: config.Heads,
		state: config.State,
	}
	for i, initial := range config.Tapes {
		tape, err := tapes.New(config.Alphabet, initial)
		if err != nil {
			return nil, fmt.Errorf("tape %d: %w", i+1, err)
		}
		m.tapes[i] = tape
	}
	return m, nil
}

func (m *Machine) Table() *rules.Table {
	return m.table
}

func (m *Machine) State() *states.State {
	return m.state
}

func (m *Machine) Head(i int) int {
	return m.heads[i]
}

func (m *Machine) Heads() [rules.Tapes]int {
	return m.heads
}

// Tape returns a copy of tape i
func (m *Machine) Tape(i int) *tapes.Tape {
	return m.tapes[i].Clone()
}

// Scan returns the symbols under the heads
func (m *Machine) Scan() (ret rules.Tuple) {
	for i, tape := range m.tapes {
		ret[i] = tape.Read(m.heads[i])
	}
	return
}
