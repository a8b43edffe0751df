package machines

import (
	"fmt"

	"github.com/reusee/tm/rules"
	"github.com/reusee/tm/states"
	"github.com/reusee/tm/symbols"
	"github.com/reusee/tm/tapes"
)

// TapeView is the materialized window of a tape. Cells[i] is at logical position Origin+i.
type TapeView struct {
	Origin int              `json:"origin"`
	Cells  []symbols.Symbol `json:"cells"`
}

func (v TapeView) Read(pos int) symbols.Symbol {
	i := pos - v.Origin
	if i < 0 || i >= len(v.Cells) {
		return symbols.Blank
	}
	return v.Cells[i]
}

// Snapshot is a detached copy of a machine configuration
type Snapshot struct {
	State   string                `json:"state"`
	Start   bool                  `json:"start,omitempty"`
	Halting bool                  `json:"halting,omitempty"`
	Tapes   [rules.Tapes]TapeView `json:"tapes"`
	Heads   [rules.Tapes]int      `json:"heads"`
}

func (m *Machine) Snapshot() Snapshot {
	snapshot := Snapshot{
		State:   m.state.Name(),
		Start:   m.state.IsStart(),
		Halting: m.state.IsHalting(),
		Heads:   m.heads,
	}
	for i, tape := range m.tapes {
		snapshot.Tapes[i] = TapeView{
			Origin: tape.Origin(),
			Cells:  tape.Cells(),
		}
	}
	return snapshot
}

// Restore rebuilds a machine from a snapshot. lookup resolves the snapshot's
// state name to the state identity used by table, whose flags must match the snapshot.
func Restore(
	table *rules.Table,
	alphabet symbols.Alphabet,
	lookup func(name string) (*states.State, bool),
	snapshot Snapshot,
) (*Machine, error) {
	if table == nil {
		return nil, ErrNilTable
	}
	state, ok := lookup(snapshot.State)
	if !ok {
		return nil, fmt.Errorf("%w: unknown state %s", ErrNilState, snapshot.State)
	}
	if state.IsStart() != snapshot.Start || state.IsHalting() != snapshot.Halting {
		return nil, fmt.Errorf("%w: %s is start=%v halting=%v, snapshot has start=%v halting=%v",
			ErrStateMismatch, snapshot.State,
			state.IsStart(), state.IsHalting(),
			snapshot.Start, snapshot.Halting,
		)
	}
	m := &Machine{
		table: table,
		heads: snapshot.Heads,
		state: state,
	}
	for i, view := range snapshot.Tapes {
		tape, err := tapes.NewAt(alphabet, view.Origin, view.Cells)
		if err != nil {
			return nil, fmt.Errorf("tape %d: %w", i+1, err)
		}
		m.tapes[i] = tape
	}
	return m, nil
}
