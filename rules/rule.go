package rules

import (
	"fmt"
	"strings"

	"github.com/reusee/tm/states"
	"github.com/reusee/tm/symbols"
)

// Tapes is the number of tapes every machine has
const Tapes = 3

type Tuple [Tapes]symbols.Symbol

type Moves [Tapes]Move

type Rule struct {
	State *states.State
	Read  Tuple
	Next  *states.State
	Write Tuple
	Moves Moves
}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, sym := range t {
		parts[i] = string(sym)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (m Moves) String() string {
	parts := make([]string, len(m))
	for i, move := range m {
		parts[i] = move.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s | read=%s write=%s ops=%s",
		r.State.Name(),
		r.Next.Name(),
		r.Read,
		r.Write,
		r.Moves,
	)
}
