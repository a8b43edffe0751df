package debugs

import (
	"github.com/reusee/tm/machines"
	"go.starlark.net/starlark"
)

// MachineGlobals exposes a finished run to the tap REPL.
// read(tape, pos) returns the symbol at a logical position of tape 1, 2 or 3,
// rule(i) formats rule i of the table.
func MachineGlobals(m *machines.Machine, result machines.Result) map[string]any {
	snapshot := m.Snapshot()
	table := m.Table()

	read := starlark.NewBuiltin("read", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var tape, pos int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &tape, &pos); err != nil {
			return nil, err
		}
		if tape < 1 || tape > len(snapshot.Tapes) {
			return starlark.None, nil
		}
		return starlark.String(snapshot.Tapes[tape-1].Read(pos)), nil
	})

	return map[string]any{
		"snapshot": snapshot,
		"state":    result.State.Name(),
		"steps":    result.Steps,
		"reason":   result.Reason.String(),
		"rules":    table.Len(),
		"read":     read,
		"rule": func(i int) string {
			if i < 0 || i >= table.Len() {
				return ""
			}
			return table.Rule(i).String()
		},
	}
}
