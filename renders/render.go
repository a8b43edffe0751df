package renders

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/tm/machines"
)

const cellWidth = 3

func cell(str string) string {
	n := len([]rune(str))
	if n >= cellWidth {
		return str
	}
	left := (cellWidth - n) / 2
	return strings.Repeat(" ", left) + str + strings.Repeat(" ", cellWidth-n-left)
}

// Tape renders the window of a tape in fixed-width cells with a caret under the head.
// A head outside the window is drawn at the nearest edge.
func Tape(view machines.TapeView, head int, label string) string {
	if len(view.Cells) == 0 {
		return fmt.Sprintf("%s: (empty)  (head=%d)", label, head)
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(": ")
	for _, sym := range view.Cells {
		b.WriteString(cell(string(sym)))
	}

	idx := head - view.Origin
	idx = max(idx, 0)
	idx = min(idx, len(view.Cells)-1)
	caret := idx*cellWidth + cellWidth/2

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(label)+2+caret))
	b.WriteString(`/\`)
	fmt.Fprintf(&b, "  (head=%d, origin=%d)", head, view.Origin)
	return b.String()
}

func Snapshot(w io.Writer, snapshot machines.Snapshot) error {
	if _, err := fmt.Fprintf(w, "state: %s\n", snapshot.State); err != nil {
		return err
	}
	for i, view := range snapshot.Tapes {
		label := fmt.Sprintf("tape%d", i+1)
		if _, err := fmt.Fprintln(w, Tape(view, snapshot.Heads[i], label)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "heads: %v\n", snapshot.Heads)
	return err
}

func Result(w io.Writer, result machines.Result) error {
	_, err := fmt.Fprintf(w, "end state: %s (steps=%d, %s)\n",
		result.State.Name(), result.Steps, result.Reason)
	return err
}

// Observer prints every applied step followed by the resulting configuration
func Observer(w io.Writer) machines.Observer {
	return func(m *machines.Machine, transition machines.Transition) {
		fmt.Fprintf(w, "\nstep %d: %s\n", transition.Step, transition.Rule)
		Snapshot(w, m.Snapshot())
	}
}
