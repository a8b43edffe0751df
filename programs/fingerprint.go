package programs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/reusee/tm/rules"
)

// Fingerprint identifies the rule table together with the initial configuration.
// Programs differing in any rule, state flag, alphabet symbol, initial tape or head have different fingerprints.
func (p *Program) Fingerprint() string {
	h := sha256.New()
	field := func(format string, args ...any) {
		fmt.Fprintf(h, format, args...)
		h.Write([]byte{0})
	}

	field("alphabet %q", p.Alphabet.Symbols())
	for state := range p.States.All() {
		field("state %q %d", state.Name(), state.Flags())
	}
	field("start %q", p.Start.Name())
	for _, rule := range p.Table.All() {
		field("rule %q %q %q %q %q",
			rule.State.Name(), rule.Read[:], rule.Next.Name(), rule.Write[:], rule.Moves.String())
	}
	for i := range rules.Tapes {
		field("tape %d %q head %d", i, p.Config.Tapes[i], p.Config.Heads[i])
	}

	return hex.EncodeToString(h.Sum(nil))
}
