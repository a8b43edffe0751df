package programs

// Definition is the decoded form of a program file.
// Tapes holds explicit tape contents, one symbol per element. Inputs holds tape
// contents as strings of single-rune symbols and is used where Tapes has no entry.
type Definition struct {
	Name     string            `json:"name,omitempty" yaml:"name"`
	Alphabet []string          `json:"alphabet" yaml:"alphabet"`
	States   []StateDefinition `json:"states" yaml:"states"`
	Rules    []RuleDefinition  `json:"rules" yaml:"rules"`
	Tapes    [][]string        `json:"tapes,omitempty" yaml:"tapes"`
	Inputs   []string          `json:"inputs,omitempty" yaml:"inputs"`
	Heads    []int             `json:"heads,omitempty" yaml:"heads"`
}

type StateDefinition struct {
	Name    string `json:"name" yaml:"name"`
	Start   bool   `json:"start,omitempty" yaml:"start"`
	Halting bool   `json:"halting,omitempty" yaml:"halting"`
}

type RuleDefinition struct {
	State string   `json:"state" yaml:"state"`
	Read  []string `json:"read" yaml:"read"`
	Next  string   `json:"next" yaml:"next"`
	Write []string `json:"write" yaml:"write"`
	Moves []string `json:"moves" yaml:"moves"`
}
