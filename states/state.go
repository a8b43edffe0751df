package states

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

type Flag uint8

const (
	Start Flag = 1 << iota
	Halting
)

// State is a control state. States compare by identity, never by name.
type State struct {
	name  string
	flags Flag
}

func New(name string, flags Flag) *State {
	return &State{
		name:  name,
		flags: flags,
	}
}

func (s *State) Name() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

func (s *State) IsStart() bool {
	return s != nil && s.flags&Start != 0
}

func (s *State) IsHalting() bool {
	return s != nil && s.flags&Halting != 0
}

func (s *State) Flags() Flag {
	if s == nil {
		return 0
	}
	return s.flags
}

func (s *State) String() string {
	return s.Name()
}

var ErrConflict = errors.New("conflicting state definition")

// Registry interns states by name so that decoding the same name twice yields the same state
type Registry struct {
	byName map[string]*State
	order  []*State
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*State),
	}
}

// Define returns the state named name, creating it on first use.
// Redefining a name with different flags is an error.
func (r *Registry) Define(name string, flags Flag) (*State, error) {
	if s, ok := r.byName[name]; ok {
		if s.flags != flags {
			return nil, fmt.Errorf("%w: %s", ErrConflict, name)
		}
		return s, nil
	}
	s := New(name, flags)
	r.byName[name] = s
	r.order = append(r.order, s)
	return s, nil
}

func (r *Registry) Lookup(name string) (*State, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// All iterates states in definition order
func (r *Registry) All() iter.Seq[*State] {
	return slices.Values(r.order)
}

func (r *Registry) Len() int {
	return len(r.order)
}
