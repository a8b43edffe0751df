package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/reusee/tm/states"
	"github.com/reusee/tm/symbols"
)

const B = symbols.Blank

func TestLookup(t *testing.T) {
	q0 := states.New("q0", states.Start)
	q1 := states.New("q1", 0)
	table := Load([]Rule{
		{q0, Tuple{"0", B, B}, q1, Tuple{"1", B, B}, Moves{Right, Stay, Stay}},
		{q0, Tuple{"1", B, B}, q0, Tuple{"0", B, B}, Moves{Left, Stay, Stay}},
		{q1, Tuple{"0", B, B}, q0, Tuple{"0", B, B}, Moves{Stay, Stay, Stay}},
	})

	rule, ok := table.Lookup(q0, Tuple{"1", B, B})
	if !ok {
		t.Fatal()
	}
	if rule.Next != q0 || rule.Moves[0] != Left {
		t.Fatalf("got %v", rule)
	}

	rule, ok = table.Lookup(q1, Tuple{"0", B, B})
	if !ok || rule.Next != q0 {
		t.Fatalf("got %v", rule)
	}

	if _, ok := table.Lookup(q1, Tuple{"1", B, B}); ok {
		t.Fatal()
	}
	// equal name, different identity
	if _, ok := table.Lookup(states.New("q0", states.Start), Tuple{"0", B, B}); ok {
		t.Fatal()
	}
}

func TestTieBreak(t *testing.T) {
	q0 := states.New("q0", states.Start)
	a := states.New("a", states.Halting)
	b := states.New("b", states.Halting)
	rules := []Rule{
		{q0, Tuple{B, B, B}, a, Tuple{"1", B, B}, Moves{}},
		{q0, Tuple{B, B, B}, b, Tuple{"0", B, B}, Moves{}},
	}
	table := Load(rules)
	for range 10 {
		rule, ok := table.Lookup(q0, Tuple{B, B, B})
		if !ok || rule.Next != a {
			t.Fatalf("got %v", rule)
		}
	}

	dups := table.Duplicates()
	if len(dups) != 1 || dups[0].First != 0 || dups[0].Shadow != 1 {
		t.Fatalf("got %v", dups)
	}

	// swapped order, other winner
	table = Load([]Rule{rules[1], rules[0]})
	rule, _ := table.Lookup(q0, Tuple{B, B, B})
	if rule.Next != b {
		t.Fatalf("got %v", rule)
	}
}

func TestLoadCopies(t *testing.T) {
	q0 := states.New("q0", states.Start)
	rules := []Rule{
		{q0, Tuple{B, B, B}, q0, Tuple{B, B, B}, Moves{}},
	}
	table := Load(rules)
	rules[0].Write[0] = "1"
	if table.Rule(0).Write[0] != B {
		t.Fatal()
	}
	if table.Len() != 1 {
		t.Fatal()
	}
}

func TestValidate(t *testing.T) {
	alphabet := symbols.NewAlphabet("0", "1")
	q0 := states.New("q0", states.Start)
	q1 := states.New("q1", states.Halting)

	good := Load([]Rule{
		{q0, Tuple{"0", B, B}, q1, Tuple{"1", B, B}, Moves{}},
	})
	if err := Validate(good, alphabet); err != nil {
		t.Fatal(err)
	}

	bad := Load([]Rule{
		{q0, Tuple{"0", B, B}, q1, Tuple{"1", B, B}, Moves{}},
		{q0, Tuple{"0", B, B}, q0, Tuple{"x", B, B}, Moves{}},
		{q1, Tuple{"0", B, B}, nil, Tuple{"1", B, B}, Moves{}},
		{states.New("q2", states.Start), Tuple{"2", B, B}, q1, Tuple{B, B, B}, Moves{}},
	})
	err := Validate(bad, alphabet)
	for _, target := range []error{
		ErrAmbiguousRuleTable,
		symbols.ErrInvalidSymbol,
		ErrNilState,
		ErrMultipleStartStates,
	} {
		if !errors.Is(err, target) {
			t.Fatalf("expecting %v in %v", target, err)
		}
	}
	if !strings.Contains(err.Error(), "rule 1 (q0 (0,_,_)) is shadowed by rule 0") {
		t.Fatalf("got %v", err)
	}

	noStart := Load([]Rule{
		{q1, Tuple{"0", B, B}, q1, Tuple{"1", B, B}, Moves{}},
	})
	if err := Validate(noStart, alphabet); !errors.Is(err, ErrNoStartState) {
		t.Fatalf("got %v", err)
	}
}

func TestStates(t *testing.T) {
	q0 := states.New("q0", states.Start)
	q1 := states.New("q1", 0)
	q2 := states.New("q2", states.Halting)
	table := Load([]Rule{
		{q0, Tuple{}, q1, Tuple{}, Moves{}},
		{q1, Tuple{}, q0, Tuple{}, Moves{}},
		{q1, Tuple{"1"}, q2, Tuple{}, Moves{}},
	})
	var names []string
	for s := range table.States() {
		names = append(names, s.Name())
	}
	if strings.Join(names, " ") != "q0 q1 q2" {
		t.Fatalf("got %v", names)
	}
}

func TestRuleString(t *testing.T) {
	q0 := states.New("q0", states.Start)
	q1 := states.New("q1", 0)
	rule := Rule{q0, Tuple{"#", B, B}, q1, Tuple{"0", "#", B}, Moves{Stay, Right, Stay}}
	if str := rule.String(); str != "q0 -> q1 | read=(#,_,_) write=(0,#,_) ops=(S,R,S)" {
		t.Fatalf("got %s", str)
	}
}

func TestParseMove(t *testing.T) {
	for str, expected := range map[string]Move{
		"L":     Left,
		"R":     Right,
		"S":     Stay,
		"left":  Left,
		"right": Right,
		"stay":  Stay,
	} {
		move, err := ParseMove(str)
		if err != nil {
			t.Fatal(err)
		}
		if move != expected {
			t.Fatalf("%s: got %v", str, move)
		}
	}
	if _, err := ParseMove("X"); !errors.Is(err, ErrBadMove) {
		t.Fatalf("got %v", err)
	}
	if Left.Delta() != -1 || Right.Delta() != 1 || Stay.Delta() != 0 {
		t.Fatal()
	}
}
