package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	program := First[string](loader, "program")
	if program != "mul.cue" {
		t.Fatalf("got %v", program)
	}

	if v := First[bool](loader, "verbose"); v {
		t.Fatal()
	}

	// wrong type
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		First[int](loader, "program")
	}()
}

func TestAllError(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	n := 0
	for _, err := range All[int](loader, "inputs") {
		if err == nil {
			t.Fatal("should error")
		}
		n++
	}
	if n != 1 {
		t.Fatalf("got %v", n)
	}
}

type testBudget int

func (testBudget) ConfigPath() string {
	return "step_budget"
}

var _ Configurable = testBudget(0)

func TestResolve(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	if n := Resolve(loader, testBudget(7), testBudget(100)); n != 7 {
		t.Fatalf("got %v", n)
	}
	if n := Resolve(loader, testBudget(0), testBudget(100)); n != 500 {
		t.Fatalf("got %v", n)
	}

	empty := NewLoader(nil, testSchema)
	if n := Resolve(empty, testBudget(0), testBudget(100)); n != 100 {
		t.Fatalf("got %v", n)
	}
}
