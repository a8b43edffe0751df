package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
step_budget?: int
program?: string
verbose?: bool
inputs?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var budget int
	err := loader.AssignFirst("step_budget", &budget)
	if err != nil {
		t.Fatal(err)
	}
	if budget != 500 {
		t.Fatalf("got %v", budget)
	}

	var inputs []string
	err = loader.AssignFirst("inputs", &inputs)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", inputs); str != "[##11#10## ##1#1##]" {
		t.Fatalf("got %s", str)
	}

	var verbose bool
	err = loader.AssignFirst("verbose", &verbose)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var budgets []int
	for value, err := range loader.IterCueValues("step_budget") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		budgets = append(budgets, n)
	}
	if str := fmt.Sprintf("%v", budgets); str != "[500 1000]" {
		t.Fatalf("got %s", str)
	}

	var lists [][]string
	for inputs, err := range All[[]string](loader, "inputs") {
		if err != nil {
			t.Fatal(err)
		}
		lists = append(lists, inputs)
	}
	if str := fmt.Sprintf("%v", lists); str != "[[##11#10## ##1#1##] [##101##]]" {
		t.Fatalf("got %s", str)
	}

	// only the second file sets it
	if !First[bool](loader, "verbose") {
		t.Fatal()
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	if _, err := loader.Paths(); err == nil {
		t.Fatal("should error")
	}
}
