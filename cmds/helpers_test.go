package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	budget := Var[int]("TestVar-budget", "")
	program := Var[string]("TestVar-program", "")
	GlobalExecutor.MustExecute([]string{
		"TestVar-budget", "42",
		"TestVar-program", "mul.cue",
	})
	if *budget != 42 {
		t.Fatal()
	}
	if *program != "mul.cue" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-budget.",
	})
	if *budget != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	verbose := Switch("TestSwitch", "")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if !*verbose {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *verbose {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	inputs := Collect[string]("TestCollect", "")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "##11#10##",
		"TestCollect", "#1#1#",
	})
	if str := fmt.Sprintf("%v", *inputs); str != "[##11#10## #1#1#]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar", "")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "run.json",
	})
	if *v != "run.json" {
		t.Fatal()
	}
}
