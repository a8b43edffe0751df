package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/modes"
)

var (
	validateOnly = cmds.Switch("-validate", "check the program and exit")
	tapAfterRun  = cmds.Switch("-tap", "open a starlark repl after the run")
	evalExprs    = cmds.Collect[string]("-eval", "print a starlark expression over the final machine, repeatable")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var (
		reason machines.Reason
		err    error
	)
	dscope.New(
		new(Module),
		modes.FromEnv(),
	).Call(func(
		run Run,
	) {
		reason, err = run(ctx, os.Stdout)
	})
	os.Exit(exitCode(reason, err))
}

func exitCode(reason machines.Reason, err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	switch reason {
	case machines.Halted:
		return 0
	case machines.NoMatchingRule:
		// 2 is taken by usage errors
		return 4
	case machines.BudgetExhausted:
		return 3
	}
	return 1
}

