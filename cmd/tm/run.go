package main

import (
	"context"
	"fmt"
	"io"

	"github.com/reusee/tm/batches"
	"github.com/reusee/tm/checkpoints"
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/debugs"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/programs"
	"github.com/reusee/tm/renders"
	"github.com/reusee/tm/symbols"
	"github.com/reusee/tm/tmconfigs"
)

// Run loads the configured program, runs it and renders the outcome to out
type Run func(ctx context.Context, out io.Writer) (machines.Reason, error)

func (Module) Run(
	logger logs.Logger,
	programPath tmconfigs.ProgramPath,
	inputs tmconfigs.Inputs,
	budget tmconfigs.StepBudget,
	verbose tmconfigs.Verbose,
	checkpointPath tmconfigs.CheckpointPath,
	newCheckpointRunner checkpoints.NewRunner,
	batchRunner *batches.Runner,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, out io.Writer) (machines.Reason, error) {
		program, err := loadProgram(string(programPath))
		if err != nil {
			return 0, err
		}
		logger.InfoContext(ctx, "program loaded",
			"name", program.Name,
			"rules", program.Table.Len(),
			"states", program.States.Len(),
		)

		if *validateOnly {
			if err := program.Validate(); err != nil {
				return 0, err
			}
			_, err := fmt.Fprintf(out, "%s: %d rules, %d states, alphabet %v\n",
				program.Name, program.Table.Len(), program.States.Len(), program.Alphabet)
			return machines.Halted, err
		}

		if len(inputs) > 1 {
			if checkpointPath != "" || verbose {
				return 0, fmt.Errorf("%w: -checkpoint and -verbose take a single -input, got %d",
					cmds.ErrBadArgument, len(inputs))
			}
			return runBatch(ctx, out, batchRunner, program, int(budget), inputs)
		}
		if len(inputs) == 1 {
			program, err = program.WithInput(0, symbols.Split(inputs[0]))
			if err != nil {
				return 0, err
			}
		}

		var observers []machines.Observer
		if verbose {
			observers = append(observers, renders.Observer(out))
		}

		var m *machines.Machine
		var result machines.Result
		if checkpointPath != "" {
			runner := newCheckpointRunner(string(checkpointPath), program)
			var startErr error
			runner.OnStart = func(outcome *checkpoints.Outcome) {
				if outcome.Resumed {
					fmt.Fprintf(out, "resumed at step %d\n", outcome.TotalSteps)
				}
				startErr = renders.Snapshot(out, outcome.Machine.Snapshot())
			}
			outcome, err := runner.Run(ctx, int(budget), observers...)
			if err != nil {
				return 0, err
			}
			if startErr != nil {
				return 0, startErr
			}
			m = outcome.Machine
			result = outcome.Result
		} else {
			m, err = program.NewMachine()
			if err != nil {
				return 0, err
			}
			if err := renders.Snapshot(out, m.Snapshot()); err != nil {
				return 0, err
			}
			result, err = m.Run(int(budget), observers...)
			if err != nil {
				return 0, err
			}
		}

		fmt.Fprintln(out)
		if err := renders.Snapshot(out, m.Snapshot()); err != nil {
			return 0, err
		}
		if err := renders.Result(out, result); err != nil {
			return 0, err
		}

		if len(*evalExprs) > 0 || *tapAfterRun {
			globals := debugs.MachineGlobals(m, result)
			for _, expr := range *evalExprs {
				value, err := debugs.Eval(ctx, program.Name, expr, globals)
				if err != nil {
					return 0, err
				}
				fmt.Fprintf(out, "%s = %s\n", expr, value)
			}
			if *tapAfterRun {
				tap(ctx, program.Name, globals)
			}
		}

		return result.Reason, nil
	}
}

func loadProgram(path string) (*programs.Program, error) {
	if path == "" {
		return programs.Multiplication()
	}
	def, err := programs.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return programs.Compile(def)
}

// runBatch reports the first reason other than Halted, in input order
func runBatch(
	ctx context.Context,
	out io.Writer,
	runner *batches.Runner,
	program *programs.Program,
	budget int,
	inputs []string,
) (machines.Reason, error) {
	jobs, err := batches.Jobs(program, budget, inputs...)
	if err != nil {
		return 0, err
	}
	outcomes, err := runner.Run(ctx, jobs)
	if err != nil {
		return 0, err
	}

	reason := machines.Halted
	for _, outcome := range outcomes {
		if _, err := fmt.Fprintf(out, "input %s (job %s)\n", outcome.Job.Input, outcome.Job.ID); err != nil {
			return 0, err
		}
		if err := renders.Snapshot(out, outcome.Machine.Snapshot()); err != nil {
			return 0, err
		}
		if err := renders.Result(out, outcome.Result); err != nil {
			return 0, err
		}
		fmt.Fprintln(out)
		if reason == machines.Halted {
			reason = outcome.Result.Reason
		}
	}
	return reason, nil
}
