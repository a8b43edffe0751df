package batches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/programs"
	"github.com/reusee/tm/symbols"
	"golang.org/x/sync/errgroup"
)

// Job is one independent run. Jobs may share a program, tables are read-only.
type Job struct {
	ID      string
	Input   string
	Program *programs.Program
	Budget  int
}

type Outcome struct {
	Job     Job
	Machine *machines.Machine
	Result  machines.Result
	// false if the batch stopped before this job started
	Done bool
}

type Runner struct {
	Parallel int
	Logger   logs.Logger
	// optional, one span per job
	NewSpan logs.NewSpan
}

// Jobs derives one job per input, each replacing tape 1 of program
func Jobs(program *programs.Program, budget int, inputs ...string) ([]Job, error) {
	jobs := make([]Job, 0, len(inputs))
	for _, input := range inputs {
		p, err := program.WithInput(0, symbols.Split(input))
		if err != nil {
			return nil, fmt.Errorf("input %q: %w", input, err)
		}
		jobs = append(jobs, Job{
			ID:      uuid.NewString(),
			Input:   input,
			Program: p,
			Budget:  budget,
		})
	}
	return jobs, nil
}

// Run runs jobs concurrently, at most Parallel at a time. Outcomes are in job order.
// ctx is checked between runs only; a started run goes on until it terminates.
// Observers are called from several goroutines.
func (r *Runner) Run(ctx context.Context, jobs []Job, observers ...machines.Observer) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	if r.Parallel > 0 {
		group.SetLimit(r.Parallel)
	}

	for i, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
		outcomes[i].Job = job

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ctx := ctx
			if r.NewSpan != nil {
				ctx, _ = r.NewSpan(ctx, "")
			}

			m, err := job.Program.NewMachine()
			if err != nil {
				return logs.WrapSpan(ctx, fmt.Errorf("job %s: %w", job.ID, err))
			}
			result, err := m.Run(job.Budget, observers...)
			if err != nil {
				return logs.WrapSpan(ctx, fmt.Errorf("job %s: %w", job.ID, err))
			}

			outcomes[i].Machine = m
			outcomes[i].Result = result
			outcomes[i].Done = true
			r.Logger.DebugContext(ctx, "job done",
				"job", job.ID,
				"input", job.Input,
				"state", result.State.Name(),
				"steps", result.Steps,
				"reason", result.Reason.String(),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
