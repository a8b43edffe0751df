package checkpoints

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/programs"
)

// Runner runs a program in chunks of Interval steps and saves a checkpoint after
// every chunk. An existing checkpoint at Path is resumed.
type Runner struct {
	Path     string
	Program  *programs.Program
	Interval int
	Logger   logs.Logger
	// optional, called with the new or restored machine before any step
	OnStart func(outcome *Outcome)
}

type Outcome struct {
	Machine *machines.Machine
	// Steps of Result count this invocation only
	Result machines.Result
	// steps since the program started, over all resumes
	TotalSteps int
	Resumed    bool
}

// Run takes at most budget steps. Cancelling ctx stops the run at the next
// checkpoint; the run can be resumed later.
func (r *Runner) Run(ctx context.Context, budget int, observers ...machines.Observer) (*Outcome, error) {
	unlock, err := Lock(r.Path)
	if err != nil {
		return nil, err
	}
	defer unlock()

	fingerprint := r.Program.Fingerprint()
	outcome, err := r.start(fingerprint)
	if err != nil {
		return nil, err
	}
	m := outcome.Machine
	if r.OnStart != nil {
		r.OnStart(outcome)
	}

	interval := r.Interval
	if interval <= 0 {
		interval = budget
	}

	for {
		select {
		case <-ctx.Done():
			return outcome, ctx.Err()
		default:
		}

		chunk := min(interval, budget-outcome.Result.Steps)
		result, err := m.Run(chunk, observers...)
		outcome.Result.State = result.State
		outcome.Result.Steps += result.Steps
		outcome.TotalSteps += result.Steps
		if err != nil {
			return outcome, err
		}

		done := result.Reason != machines.BudgetExhausted ||
			outcome.Result.Steps >= budget
		if done {
			outcome.Result.Reason = result.Reason
		}

		checkpoint := &Checkpoint{
			Program:     r.Program.Name,
			Fingerprint: fingerprint,
			Steps:       outcome.TotalSteps,
			Snapshot:    m.Snapshot(),
			SavedAt:     time.Now(),
		}
		if done {
			checkpoint.Reason = result.Reason.String()
		}
		if err := Save(r.Path, checkpoint); err != nil {
			return outcome, err
		}
		r.Logger.DebugContext(ctx, "checkpoint saved",
			"path", r.Path,
			"steps", outcome.TotalSteps,
			"state", result.State.Name(),
		)

		if done {
			return outcome, nil
		}
	}
}

func (r *Runner) start(fingerprint string) (*Outcome, error) {
	checkpoint, err := Load(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		m, err := r.Program.NewMachine()
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Machine: m,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	if checkpoint.Program != r.Program.Name {
		return nil, fmt.Errorf("%w: %s is %q, not %q",
			ErrMismatch, r.Path, checkpoint.Program, r.Program.Name)
	}
	if checkpoint.Fingerprint != fingerprint {
		return nil, fmt.Errorf("%w: %s was started with another rule table or initial configuration of %q",
			ErrMismatch, r.Path, r.Program.Name)
	}
	m, err := r.Program.Restore(checkpoint.Snapshot)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("resume from checkpoint",
		"path", r.Path,
		"steps", checkpoint.Steps,
		"state", checkpoint.Snapshot.State,
	)
	return &Outcome{
		Machine:    m,
		TotalSteps: checkpoint.Steps,
		Resumed:    true,
	}, nil
}
