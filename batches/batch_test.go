package batches

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/machines"
	"github.com/reusee/tm/modes"
	"github.com/reusee/tm/programs"
	"github.com/reusee/tm/symbols"
	"github.com/reusee/tm/tmconfigs"
)

func TestBatch(t *testing.T) {
	program, err := programs.Multiplication()
	if err != nil {
		t.Fatal(err)
	}

	expected := []struct {
		input string
		steps int
		tape2 string
	}{
		{"##101#1001#101#1001##", 202, "_____11111101001_"},
		{"##11#10##", 34, "___110_"},
		{"#1#1#", 21, "___1_"},
		{"##", 3, "_"},
	}
	var inputs []string
	// each input several times, all runs share one table
	for range 8 {
		for _, e := range expected {
			inputs = append(inputs, e.input)
		}
	}

	jobs, err := Jobs(program, 1000, inputs...)
	if err != nil {
		t.Fatal(err)
	}
	ids := make(map[string]bool)
	for _, job := range jobs {
		if ids[job.ID] {
			t.Fatalf("duplicated id %s", job.ID)
		}
		ids[job.ID] = true
		if job.Program.Table != program.Table {
			t.Fatal("table not shared")
		}
	}

	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() tmconfigs.ConfigPaths {
			return nil
		},
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		runner *Runner,
	) {
		if runner.Parallel != 4 {
			t.Fatalf("got %v", runner.Parallel)
		}

		var transitions atomic.Int64
		outcomes, err := runner.Run(t.Context(), jobs, func(_ *machines.Machine, _ machines.Transition) {
			transitions.Add(1)
		})
		if err != nil {
			t.Fatal(err)
		}
		if len(outcomes) != len(jobs) {
			t.Fatalf("got %v", len(outcomes))
		}

		total := 0
		for i, outcome := range outcomes {
			e := expected[i%len(expected)]
			if outcome.Job.ID != jobs[i].ID || outcome.Job.Input != e.input {
				t.Fatalf("got %+v", outcome.Job)
			}
			if !outcome.Done {
				t.Fatal()
			}
			if outcome.Result.Reason != machines.Halted || outcome.Result.Steps != e.steps {
				t.Fatalf("%s: got %v", e.input, outcome.Result)
			}
			if outcome.Result.State.Name() != "q10" {
				t.Fatalf("got %v", outcome.Result.State.Name())
			}
			if str := symbols.Join(outcome.Machine.Tape(1).Cells()); str != e.tape2 {
				t.Fatalf("%s: got %s", e.input, str)
			}
			total += outcome.Result.Steps
		}
		if transitions.Load() != int64(total) {
			t.Fatalf("got %v, expected %v", transitions.Load(), total)
		}
		if n := strings.Count(logBuf.String(), "new span"); n != len(jobs) {
			t.Fatalf("got %v spans", n)
		}
	})
}

func TestBudget(t *testing.T) {
	program, err := programs.Multiplication()
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := Jobs(program, 10, "##11#10##")
	if err != nil {
		t.Fatal(err)
	}
	runner := &Runner{
		Parallel: 1,
		Logger:   testLogger(),
	}

	outcomes, err := runner.Run(t.Context(), jobs)
	if err != nil {
		t.Fatal(err)
	}
	result := outcomes[0].Result
	if result.Reason != machines.BudgetExhausted || result.Steps != 10 || result.State.Name() != "q5" {
		t.Fatalf("got %v", result)
	}
	if heads := outcomes[0].Machine.Heads(); heads != [3]int{6, 3, 0} {
		t.Fatalf("got %v", heads)
	}
}

func TestBadInput(t *testing.T) {
	program, err := programs.Multiplication()
	if err != nil {
		t.Fatal(err)
	}
	_, err = Jobs(program, 10, "##12##")
	if !errors.Is(err, symbols.ErrInvalidSymbol) {
		t.Fatalf("got %v", err)
	}
}

func TestCanceled(t *testing.T) {
	program, err := programs.Multiplication()
	if err != nil {
		t.Fatal(err)
	}
	jobs, err := Jobs(program, 1000, "##", "#1#1#")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	runner := &Runner{
		Parallel: 1,
		Logger:   testLogger(),
	}
	outcomes, err := runner.Run(ctx, jobs)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	for _, outcome := range outcomes {
		if outcome.Done {
			t.Fatal()
		}
	}
}

func testLogger() (logger logs.Logger) {
	dscope.New(new(logs.Module)).Fork(
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Call(func(l logs.Logger) {
		logger = l
	})
	return
}
