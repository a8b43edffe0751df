package checkpoints

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/programs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type NewRunner func(path string, program *programs.Program) *Runner

const DefaultInterval = 10_000

func (Module) NewRunner(
	logger logs.Logger,
) NewRunner {
	return func(path string, program *programs.Program) *Runner {
		return &Runner{
			Path:     path,
			Program:  program,
			Interval: DefaultInterval,
			Logger:   logger,
		}
	}
}
