package batches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tm/logs"
	"github.com/reusee/tm/tmconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tmconfigs.Module
}

func (Module) Runner(
	parallel tmconfigs.Parallel,
	logger logs.Logger,
	newSpan logs.NewSpan,
) *Runner {
	return &Runner{
		Parallel: int(parallel),
		Logger:   logger,
		NewSpan:  newSpan,
	}
}
