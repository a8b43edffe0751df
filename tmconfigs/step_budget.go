package tmconfigs

import (
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/modes"
)

// StepBudget bounds the number of steps of one run
type StepBudget int

var _ configs.Configurable = StepBudget(0)

func (StepBudget) ConfigPath() string {
	return "step_budget"
}

const (
	DefaultStepBudget            StepBudget = 100_000
	DefaultDevelopmentStepBudget StepBudget = 10_000
)

var stepBudgetFlag = cmds.Var[int]("-budget", "maximum steps of one run")

func (Module) StepBudget(
	loader configs.Loader,
	mode modes.Mode,
) StepBudget {
	fallback := DefaultStepBudget
	if mode == modes.ModeDevelopment {
		fallback = DefaultDevelopmentStepBudget
	}
	return configs.Resolve(loader, StepBudget(*stepBudgetFlag), fallback)
}
