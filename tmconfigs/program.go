package tmconfigs

import (
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/vars"
)

// ProgramPath is a .cue or .yaml program file. Empty means the built-in multiplication program.
type ProgramPath string

var _ configs.Configurable = ProgramPath("")

func (ProgramPath) ConfigPath() string {
	return "program"
}

var programFlag = cmds.Var[string]("-program", "program file, .cue or .yaml")

func (Module) ProgramPath(
	loader configs.Loader,
) ProgramPath {
	return configs.Resolve(loader, ProgramPath(*programFlag), "")
}

// Inputs replace tape 1 of the program, one run per input
type Inputs []string

var inputFlags = cmds.Collect[string]("-input", "initial content of tape 1, repeat to run a batch")

func (Module) Inputs(
	loader configs.Loader,
) Inputs {
	if len(*inputFlags) > 0 {
		return *inputFlags
	}
	return configs.First[[]string](loader, "inputs")
}

// CheckpointPath is where an unfinished run is saved and resumed from
type CheckpointPath string

var checkpointFlag = cmds.Var[string]("-checkpoint", "checkpoint file to save to and resume from, single -input only")

func (Module) CheckpointPath(
	loader configs.Loader,
) CheckpointPath {
	return CheckpointPath(vars.FirstNonZero(
		*checkpointFlag,
		configs.First[string](loader, "checkpoint"),
	))
}

// Parallel bounds concurrent runs when several inputs are given
type Parallel int

var parallelFlag = cmds.Var[int]("-parallel", "concurrent runs of a batch")

func (Module) Parallel(
	loader configs.Loader,
) Parallel {
	return Parallel(vars.FirstNonZero(
		*parallelFlag,
		configs.First[int](loader, "parallel"),
		4,
	))
}
