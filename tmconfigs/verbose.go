package tmconfigs

import (
	"github.com/reusee/tm/cmds"
	"github.com/reusee/tm/configs"
)

// Verbose prints every step
type Verbose bool

var _ configs.Configurable = Verbose(false)

func (Verbose) ConfigPath() string {
	return "verbose"
}

var verboseFlag = cmds.Switch("-verbose", "print every step, single -input only")

func (Module) Verbose(
	loader configs.Loader,
) Verbose {
	return configs.Resolve(loader, Verbose(*verboseFlag), Verbose(false))
}
