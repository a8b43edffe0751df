package tmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tm/configs"
	"github.com/reusee/tm/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tm.cue",
	".tm.cue",
}

// ConfigPaths lists existing config files, the nearest first
type ConfigPaths []string

func (Module) ConfigPaths() ConfigPaths {
	var paths []string

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return paths
}

func existing(dir string) (ret []string) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	paths ConfigPaths,
) configs.Loader {
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", []string(paths),
		)
	}
	return configs.NewLoader(paths, schema)
}
