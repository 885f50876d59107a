package intconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/logs"
)

//go:embed schema.cue
var schema string

var configPaths = cmds.Collect[string]("-config", "read a config file before the default ones")

var filenames = []string{
	"intcode.cue",
	".intcode.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	paths := searchPaths()
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	return configs.NewLoader(paths, schema)
}

// searchPaths lists config files in lookup order: explicit -config files,
// then the working directory, the user config dir and /etc.
func searchPaths() []string {
	paths := append([]string(nil), *configPaths...)

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			_, err := os.Stat(path)
			if err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return paths
}
