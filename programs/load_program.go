package programs

import (
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

// LoadProgram loads a program by configured name, or by path when the name
// is not configured.
type LoadProgram func(nameOrPath string) (intvm.Program, error)

func (Module) LoadProgram(
	paths intconfigs.ProgramPaths,
	logger logs.Logger,
) LoadProgram {
	return func(nameOrPath string) (intvm.Program, error) {
		path := nameOrPath
		if p, ok := paths[nameOrPath]; ok {
			path = p
		}
		program, err := Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("program loaded",
			"path", path,
			"len", len(program),
		)
		return program, nil
	}
}
