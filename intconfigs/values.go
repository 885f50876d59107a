package intconfigs

import (
	"runtime"

	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/vars"
)

var (
	networkSizeFlag = cmds.Var[int]("-network-size", "machines in a network")
	natAddressFlag  = cmds.Var[int]("-nat", "NAT address")
	idleRoundsFlag  = cmds.Var[int]("-idle-rounds", "idle rounds before the NAT wakes machine 0")
	stepLimitFlag   = cmds.Var[int64]("-step-limit", "maximum instructions per scheduler run")
	workersFlag     = cmds.Var[int]("-workers", "concurrent searches")
	cachePathFlag   = cmds.Var[string]("-cache", "sqlite run cache file")
	sessionFlag     = cmds.Var[string]("-session", "session cookie for fetch")
)

const (
	defaultNetworkSize = 50
	defaultNATAddress  = 255
	defaultIdleRounds  = 2
)

// NetworkSize is the number of machines booted by a network scheduler.
type NetworkSize int

func (Module) NetworkSize(
	loader configs.Loader,
) NetworkSize {
	return NetworkSize(vars.FirstNonZero(
		*networkSizeFlag,
		configs.First[int](loader, "network_size"),
		defaultNetworkSize,
	))
}

// NATAddress is the destination that packets for the NAT holder carry.
type NATAddress int

func (Module) NATAddress(
	loader configs.Loader,
) NATAddress {
	return NATAddress(vars.FirstNonZero(
		*natAddressFlag,
		configs.First[int](loader, "nat_address"),
		defaultNATAddress,
	))
}

// IdleRounds is how many consecutive idle rounds make the network idle.
type IdleRounds int

func (Module) IdleRounds(
	loader configs.Loader,
) IdleRounds {
	return IdleRounds(vars.FirstNonZero(
		*idleRoundsFlag,
		configs.First[int](loader, "idle_rounds"),
		defaultIdleRounds,
	))
}

// StepLimit bounds the instructions a scheduler may execute. Zero means
// unlimited.
type StepLimit int64

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	return StepLimit(vars.FirstNonZero(
		*stepLimitFlag,
		configs.First[int64](loader, "step_limit"),
	))
}

type Workers int

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstNonZero(
		*workersFlag,
		configs.First[int](loader, "workers"),
		runtime.GOMAXPROCS(0),
	))
}

// CachePath is the sqlite file for cached runs. Empty disables caching.
type CachePath string

func (Module) CachePath(
	loader configs.Loader,
) CachePath {
	return CachePath(vars.FirstNonZero(
		*cachePathFlag,
		configs.First[string](loader, "cache_path"),
	))
}

// Session is the cookie value sent when fetching programs.
type Session string

func (Module) Session(
	loader configs.Loader,
) Session {
	return Session(vars.FirstNonZero(
		*sessionFlag,
		configs.First[string](loader, "session"),
	))
}

// ProgramPaths maps program names to files. Maps from later config files
// only add names the earlier ones did not define.
type ProgramPaths map[string]string

func (Module) ProgramPaths(
	loader configs.Loader,
) ProgramPaths {
	ret := make(ProgramPaths)
	for m := range configs.All[map[string]string](loader, "programs") {
		for name, path := range m {
			if _, ok := ret[name]; !ok {
				ret[name] = path
			}
		}
	}
	return ret
}

// LogLevel applies the configured log level, if any.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	return LogLevel(configs.First[string](loader, "log_level"))
}
