package main

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/storages"
)

var (
	inputFlags = cmds.Collect[int64]("-input", "queue an input value")
	nounFlag   = cmds.Var[*int64]("-noun", "patch address 1")
	verbFlag   = cmds.Var[*int64]("-verb", "patch address 2")
	tapFlag    = cmds.Switch("-tap", "open a starlark REPL on the final machine state")
)

func init() {
	define("run", "FILE", "run a program to halt and print its outputs", func(path string) {
		selectAction("run", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
				openCache storages.OpenCache,
				tap debugs.Tap,
				logger logs.Logger,
			) {
				err = runProgram(ctx, path, load, openCache, tap, logger)
			})
			return
		})
	})
}

func runProgram(
	ctx context.Context,
	path string,
	load programs.LoadProgram,
	openCache storages.OpenCache,
	tap debugs.Tap,
	logger logs.Logger,
) error {
	program, err := load(path)
	if err != nil {
		return err
	}
	inputs := *inputFlags

	patched := *nounFlag != nil || *verbFlag != nil
	if !patched && !*tapFlag {
		cache, err := openCache(ctx)
		if err != nil {
			return err
		}
		if cache != nil {
			defer cache.Close()
			result, err := cache.Exec(ctx, program, inputs)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "run done",
				"steps", result.Steps,
				"outputs", len(result.Outputs),
			)
			printValues(result.Outputs)
			return nil
		}
	}

	vm := intvm.New(program)
	opts := []intvm.ExecOption{
		intvm.Inputs(inputs...),
	}
	if *nounFlag != nil {
		opts = append(opts, intvm.Noun(**nounFlag))
	}
	if *verbFlag != nil {
		opts = append(opts, intvm.Verb(**verbFlag))
	}
	execErr := vm.Exec(opts...)
	if *tapFlag {
		tap(ctx, "run "+path, debugs.MachineGlobals(vm))
	}
	if execErr != nil {
		return logs.WrapSpan(ctx, execErr)
	}

	logger.InfoContext(ctx, "run done",
		"steps", vm.Steps(),
		"outputs", vm.NumOutputs(),
	)
	printValues(vm.Outputs())
	if patched {
		fmt.Fprintf(stdout, "address 0: %d\n", vm.Memory.Read(0))
	}
	return nil
}

func printValues(values []int64) {
	for _, value := range values {
		fmt.Fprintln(stdout, value)
	}
}
