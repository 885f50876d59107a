package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/scheds"
	"github.com/reusee/intcode/searches"
)

var (
	feedbackFlag = cmds.Switch("-feedback", "connect the last amplifier back to the first")
	phasesFlag   = cmds.Var[[]int64]("-phases", "comma separated phase settings")
	maxFlag      = cmds.Switch("-max", "search every phase order for the highest signal")
)

func init() {
	define("amp", "FILE", "run an amplifier chain; with -max search all phase orders", func(path string) {
		selectAction("amp", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
				feedback scheds.FeedbackFunc,
				maxSignal searches.MaxSignalFunc,
			) {
				err = amplify(ctx, path, load, feedback, maxSignal)
			})
			return
		})
	})
}

func amplify(
	ctx context.Context,
	path string,
	load programs.LoadProgram,
	feedback scheds.FeedbackFunc,
	maxSignal searches.MaxSignalFunc,
) error {
	program, err := load(path)
	if err != nil {
		return err
	}

	phases := *phasesFlag
	if len(phases) == 0 {
		phases = []int64{0, 1, 2, 3, 4}
		if *feedbackFlag {
			phases = []int64{5, 6, 7, 8, 9}
		}
	}

	if *maxFlag {
		signal, setting, err := maxSignal(ctx, program, phases, *feedbackFlag)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%d %v\n", signal, setting)
		return nil
	}

	var signal int64
	if *feedbackFlag {
		signal, err = feedback(ctx, program, slices.Clone(phases))
	} else {
		signal, err = scheds.Series(program, phases)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, signal)
	return nil
}
