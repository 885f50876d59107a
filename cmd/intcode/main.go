package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/modes"
)

// action is the command selected on the command line.
type action struct {
	name string
	fn   func(ctx context.Context, scope dscope.Scope) error
}

var selected *action

func define(name string, args string, desc string, fn any) {
	cmds.Define(name, cmds.Func(fn).Args(strings.Fields(args)...).Desc(desc))
}

func selectAction(name string, fn func(ctx context.Context, scope dscope.Scope) error) {
	selected = &action{
		name: name,
		fn:   fn,
	}
}

var stdout = bufio.NewWriter(os.Stdout)

func main() {
	cmds.Execute(os.Args[1:])
	if selected == nil {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		level intconfigs.LogLevel,
		newSpan logs.NewSpan,
	) {
		if level != "" {
			ce(logs.SetLevel(string(level)))
		}
		ctx, _ := newSpan(context.Background(), "", selected.name)
		err := selected.fn(ctx, scope)
		if flushErr := stdout.Flush(); err == nil {
			err = flushErr
		}
		if err != nil {
			logger.ErrorContext(ctx, selected.name+" failed",
				"error", err,
			)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}
