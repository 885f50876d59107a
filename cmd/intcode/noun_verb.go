package main

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/searches"
)

func init() {
	define("nounverb", "FILE TARGET", "find the noun and verb that leave TARGET at address 0", func(path string, target int64) {
		selectAction("nounverb", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
				search searches.NounVerbFunc,
			) {
				program, e := load(path)
				if e != nil {
					err = e
					return
				}
				value, e := search(ctx, program, target)
				if e != nil {
					err = e
					return
				}
				fmt.Fprintln(stdout, value)
			})
			return
		})
	})
}
