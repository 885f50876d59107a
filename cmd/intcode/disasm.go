package main

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/programs"
)

func init() {
	define("disasm", "FILE", "disassemble a program", func(path string) {
		selectAction("disasm", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
			) {
				var program intvm.Program
				program, err = load(path)
				if err != nil {
					return
				}
				err = intvm.DisassembleAll(program, stdout)
			})
			return
		})
	})
}
