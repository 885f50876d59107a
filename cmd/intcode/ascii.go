package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/programs"
)

var lineFlags = cmds.Collect[string]("-line", "feed a line before reading stdin")

func init() {
	define("ascii", "FILE", "run an ASCII program interactively; -line feeds a line before reading stdin", func(path string) {
		selectAction("ascii", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
			) {
				var program []int64
				program, err = load(path)
				if err != nil {
					return
				}
				err = runASCII(ctx, intvm.New(program), *lineFlags, os.Stdin, stdout)
			})
			return
		})
	})
}

func runASCII(ctx context.Context, vm *intvm.VM, lines []string, in io.Reader, out *bufio.Writer) error {
	scanner := bufio.NewScanner(in)
	flush := func() error {
		for {
			text, signal, ok := vm.ReadASCII()
			if _, err := io.WriteString(out, text); err != nil {
				return wrap(err)
			}
			if !ok {
				break
			}
			if _, err := fmt.Fprintf(out, "\n%d\n", signal); err != nil {
				return wrap(err)
			}
		}
		return wrap(out.Flush())
	}

	for interrupt, err := range vm.Run {
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		switch interrupt {

		case intvm.InterruptHalt:
			return flush()

		case intvm.InterruptInput:
			if err := flush(); err != nil {
				return err
			}
			var line string
			if len(lines) > 0 {
				line = lines[0]
				lines = lines[1:]
				if _, err := fmt.Fprintln(out, line); err != nil {
					return wrap(err)
				}
			} else if scanner.Scan() {
				line = scanner.Text()
			} else {
				if err := scanner.Err(); err != nil {
					return err
				}
				return logs.WrapSpan(ctx, fmt.Errorf("pc=%d: %w", vm.PC, intvm.ErrInputExhausted))
			}
			vm.WriteASCII(line + "\n")

		}
	}
	return nil
}
