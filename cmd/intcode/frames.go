package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/scheds"
)

var frameFlag = cmds.Var[int]("-frame", "outputs per frame")

func init() {
	define("frames", "FILE", "run a program printing output frames of -frame values, reading inputs from stdin", func(path string) {
		selectAction("frames", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
			) {
				var program []int64
				program, err = load(path)
				if err != nil {
					return
				}
				scanner := bufio.NewScanner(os.Stdin)
				err = scheds.Driver{
					Frame: *frameFlag,
					OnFrame: func(frame []int64) error {
						strs := make([]string, len(frame))
						for i, value := range frame {
							strs[i] = strconv.FormatInt(value, 10)
						}
						fmt.Fprintln(stdout, strings.Join(strs, " "))
						return nil
					},
					NextInput: func() (int64, error) {
						if err := stdout.Flush(); err != nil {
							return 0, err
						}
						if !scanner.Scan() {
							if err := scanner.Err(); err != nil {
								return 0, err
							}
							return 0, intvm.ErrInputExhausted
						}
						return strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
					},
				}.Run(ctx, intvm.New(program))
			})
			return
		})
	})
}
