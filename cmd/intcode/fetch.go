package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/programs"
)

func init() {
	define("fetch", "URL OUT", "download a program and save it; -session sets the session cookie", func(url string, out string) {
		selectAction("fetch", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				fetch programs.FetchProgram,
			) {
				program, e := fetch(ctx, url)
				if e != nil {
					err = e
					return
				}
				if e := os.WriteFile(out, []byte(programs.Format(program)+"\n"), 0644); e != nil {
					err = wrap(e)
				}
			})
			return
		})
	})
}
