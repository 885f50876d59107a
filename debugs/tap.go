package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/intcode/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL over globals.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval runs src over globals and returns the resulting global bindings.
type Eval func(ctx context.Context, what string, globals map[string]any, src string) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, what string, globals map[string]any, src string) (starlark.StringDict, error) {
		thread := &starlark.Thread{
			Name: what,
			Print: func(_ *starlark.Thread, msg string) {
				logger.InfoContext(ctx, "tap print: "+what,
					"msg", msg,
				)
			},
		}
		return starlark.ExecFileOptions(fileOptions, thread, what, src, toStringDict(globals))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
