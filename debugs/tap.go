package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/tm/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens a starlark REPL on stdin with globals bound. It returns when stdin is closed.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end",
				"what", what,
			)
		}()
		repl.REPLOptions(fileOptions, newThread(ctx, what), predeclared(globals))
	}
}

// Eval evaluates one expression against globals
func Eval(ctx context.Context, what string, expr string, globals map[string]any) (starlark.Value, error) {
	return starlark.EvalOptions(fileOptions, newThread(ctx, what), what, expr, predeclared(globals))
}

func newThread(ctx context.Context, what string) *starlark.Thread {
	thread := &starlark.Thread{
		Name: what,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Println(msg)
		},
	}
	context.AfterFunc(ctx, func() {
		thread.Cancel("context done")
	})
	return thread
}

func predeclared(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
