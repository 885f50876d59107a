package searches

import (
	"context"
	"errors"
	"sync"

	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"golang.org/x/sync/errgroup"
)

var ErrNotFound = errors.New("no parameters produce the target")

// NounVerb searches nouns and verbs in [0, 100) for the pair whose run
// leaves target at address 0, and returns 100*noun+verb. The smallest
// matching value wins. Runs that fault are skipped.
func NounVerb(ctx context.Context, program intvm.Program, target int64, workers int) (int64, error) {
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	var l sync.Mutex
	best := int64(-1)

	for noun := int64(0); noun < 100; noun++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			vm := intvm.New(program)
			for verb := int64(0); verb < 100; verb++ {
				if ctx.Err() != nil {
					return nil
				}
				if err := vm.Exec(intvm.Noun(noun), intvm.Verb(verb)); err != nil {
					continue
				}
				if vm.Memory.Read(0) != target {
					continue
				}
				value := 100*noun + verb
				l.Lock()
				if best < 0 || value < best {
					best = value
				}
				l.Unlock()
				return nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, logs.WrapSpan(ctx, err)
	}
	if best < 0 {
		return 0, ErrNotFound
	}
	return best, nil
}

type NounVerbFunc func(ctx context.Context, program intvm.Program, target int64) (int64, error)

func (Module) NounVerb(
	workers intconfigs.Workers,
	logger logs.Logger,
) NounVerbFunc {
	return func(ctx context.Context, program intvm.Program, target int64) (int64, error) {
		value, err := NounVerb(ctx, program, target, int(workers))
		if err != nil {
			return 0, err
		}
		logger.InfoContext(ctx, "noun verb found",
			"noun", value/100,
			"verb", value%100,
		)
		return value, nil
	}
}
