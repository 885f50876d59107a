package searches

import (
	"context"
	"slices"
	"sync"

	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/scheds"
	"golang.org/x/sync/errgroup"
)

// MaxSignal runs the amplifiers for every ordering of phases and returns the
// highest signal with the phase setting that produced it. Ties keep the
// earliest setting in permutation order. The first failing run cancels the
// rest and its error is returned.
func MaxSignal(ctx context.Context, program intvm.Program, phases []int64, feedback bool, workers int) (signal int64, setting []int64, err error) {
	return maxSignal(ctx, scheds.Feedback, program, phases, feedback, workers)
}

func maxSignal(
	ctx context.Context,
	runFeedback scheds.FeedbackFunc,
	program intvm.Program,
	phases []int64,
	feedback bool,
	workers int,
) (signal int64, setting []int64, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	var l sync.Mutex
	bestIndex := -1

	index := 0
	for perm := range Permutations(phases) {
		if gctx.Err() != nil {
			break
		}
		perm := slices.Clone(perm)
		i := index
		index++
		g.Go(func() error {
			var value int64
			var err error
			if feedback {
				value, err = runFeedback(gctx, program, perm)
			} else {
				value, err = scheds.Series(program, perm)
			}
			if err != nil {
				return err
			}
			l.Lock()
			defer l.Unlock()
			if bestIndex < 0 || value > signal || value == signal && i < bestIndex {
				signal = value
				setting = perm
				bestIndex = i
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	if err := ctx.Err(); err != nil {
		return 0, nil, logs.WrapSpan(ctx, err)
	}
	if bestIndex < 0 {
		return 0, nil, ErrNotFound
	}
	return signal, setting, nil
}

type MaxSignalFunc func(ctx context.Context, program intvm.Program, phases []int64, feedback bool) (int64, []int64, error)

func (Module) MaxSignal(
	workers intconfigs.Workers,
	runFeedback scheds.FeedbackFunc,
	logger logs.Logger,
) MaxSignalFunc {
	return func(ctx context.Context, program intvm.Program, phases []int64, feedback bool) (int64, []int64, error) {
		signal, setting, err := maxSignal(ctx, runFeedback, program, phases, feedback, int(workers))
		if err != nil {
			return 0, nil, err
		}
		logger.InfoContext(ctx, "max signal",
			"signal", signal,
			"phases", setting,
			"feedback", feedback,
		)
		return signal, setting, nil
	}
}
