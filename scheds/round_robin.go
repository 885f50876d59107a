package scheds

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
)

// RoundRobin steps machines in index order, one instruction per runnable
// machine per round.
type RoundRobin struct {
	Machines []Machine
	// OnOutput is called after a step that leaves output pending.
	OnOutput  func(i int, m Machine) error
	StepLimit int64
	Logger    *slog.Logger

	steps  int64
	rounds int64
}

// Round steps every machine that is neither halted nor blocked on input.
// advanced is false when no machine could be stepped.
func (r *RoundRobin) Round() (advanced bool, err error) {
	r.rounds++
	for i, m := range r.Machines {
		if m.IsHalted() || m.NeedsInput() {
			continue
		}
		if err := m.Step(); err != nil {
			return advanced, fmt.Errorf("machine %d: %w", i, err)
		}
		advanced = true
		r.steps++
		if r.StepLimit > 0 && r.steps > r.StepLimit {
			return advanced, fmt.Errorf("%w: %d", ErrStepLimit, r.StepLimit)
		}
		if r.OnOutput != nil && m.NumOutputs() > 0 {
			if err := r.OnOutput(i, m); err != nil {
				return advanced, err
			}
		}
	}
	return advanced, nil
}

func (r *RoundRobin) halted() bool {
	for _, m := range r.Machines {
		if !m.IsHalted() {
			return false
		}
	}
	return true
}

// Run drives rounds until every machine halts.
func (r *RoundRobin) Run(ctx context.Context) error {
	logger := loggerOr(r.Logger)
	for {
		if err := ctx.Err(); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if r.halted() {
			logger.DebugContext(ctx, "all machines halted",
				"rounds", r.rounds,
				"steps", r.steps,
			)
			return nil
		}
		advanced, err := r.Round()
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if !advanced && !r.halted() {
			return logs.WrapSpan(ctx, fmt.Errorf("%w: after %d rounds", ErrDeadlock, r.rounds))
		}
	}
}

func (r *RoundRobin) Steps() int64 {
	return r.steps
}

type NewRoundRobin func(machines []Machine, onOutput func(int, Machine) error) *RoundRobin

func (Module) NewRoundRobin(
	limit intconfigs.StepLimit,
	logger logs.Logger,
) NewRoundRobin {
	return func(machines []Machine, onOutput func(int, Machine) error) *RoundRobin {
		return &RoundRobin{
			Machines:  machines,
			OnOutput:  onOutput,
			StepLimit: int64(limit),
			Logger:    logger,
		}
	}
}
