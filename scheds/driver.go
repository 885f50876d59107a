package scheds

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

// Driver runs one machine interactively. Outputs are grouped into frames of
// Frame values and handed to OnFrame. When the machine blocks, NextInput
// supplies the next value.
type Driver struct {
	Frame     int
	OnFrame   func(frame []int64) error
	NextInput func() (int64, error)
}

func (d Driver) Run(ctx context.Context, vm *intvm.VM) error {
	size := max(d.Frame, 1)
	var pending []int64
	for {
		if err := ctx.Err(); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if err := vm.RunUntilInput(); err != nil {
			return logs.WrapSpan(ctx, err)
		}

		pending = append(pending, vm.Outputs()...)
		for len(pending) >= size {
			if d.OnFrame != nil {
				if err := d.OnFrame(pending[:size]); err != nil {
					return err
				}
			}
			pending = pending[size:]
		}

		if vm.IsHalted() {
			if len(pending) > 0 {
				return logs.WrapSpan(ctx, fmt.Errorf("%w: %v", ErrPartialFrame, pending))
			}
			return nil
		}

		if d.NextInput == nil {
			return logs.WrapSpan(ctx, fmt.Errorf("pc=%d: %w", vm.PC, intvm.ErrInputExhausted))
		}
		value, err := d.NextInput()
		if err != nil {
			return err
		}
		vm.Write(value)
	}
}
