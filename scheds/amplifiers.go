package scheds

import (
	"context"
	"fmt"

	"github.com/reusee/intcode/intvm"
)

// Feedback runs one machine per phase in a ring. Each machine gets its phase
// first, machine 0 then gets signal 0, and every output is forwarded to the
// next machine. The result is the last value the final machine emitted.
func Feedback(ctx context.Context, program intvm.Program, phases []int64) (int64, error) {
	return feedback(ctx, &RoundRobin{}, program, phases)
}

func feedback(ctx context.Context, r *RoundRobin, program intvm.Program, phases []int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrNoSignal
	}
	machines := make([]Machine, len(phases))
	for i, phase := range phases {
		vm := intvm.New(program)
		vm.Write(phase)
		machines[i] = vm
	}
	machines[0].Write(0)

	var signal int64
	var ok bool
	last := len(machines) - 1
	r.Machines = machines
	r.OnOutput = func(i int, m Machine) error {
		value := m.Read()
		machines[(i+1)%len(machines)].Write(value)
		if i == last {
			signal = value
			ok = true
		}
		return nil
	}
	if err := r.Run(ctx); err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoSignal
	}
	return signal, nil
}

// Series runs each phase's machine to halt in turn, feeding the previous
// machine's last output as the next machine's signal.
func Series(program intvm.Program, phases []int64) (int64, error) {
	var signal int64
	vm := intvm.New(program)
	for i, phase := range phases {
		if err := vm.Exec(intvm.Inputs(phase, signal)); err != nil {
			return 0, fmt.Errorf("amplifier %d: %w", i, err)
		}
		outputs := vm.Outputs()
		if len(outputs) == 0 {
			return 0, fmt.Errorf("amplifier %d: %w", i, ErrNoSignal)
		}
		signal = outputs[len(outputs)-1]
	}
	return signal, nil
}

type FeedbackFunc func(ctx context.Context, program intvm.Program, phases []int64) (int64, error)

func (Module) Feedback(
	newRoundRobin NewRoundRobin,
) FeedbackFunc {
	return func(ctx context.Context, program intvm.Program, phases []int64) (int64, error) {
		return feedback(ctx, newRoundRobin(nil, nil), program, phases)
	}
}
