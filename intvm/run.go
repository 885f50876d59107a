package intvm

import "fmt"

// Run steps the machine and yields at every suspension point: after each
// instruction that produced output, when input is needed, and on halt.
// A fault is yielded as an error and ends the iteration.
//
// After InterruptInput the caller is expected to Write before continuing;
// if the queue is still empty when yield returns, Run returns.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for {
		if v.err != nil {
			yield(nil, v.err)
			return
		}

		if v.IsHalted() {
			yield(InterruptHalt, nil)
			return
		}

		if v.NeedsInput() {
			if !yield(InterruptInput, nil) {
				return
			}
			if v.NeedsInput() {
				return
			}
			continue
		}

		outputs := v.outputs.len()
		if err := v.Step(); err != nil {
			yield(nil, err)
			return
		}
		if v.outputs.len() > outputs {
			if !yield(InterruptOutput, nil) {
				return
			}
		}
	}
}

func (v *VM) runUntil(stop func() bool) error {
	for !stop() {
		if v.err != nil {
			return v.err
		}
		if v.IsHalted() || v.NeedsInput() {
			return nil
		}
		if err := v.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunUntilInput steps until the machine needs input or halts.
func (v *VM) RunUntilInput() error {
	return v.runUntil(func() bool {
		return false
	})
}

// RunUntilOutput steps until at least one output is pending, or the machine
// needs input or halts.
func (v *VM) RunUntilOutput() error {
	return v.runUntil(v.HasOutput)
}

// RunUntilHalt steps until halt. Blocking on input is reported as
// ErrInputExhausted.
func (v *VM) RunUntilHalt() error {
	if err := v.RunUntilInput(); err != nil {
		return err
	}
	if !v.IsHalted() {
		return fmt.Errorf("pc=%d: %w", v.PC, ErrInputExhausted)
	}
	return nil
}

type execConfig struct {
	inputs []int64
	noun   *int64
	verb   *int64
}

type ExecOption func(*execConfig)

func Inputs(values ...int64) ExecOption {
	return func(c *execConfig) {
		c.inputs = append(c.inputs, values...)
	}
}

// Noun patches address 1 before execution.
func Noun(n int64) ExecOption {
	return func(c *execConfig) {
		c.noun = &n
	}
}

// Verb patches address 2 before execution.
func Verb(n int64) ExecOption {
	return func(c *execConfig) {
		c.verb = &n
	}
}

// Exec resets the machine, applies options and runs it to halt. Outputs
// are left in the output queue.
func (v *VM) Exec(opts ...ExecOption) error {
	var config execConfig
	for _, opt := range opts {
		opt(&config)
	}
	v.Reset()
	if config.noun != nil {
		v.Memory.Write(1, *config.noun)
	}
	if config.verb != nil {
		v.Memory.Write(2, *config.verb)
	}
	v.WriteAll(config.inputs...)
	return v.RunUntilHalt()
}
