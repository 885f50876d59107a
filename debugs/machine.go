package debugs

import (
	"fmt"
	"strings"

	"github.com/reusee/intcode/intvm"
	"go.starlark.net/starlark"
)

// maxWindow bounds the cells one memory() call may copy.
const maxWindow = 1 << 16

// MachineGlobals exposes the state of vm to a tap. Values are captured when
// called; the functions act on the live machine. Memory is only reachable
// through functions, since a relative write can put Len far past the cells
// actually used.
func MachineGlobals(vm *intvm.VM) map[string]any {
	return map[string]any{
		"pc":            vm.PC,
		"relative_base": vm.RelativeBase,
		"len_memory":    vm.Memory.Len(),
		"outputs":       vm.PendingOutputs(),
		"steps":         vm.Steps(),
		"halted":        vm.IsHalted(),
		"needs_input":   vm.NeedsInput(),
		"fault":         vm.Err(),

		"write": func(value int64) {
			vm.Write(value)
		},
		"cur_pc": func() int64 {
			return vm.PC
		},

		"step":   starlark.NewBuiltin("step", step(vm)),
		"peek":   starlark.NewBuiltin("peek", peek(vm)),
		"poke":   starlark.NewBuiltin("poke", poke(vm)),
		"memory": starlark.NewBuiltin("memory", memoryWindow(vm)),
		"disasm": starlark.NewBuiltin("disasm", disasm(vm)),
		"decode": starlark.NewBuiltin("decode", decode),
	}
}

type builtinFunc = func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error)

func checkAddr(b *starlark.Builtin, addr int64) error {
	if addr < 0 {
		return fmt.Errorf("%s: negative address %d", b.Name(), addr)
	}
	return nil
}

// step raises the machine's fault as a starlark error.
func step(vm *intvm.VM) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
			return nil, err
		}
		if err := vm.Step(); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		return starlark.None, nil
	}
}

func peek(vm *intvm.VM) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int64
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
			return nil, err
		}
		if err := checkAddr(b, addr); err != nil {
			return nil, err
		}
		return starlark.MakeInt64(vm.Memory.Read(addr)), nil
	}
}

func poke(vm *intvm.VM) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr, value int64
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
			return nil, err
		}
		if err := checkAddr(b, addr); err != nil {
			return nil, err
		}
		vm.Memory.Write(addr, value)
		return starlark.None, nil
	}
}

// memoryWindow returns cells [lo, hi), hi defaulting to len_memory.
func memoryWindow(vm *intvm.VM) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var lo int64
		hi := vm.Memory.Len()
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "lo", &lo, "hi?", &hi); err != nil {
			return nil, err
		}
		if err := checkAddr(b, lo); err != nil {
			return nil, err
		}
		if hi < lo {
			return nil, fmt.Errorf("%s: bad range [%d, %d)", b.Name(), lo, hi)
		}
		if hi-lo > maxWindow {
			return nil, fmt.Errorf("%s: range [%d, %d) exceeds %d cells", b.Name(), lo, hi, maxWindow)
		}
		values := make([]int64, 0, hi-lo)
		for addr := lo; addr < hi; addr++ {
			values = append(values, vm.Memory.Read(addr))
		}
		return int64List(values), nil
	}
}

func disasm(vm *intvm.VM) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		pc := vm.PC
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "pc?", &pc); err != nil {
			return nil, err
		}
		if err := checkAddr(b, pc); err != nil {
			return nil, err
		}
		// parameters print as raw words, so the instruction decodes the same
		// at offset 0 of its own window
		window := make(intvm.Program, 0, 4)
		for addr := pc; addr < min(pc+4, vm.Memory.Len()); addr++ {
			window = append(window, vm.Memory.Read(addr))
		}
		var buf strings.Builder
		if _, err := intvm.Disassemble(window, 0, &buf); err != nil {
			return nil, fmt.Errorf("%s: pc %d: %w", b.Name(), pc, err)
		}
		return starlark.String(buf.String()), nil
	}
}

func decode(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value int64
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "value", &value); err != nil {
		return nil, err
	}
	inst, err := intvm.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return toStarlarkValue(inst), nil
}
