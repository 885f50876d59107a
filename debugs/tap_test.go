package debugs

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intvm"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestEvalMachine(t *testing.T) {
	vm := intvm.New(intvm.Program{109, 19, 204, -15, 3, 0, 99})
	if err := vm.RunUntilInput(); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		globals, err := eval(t.Context(), "machine", MachineGlobals(vm), `
state = [pc, relative_base, len_memory, outputs, steps, halted, needs_input, fault]
total = 0
for v in memory(0):
	total += v
op = decode(peek(pc))["op"]
text = disasm()
poke(5, 7)
step()
write(5)
at = cur_pc()
`)
		if err != nil {
			t.Fatal(err)
		}
		if s := globals["state"].String(); s != "[4, 19, 7, [3], 2, False, True, None]" {
			t.Fatalf("got %s", s)
		}
		total, ok := globals["total"].(starlark.Int)
		if !ok {
			t.Fatalf("got %v", globals["total"])
		}
		if n, _ := total.Int64(); n != 109+19+204-15+3+0+99 {
			t.Fatalf("got %v", n)
		}
		if s := globals["op"].String(); s != `"in"` {
			t.Fatalf("got %s", s)
		}
		if s := globals["text"].String(); s != `"in [0]"` {
			t.Fatalf("got %s", s)
		}
		if got := vm.Memory.Read(5); got != 7 {
			t.Fatalf("got %v", got)
		}
		// blocked on input, step is a no-op
		if vm.PC != 4 {
			t.Fatalf("got %v", vm.PC)
		}
		if s := globals["at"].String(); s != "4" {
			t.Fatalf("got %s", s)
		}
		if n := vm.NumInputs(); n != 1 {
			t.Fatalf("got %v", n)
		}
	})
}

func TestEvalFarMemory(t *testing.T) {
	// writes 2 to relative address 1<<40
	vm := intvm.New(intvm.Program{109, 1 << 40, 21101, 1, 1, 0, 99})
	if err := vm.Exec(); err != nil {
		t.Fatal(err)
	}
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		globals, err := eval(t.Context(), "far", MachineGlobals(vm), `
size = len_memory
far = peek(len_memory - 1)
head = memory(0, 3)
tail = memory(len_memory - 2)
`)
		if err != nil {
			t.Fatal(err)
		}
		if s := globals["size"].String(); s != "1099511627777" {
			t.Fatalf("got %s", s)
		}
		if s := globals["far"].String(); s != "2" {
			t.Fatalf("got %s", s)
		}
		if s := globals["head"].String(); s != "[109, 1099511627776, 21101]" {
			t.Fatalf("got %s", s)
		}
		if s := globals["tail"].String(); s != "[0, 2]" {
			t.Fatalf("got %s", s)
		}

		_, err = eval(t.Context(), "far", MachineGlobals(vm), "x = memory(0)\n")
		if err == nil || !strings.Contains(err.Error(), "exceeds") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestEvalBadAddress(t *testing.T) {
	vm := intvm.New(intvm.Program{99})
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		for _, src := range []string{
			"x = peek(-1)\n",
			"poke(-1, 0)\n",
			"x = memory(-1, 0)\n",
			"x = memory(2, 1)\n",
			"x = disasm(-3)\n",
			"x = disasm(10)\n",
			"x = decode(42)\n",
			"poke(0, 42)\nstep()\n",
		} {
			_, err := eval(t.Context(), "bad", MachineGlobals(vm), src)
			if err == nil {
				t.Fatalf("should error: %s", src)
			}
		}
		if got := vm.Memory.Len(); got != 1 {
			t.Fatalf("got %v", got)
		}
	})
}

func TestEvalError(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		_, err := eval(t.Context(), "bad", nil, "x = undefined_name")
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), "undefined") {
			t.Fatalf("got %v", err)
		}
	})
}
