package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/intcode/intvm"
	"go.starlark.net/starlark"
)

func dict(kvs ...starlark.Value) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		d.SetKey(kvs[i], kvs[i+1])
	}
	return d
}

func ints(values ...int64) *starlark.List {
	return int64List(values)
}

func TestToStarlarkValue(t *testing.T) {
	type registers struct {
		PC           int64
		RelativeBase int64
		pending      int
	}
	regs := &registers{PC: 4, RelativeBase: 19, pending: 1}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		// machine state
		{"program", intvm.Program{109, 1, 99}, ints(109, 1, 99)},
		{"outputs", []int64{-1, 1125899906842624}, ints(-1, 1125899906842624)},
		{"empty outputs", []int64{}, ints()},
		{"opcode", intvm.OpAdjustBase, starlark.String("arb")},
		{"unknown opcode", intvm.OpCode(42), starlark.String("op(42)")},
		{"mode", intvm.ModeRelative, starlark.String("relative")},
		{"instruction", intvm.Instruction{
			Op:     intvm.OpAdd,
			Modes:  [3]intvm.Mode{intvm.ModeImmediate, intvm.ModeRelative, intvm.ModePosition},
			Inputs: 2, Outputs: 1,
		}, dict(
			starlark.String("op"), starlark.String("add"),
			starlark.String("modes"), starlark.NewList([]starlark.Value{
				starlark.String("immediate"), starlark.String("relative"), starlark.String("position"),
			}),
			starlark.String("inputs"), starlark.MakeInt(2),
			starlark.String("width"), starlark.MakeInt(4),
		)},
		{"fault", &intvm.Fault{PC: 7, Value: 42, Err: intvm.ErrUnknownOpcode}, dict(
			starlark.String("pc"), starlark.MakeInt(7),
			starlark.String("value"), starlark.MakeInt(42),
			starlark.String("error"), starlark.String(intvm.ErrUnknownOpcode.Error()),
		)},
		{"no fault", error(nil), starlark.None},
		{"error", errors.New("input exhausted"), starlark.String("input exhausted")},
		{"registers", regs, dict(
			starlark.String("PC"), starlark.MakeInt(4),
			starlark.String("RelativeBase"), starlark.MakeInt(19),
		)},
		{"starlark value", starlark.String("as is"), starlark.String("as is")},

		// plain values
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int32", int32(42), starlark.MakeInt(42)},
		{"uint64", uint64(42), starlark.MakeUint64(42)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map[string]any", map[string]any{"pc": int64(4), "halted": false}, dict(
			starlark.String("pc"), starlark.MakeInt(4),
			starlark.String("halted"), starlark.False,
		)},
		{"map[int64]int64", map[int64]int64{1 << 40: 2}, dict(
			starlark.MakeInt64(1<<40), starlark.MakeInt(2),
		)},
		{"nil pointer", (*registers)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
