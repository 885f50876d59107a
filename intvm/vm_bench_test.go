package intvm

import "testing"

// counts down from the input, outputting nothing
var countdown = Program{
	3, 100, // in [100]
	1001, 100, -1, 100, // add [100], -1, [100]
	1005, 100, 2, // jnz [100], 2
	99,
}

func BenchmarkVM_Step(b *testing.B) {
	vm := New(countdown)
	vm.Write(int64(b.N))
	b.ResetTimer()
	for !vm.IsHalted() {
		if err := vm.Step(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVM_Exec(b *testing.B) {
	vm := New(countdown)
	for b.Loop() {
		if err := vm.Exec(Inputs(1000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	for b.Loop() {
		if _, err := Decode(21107); err != nil {
			b.Fatal(err)
		}
	}
}
