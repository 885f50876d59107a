package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		tb testing.TB,
		mode Mode,
	) {
		if tb != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func BenchmarkForTest(b *testing.B) {
	dscope.New(ForTest(b)).Call(func(
		tb testing.TB,
	) {
		if tb != b {
			b.Fatal()
		}
	})
}
