package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestModuleForProduction(t *testing.T) {
	dscope.New(new(ModuleForProduction)).Call(func(
		tb testing.TB,
		mode Mode,
	) {
		if tb != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
		if mode.String() != "production" {
			t.Fatalf("got %v", mode)
		}
	})
}
