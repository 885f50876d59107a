package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest selects development behaviour, such as direct network
// connections, and exposes the running test or benchmark.
type ModuleForTest struct {
	dscope.Module
	tb testing.TB
}

func ForTest(tb testing.TB) ModuleForTest {
	return ModuleForTest{
		tb: tb,
	}
}

func (m ModuleForTest) T() testing.TB {
	return m.tb
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
