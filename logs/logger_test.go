package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestSetLevel(t *testing.T) {
	defer level.Set(slog.LevelInfo)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Debug("hidden")
		if err := SetLevel("debug"); err != nil {
			t.Fatal(err)
		}
		logger.Debug("shown")
		if err := SetLevel("nope"); err == nil {
			t.Fatal("should error")
		}
	})
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("got %s", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %s", buf.String())
	}
}
