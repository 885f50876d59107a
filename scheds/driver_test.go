package scheds

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reusee/intcode/intvm"
)

func TestDriver(t *testing.T) {
	program := intvm.Program{
		104, 1, 104, 2, 104, 3,
		3, 20,
		1002, 20, 2, 20,
		104, 0, 104, 0, 4, 20,
		99,
	}
	var frames []string
	inputs := 0
	err := Driver{
		Frame: 3,
		OnFrame: func(frame []int64) error {
			frames = append(frames, fmt.Sprint(frame))
			return nil
		},
		NextInput: func() (int64, error) {
			inputs++
			return 21, nil
		},
	}.Run(context.Background(), intvm.New(program))
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(frames) != "[[1 2 3] [0 0 42]]" {
		t.Fatalf("got %v", frames)
	}
	if inputs != 1 {
		t.Fatalf("got %v", inputs)
	}
}

func TestDriverPartialFrame(t *testing.T) {
	err := Driver{
		Frame: 3,
	}.Run(context.Background(), intvm.New(intvm.Program{104, 1, 99}))
	if !errors.Is(err, ErrPartialFrame) {
		t.Fatalf("got %v", err)
	}
}

func TestDriverNoInput(t *testing.T) {
	err := Driver{}.Run(context.Background(), intvm.New(intvm.Program{3, 0, 99}))
	if !errors.Is(err, intvm.ErrInputExhausted) {
		t.Fatalf("got %v", err)
	}

	stop := errors.New("stop")
	err = Driver{
		NextInput: func() (int64, error) {
			return 0, stop
		},
	}.Run(context.Background(), intvm.New(intvm.Program{3, 0, 99}))
	if !errors.Is(err, stop) {
		t.Fatalf("got %v", err)
	}
}
