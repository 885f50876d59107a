package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/intcode/intvm"
)

// echoes one line, then outputs 1000
var echoProgram = intvm.Program{
	3, 100,
	4, 100,
	1008, 100, 10, 101,
	1006, 101, 0,
	104, 1000,
	99,
}

func TestRunASCII(t *testing.T) {
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	err := runASCII(context.Background(), intvm.New(echoProgram), []string{"ab"}, strings.NewReader(""), out)
	if err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "ab\nab\n\n1000\n" {
		t.Fatalf("got %q", s)
	}
}

func TestRunASCIIStdin(t *testing.T) {
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	err := runASCII(context.Background(), intvm.New(echoProgram), nil, strings.NewReader("xyz\n"), out)
	if err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "xyz\n\n1000\n" {
		t.Fatalf("got %q", s)
	}
}

func TestRunASCIIExhausted(t *testing.T) {
	var buf bytes.Buffer
	out := bufio.NewWriter(&buf)
	err := runASCII(context.Background(), intvm.New(echoProgram), nil, strings.NewReader(""), out)
	if !errors.Is(err, intvm.ErrInputExhausted) {
		t.Fatalf("got %v", err)
	}
}

type failWriter struct{}

var errFailWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) {
	return 0, errFailWrite
}

func TestRunASCIIWriteError(t *testing.T) {
	var program intvm.Program
	for _, c := range "a line longer than the buffer\n" {
		program = append(program, 104, int64(c))
	}
	program = append(program, 99)
	out := bufio.NewWriterSize(failWriter{}, 16)
	err := runASCII(context.Background(), intvm.New(program), nil, strings.NewReader(""), out)
	if !errors.Is(err, errFailWrite) {
		t.Fatalf("got %v", err)
	}
}
