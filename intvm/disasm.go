package intvm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

func formatParam(mode Mode, param int64) string {
	switch mode {
	case ModeImmediate:
		return strconv.FormatInt(param, 10)
	case ModeRelative:
		if param < 0 {
			return "[rb" + strconv.FormatInt(param, 10) + "]"
		}
		return "[rb+" + strconv.FormatInt(param, 10) + "]"
	}
	return "[" + strconv.FormatInt(param, 10) + "]"
}

// Disassemble writes the instruction at pc to w and returns the address of
// the next one. Words that do not decode are written as data.
func Disassemble(program Program, pc int64, w io.Writer) (next int64, err error) {
	if pc < 0 || pc >= int64(len(program)) {
		return pc, fmt.Errorf("pc %d out of range [0, %d)", pc, len(program))
	}
	value := program[pc]
	inst, decodeErr := Decode(value)
	if decodeErr != nil {
		_, err = fmt.Fprintf(w, ".data %d", value)
		return pc + 1, err
	}
	if _, err = io.WriteString(w, inst.Op.String()); err != nil {
		return pc, err
	}
	for i, mode := range inst.ParamModes() {
		sep := " "
		if i > 0 {
			sep = ", "
		}
		addr := pc + 1 + int64(i)
		if addr >= int64(len(program)) {
			_, err = io.WriteString(w, sep+"???")
			return int64(len(program)), err
		}
		if _, err = io.WriteString(w, sep+formatParam(mode, program[addr])); err != nil {
			return pc, err
		}
	}
	return pc + inst.Width(), nil
}

// DisassembleAll writes one line per instruction, prefixed with its address.
func DisassembleAll(program Program, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for pc := int64(0); pc < int64(len(program)); {
		if _, err := fmt.Fprintf(bw, "%6d\t", pc); err != nil {
			return err
		}
		var err error
		pc, err = Disassemble(program, pc, bw)
		if err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
