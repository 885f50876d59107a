package intvm

import "strings"

// WriteASCII enqueues every byte of s as one input.
func (v *VM) WriteASCII(s string) {
	for i := 0; i < len(s); i++ {
		v.inputs.push(int64(s[i]))
	}
}

// ReadASCII drains pending outputs as text. Draining stops at the first
// value outside [0, 255), which is consumed and returned as signal with ok
// set; values after it stay queued. Negative values are not characters
// either, so they end the text the same way values of 255 and above do.
func (v *VM) ReadASCII() (text string, signal int64, ok bool) {
	var b strings.Builder
	for {
		value, more := v.outputs.pop()
		if !more {
			return b.String(), 0, false
		}
		if value < 0 || value >= 255 {
			return b.String(), value, true
		}
		b.WriteByte(byte(value))
	}
}
