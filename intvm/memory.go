package intvm

import "fmt"

// cells at or above denseLimit live in the sparse map
const denseLimit = 1 << 22

// Memory is an unbounded cell store. Unwritten cells read as zero.
//
// Cells below denseLimit are kept in a contiguous slice that grows on
// demand. Programs that jump the relative base far away spill into a map
// instead of allocating the whole gap.
type Memory struct {
	dense  []int64
	sparse map[int64]int64
	high   int64
}

func NewMemory(program Program) *Memory {
	m := new(Memory)
	m.Load(program)
	return m
}

// Load replaces the whole content with a copy of program.
func (m *Memory) Load(program Program) {
	m.dense = make([]int64, len(program))
	copy(m.dense, program)
	m.sparse = nil
	m.high = int64(len(program))
}

func (m *Memory) Read(addr int64) int64 {
	if addr < 0 {
		panic(fmt.Errorf("read %d: %w", addr, ErrNegativeAddress))
	}
	if addr < int64(len(m.dense)) {
		return m.dense[addr]
	}
	return m.sparse[addr]
}

func (m *Memory) Write(addr, value int64) {
	switch {
	case addr < 0:
		panic(fmt.Errorf("write %d: %w", addr, ErrNegativeAddress))
	case addr < int64(len(m.dense)):
		m.dense[addr] = value
	case addr < denseLimit:
		m.grow(addr + 1)
		m.dense[addr] = value
	default:
		if m.sparse == nil {
			m.sparse = make(map[int64]int64)
		}
		m.sparse[addr] = value
	}
	if addr >= m.high {
		m.high = addr + 1
	}
}

func (m *Memory) grow(n int64) {
	if n <= int64(cap(m.dense)) {
		m.dense = m.dense[:n]
		return
	}
	newCap := max(int64(cap(m.dense))*2, n, 64)
	newCap = min(newCap, denseLimit)
	dense := make([]int64, n, newCap)
	copy(dense, m.dense)
	m.dense = dense
}

// Len returns the highest written address plus one.
func (m *Memory) Len() int64 {
	return m.high
}

// Snapshot returns a dense copy of cells [0, Len()).
func (m *Memory) Snapshot() []int64 {
	ret := make([]int64, m.high)
	copy(ret, m.dense)
	for addr, value := range m.sparse {
		ret[addr] = value
	}
	return ret
}
