package storage

import (
	"sync"

	"blinkytree-go/errcode"
)

// Memory is an in-RAM Device. It starts erased and counts physical writes.
type Memory struct {
	mu     sync.Mutex
	cells  []byte
	writes int
}

func NewMemory(size int) *Memory {
	c := make([]byte, size)
	for i := range c {
		c[i] = Erased
	}
	return &Memory{cells: c}
}

func (m *Memory) ReadByte(addr uint16) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.cells) {
		return 0, errcode.New(errcode.StorageIO, "memory.read", "address out of range")
	}
	return m.cells[addr], nil
}

func (m *Memory) WriteByte(addr uint16, v byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.cells) {
		return errcode.New(errcode.StorageIO, "memory.write", "address out of range")
	}
	m.cells[addr] = v
	m.writes++
	return nil
}

// Writes reports how many physical writes reached the cells.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
