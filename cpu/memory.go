package cpu

import (
	"iter"
	"maps"
	"slices"
)

// Memory is the sparse word-addressed memory of the machine.
// Cells exist only once they have been written.
type Memory struct {
	Cell map[int]int
}

// Load reads the word at an address.
func (mem *Memory) Load(addr int) (value int, err error) {
	value, ok := mem.Cell[addr]
	if !ok {
		err = ErrAddressMissing(addr)
		return
	}

	return
}

// Store writes a word to an address, creating the cell if needed.
func (mem *Memory) Store(addr int, value int) {
	if mem.Cell == nil {
		mem.Cell = make(map[int]int, 16)
	}

	mem.Cell[addr] = value
}

// Indirect reads the address stored at addr, and checks that it is
// inside of the 20-bit address space.
func (mem *Memory) Indirect(addr int) (target int, err error) {
	target, err = mem.Load(addr)
	if err != nil {
		return
	}

	if !ValidAddress(target) {
		err = ErrAddressRange(target)
		return
	}

	return
}

// Len returns the number of written cells.
func (mem *Memory) Len() int {
	return len(mem.Cell)
}

// All returns an iterator over all written cells, in address order.
func (mem *Memory) All() iter.Seq2[int, int] {
	return func(yield func(addr int, value int) bool) {
		for _, addr := range slices.Sorted(maps.Keys(mem.Cell)) {
			if !yield(addr, mem.Cell[addr]) {
				return
			}
		}
	}
}

// Reset clears all of the memory cells.
func (mem *Memory) Reset() {
	clear(mem.Cell)
}
