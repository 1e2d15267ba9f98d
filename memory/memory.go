// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the 64KiB address space of the 6502.
package memory

import (
	"fmt"
	"iter"
	"maps"
	"math/rand"
)

const (
	MEM_SIZE     = 1024 * 64 // Capacity of the address space.
	ZERO_PAGE    = 0x0000    // Base of the zero page.
	STACK_PAGE   = 0x0100    // Base of the stack page.
	PAGE_SIZE    = 0x100     // Size of a single page.
	RESET_VECTOR = 0xfffc    // Location of the reset vector.
)

var _memory_defines = map[string]string{
	"MEM_SIZE":     fmt.Sprintf("%d", MEM_SIZE),
	"ZERO_PAGE":    fmt.Sprintf("0x%04x", ZERO_PAGE),
	"STACK_PAGE":   fmt.Sprintf("0x%04x", STACK_PAGE),
	"PAGE_SIZE":    fmt.Sprintf("0x%x", PAGE_SIZE),
	"RESET_VECTOR": fmt.Sprintf("0x%04x", RESET_VECTOR),
}

// Memory is a zero-filled, byte addressable store.
type Memory struct {
	data [MEM_SIZE]uint8
}

// NewMemory creates a new, zero-filled address space.
func NewMemory() (mem *Memory) {
	mem = &Memory{}

	return
}

// Defines for the memory map.
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_memory_defines)
}

// Reinitialize zeros every byte, emulating power-on.
// Must not be called while a CPU is executing against this memory.
func (mem *Memory) Reinitialize() {
	clear(mem.data[:])
}

// Address checks that a signed value is within the address space.
func Address(value int64) (address uint32, err error) {
	if value < 0 || value >= MEM_SIZE {
		err = ErrAddressRange(value)
		return
	}

	address = uint32(value)
	return
}

// Read returns the byte at address.
func (mem *Memory) Read(address uint32) (value uint8, err error) {
	if address >= MEM_SIZE {
		err = ErrAddressRange(address)
		return
	}

	value = mem.data[address]
	return
}

// Write stores value at address, and returns the stored value.
func (mem *Memory) Write(address uint32, value uint8) (stored uint8, err error) {
	if address >= MEM_SIZE {
		err = ErrAddressRange(address)
		return
	}

	mem.data[address] = value
	stored = mem.data[address]
	return
}

// Word reads a little-endian word at address.
func (mem *Memory) Word(address uint32) (value uint16, err error) {
	lo, err := mem.Read(address)
	if err != nil {
		return
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return
	}

	value = uint16(hi)<<8 | uint16(lo)
	return
}

// Load copies data into memory starting at address.
// Nothing is written if the data does not fit.
func (mem *Memory) Load(address uint32, data []uint8) (err error) {
	if len(data) == 0 {
		return
	}

	end := uint64(address) + uint64(len(data))
	if end > MEM_SIZE {
		err = ErrAddressRange(end - 1)
		return
	}

	copy(mem.data[address:end], data)
	return
}

// Slice returns a copy of length bytes starting at address.
func (mem *Memory) Slice(address uint32, length int) (data []uint8, err error) {
	if length < 0 {
		err = ErrLengthInvalid
		return
	}

	end := uint64(address) + uint64(length)
	if end > MEM_SIZE {
		err = ErrAddressRange(end - 1)
		return
	}

	data = make([]uint8, length)
	copy(data, mem.data[address:end])
	return
}

// Randomize fills memory with a seeded pseudo-random pattern.
func (mem *Memory) Randomize(seed int) {
	rands := rand.New(rand.NewSource(int64(seed)))
	for n := range mem.data {
		mem.data[n] = uint8(rands.Uint32())
	}
}
