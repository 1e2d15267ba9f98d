// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/internal"
	"github.com/ezrec/m6502/memory"
)

const (
	DEFAULT_BUDGET = 1000 // Default cycle budget for a single run.
)

var _emulator_defines = map[string]string{
	"DEFAULT_BUDGET": fmt.Sprintf("%v", DEFAULT_BUDGET),
}

// Emulator state. CPU + memory.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	Vectored bool // If set, Boot loads PC from the reset vector.

	*cpu.Cpu                // Reference to the CPU simulation.
	Memory   *memory.Memory // Reference to the address space.
}

// NewEmulator creates a new emulator, with the default instruction set.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:    cpu.NewCpu(nil),
		Memory: memory.NewMemory(),
	}

	emu.Cpu.Reset()

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Memory.Defines(),
		emu.Cpu.Defines(),
	)
}

// Reset clears memory and resets the CPU.
// Programs must be loaded after a reset, never before.
func (emu *Emulator) Reset() {
	if emu.Verbose {
		log.Printf("emulator: reset")
	}

	emu.Memory.Reinitialize()
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// Load copies a program image into memory.
func (emu *Emulator) Load(address uint32, data []uint8) (err error) {
	err = emu.Memory.Load(address, data)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: loaded %d bytes at 0x%04x", len(data), address)
	}

	return
}

// Boot resets the CPU registers, leaving memory intact. When Vectored is
// set, PC is loaded from the word stored at the reset vector.
func (emu *Emulator) Boot() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if !emu.Vectored {
		return
	}

	pc, err := emu.Memory.Word(memory.RESET_VECTOR)
	if err != nil {
		return
	}

	emu.Cpu.SetPC(pc)
	if emu.Verbose {
		log.Printf("emulator: boot 0x%04x", pc)
	}

	return
}

// Run executes with a cycle budget, and returns what is left of it.
func (emu *Emulator) Run(budget int) (remaining int, err error) {
	emu.Cpu.Verbose = emu.Verbose

	remaining = budget
	err = emu.Cpu.Execute(&remaining, emu.Memory)
	if err != nil {
		err = &ErrRuntime{Pc: emu.Cpu.LastPc, Err: err}
	}

	return
}

// Step executes a single instruction, and returns the cycles it consumed.
func (emu *Emulator) Step() (cycles int, err error) {
	emu.Cpu.Verbose = emu.Verbose

	var remaining int
	err = emu.Cpu.Step(&remaining, emu.Memory)
	cycles = -remaining
	if err != nil {
		err = &ErrRuntime{Pc: emu.Cpu.LastPc, Err: err}
	}

	return
}

// Ticks returns the total cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Instructions returns the total instructions since a reset.
func (emu *Emulator) Instructions() int {
	return emu.Cpu.Steps
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.PC())
}
