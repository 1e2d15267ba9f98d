package cpu

import (
	"fmt"

	"github.com/ezrec/m6502/memory"
)

// AccessKind classifies a memory access made by the CPU.
type AccessKind int

//go:generate go tool stringer -linecomment -type=AccessKind
const (
	ACCESS_FETCH = AccessKind(0) // fetch
	ACCESS_READ  = AccessKind(1) // read
	ACCESS_WRITE = AccessKind(2) // write
)

// Access is a single recorded memory access.
type Access struct {
	Kind    AccessKind
	Address uint16
	Value   uint8
}

func (ac Access) String() string {
	return fmt.Sprintf("%v %04x %02x", ac.Kind, ac.Address, ac.Value)
}

// charge deducts one cycle for a completed access.
func (cpu *Cpu) charge(cycles *int, access Access) {
	*cycles--
	cpu.Ticks++
	if cpu.Tracing {
		cpu.Trace = append(cpu.Trace, access)
	}
}

func (cpu *Cpu) read(mem *memory.Memory, address uint16, kind AccessKind, cycles *int) (value uint8, err error) {
	value, err = mem.Read(uint32(address))
	if err != nil {
		return
	}

	cpu.charge(cycles, Access{Kind: kind, Address: address, Value: value})
	return
}

func (cpu *Cpu) write(mem *memory.Memory, address uint16, value uint8, cycles *int) (err error) {
	_, err = mem.Write(uint32(address), value)
	if err != nil {
		return
	}

	cpu.charge(cycles, Access{Kind: ACCESS_WRITE, Address: address, Value: value})
	return
}

// fetchByte reads the byte at PC, and advances PC.
func (cpu *Cpu) fetchByte(mem *memory.Memory, cycles *int) (value uint8, err error) {
	value, err = cpu.read(mem, cpu.pc, ACCESS_FETCH, cycles)
	if err != nil {
		return
	}

	cpu.pc++
	return
}

// fetchWord reads the little-endian word at PC, and advances PC past it.
func (cpu *Cpu) fetchWord(mem *memory.Memory, cycles *int) (value uint16, err error) {
	lo, err := cpu.fetchByte(mem, cycles)
	if err != nil {
		return
	}
	hi, err := cpu.fetchByte(mem, cycles)
	if err != nil {
		return
	}

	value = uint16(hi)<<8 | uint16(lo)
	return
}

// readZeroPageWord reads a little-endian pointer from the zero page. The
// high byte of a pointer at 0xff comes from 0x00.
func (cpu *Cpu) readZeroPageWord(mem *memory.Memory, zp uint8, cycles *int) (value uint16, err error) {
	lo, err := cpu.read(mem, uint16(zp), ACCESS_READ, cycles)
	if err != nil {
		return
	}
	hi, err := cpu.read(mem, uint16(zp+1), ACCESS_READ, cycles)
	if err != nil {
		return
	}

	value = uint16(hi)<<8 | uint16(lo)
	return
}
