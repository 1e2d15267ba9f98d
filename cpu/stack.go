package cpu

import (
	"github.com/ezrec/m6502/memory"
)

const (
	STACK_PAGE = memory.STACK_PAGE // Base of the stack.
)

// stackAddress is the memory location SP refers to. Only the low byte of SP
// is used, so the stack wraps within its page.
func (cpu *Cpu) stackAddress() uint16 {
	return STACK_PAGE + uint16(uint8(cpu.sp))
}

// Push writes a byte at the stack address, then decrements SP.
func (cpu *Cpu) Push(mem *memory.Memory, value uint8, cycles *int) (err error) {
	err = cpu.write(mem, cpu.stackAddress(), value, cycles)
	if err != nil {
		return
	}

	cpu.sp--
	return
}

// Pull increments SP, then reads the byte at the stack address.
func (cpu *Cpu) Pull(mem *memory.Memory, cycles *int) (value uint8, err error) {
	cpu.sp++
	value, err = cpu.read(mem, cpu.stackAddress(), ACCESS_READ, cycles)
	return
}

// PushWord pushes the high byte, then the low byte.
func (cpu *Cpu) PushWord(mem *memory.Memory, value uint16, cycles *int) (err error) {
	err = cpu.Push(mem, uint8(value>>8), cycles)
	if err != nil {
		return
	}

	err = cpu.Push(mem, uint8(value), cycles)
	return
}

// PullWord pulls the low byte, then the high byte.
func (cpu *Cpu) PullWord(mem *memory.Memory, cycles *int) (value uint16, err error) {
	lo, err := cpu.Pull(mem, cycles)
	if err != nil {
		return
	}
	hi, err := cpu.Pull(mem, cycles)
	if err != nil {
		return
	}

	value = uint16(hi)<<8 | uint16(lo)
	return
}
