package cpu

import (
	"fmt"

	"github.com/ezrec/m6502/memory"
)

// Mode is an addressing mode.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED     = Mode(0) // impl
	MODE_IMMEDIATE   = Mode(1) // imm
	MODE_ZERO_PAGE   = Mode(2) // zp
	MODE_ZERO_PAGE_X = Mode(3) // zpx
	MODE_ZERO_PAGE_Y = Mode(4) // zpy
	MODE_ABSOLUTE    = Mode(5) // abs
	MODE_ABSOLUTE_X  = Mode(6) // absx
	MODE_ABSOLUTE_Y  = Mode(7) // absy
	MODE_INDIRECT_X  = Mode(8) // indx
	MODE_INDIRECT_Y  = Mode(9) // indy
)

// Bytes returns the number of operand bytes the mode consumes.
func (mode Mode) Bytes() int {
	switch mode {
	case MODE_IMPLIED:
		return 0
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y:
		return 2
	default:
		return 1
	}
}

// Operand is a resolved addressing mode: either an immediate value, or an
// effective address.
type Operand struct {
	Mode    Mode
	Value   uint8  // Immediate value, when Mode is MODE_IMMEDIATE.
	Address uint16 // Effective address, for all memory modes.
}

// Immediate returns true if the operand is a value rather than an address.
func (op Operand) Immediate() bool {
	return op.Mode == MODE_IMMEDIATE
}

func (op Operand) String() string {
	switch op.Mode {
	case MODE_IMPLIED:
		return op.Mode.String()
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%v #$%02x", op.Mode, op.Value)
	default:
		return fmt.Sprintf("%v $%04x", op.Mode, op.Address)
	}
}

// Resolve consumes the operand bytes of an addressing mode from the
// instruction stream, and returns the immediate value or effective address.
//
// Each operand byte fetched costs a cycle, as does each byte read while
// dereferencing an indirect pointer.
func (cpu *Cpu) Resolve(mode Mode, mem *memory.Memory, cycles *int) (op Operand, err error) {
	op.Mode = mode

	var zp uint8
	var base uint16

	switch mode {
	case MODE_IMPLIED:
		// No operand.
	case MODE_IMMEDIATE:
		op.Value, err = cpu.fetchByte(mem, cycles)
	case MODE_ZERO_PAGE:
		zp, err = cpu.fetchByte(mem, cycles)
		op.Address = uint16(zp)
	case MODE_ZERO_PAGE_X:
		zp, err = cpu.fetchByte(mem, cycles)
		op.Address = uint16(zp + cpu.x) // wraps in the zero page
	case MODE_ZERO_PAGE_Y:
		zp, err = cpu.fetchByte(mem, cycles)
		op.Address = uint16(zp + cpu.y) // wraps in the zero page
	case MODE_ABSOLUTE:
		op.Address, err = cpu.fetchWord(mem, cycles)
	case MODE_ABSOLUTE_X:
		base, err = cpu.fetchWord(mem, cycles)
		op.Address = base + uint16(cpu.x)
	case MODE_ABSOLUTE_Y:
		base, err = cpu.fetchWord(mem, cycles)
		op.Address = base + uint16(cpu.y)
	case MODE_INDIRECT_X:
		zp, err = cpu.fetchByte(mem, cycles)
		if err != nil {
			return
		}
		op.Address, err = cpu.readZeroPageWord(mem, zp+cpu.x, cycles)
	case MODE_INDIRECT_Y:
		zp, err = cpu.fetchByte(mem, cycles)
		if err != nil {
			return
		}
		base, err = cpu.readZeroPageWord(mem, zp, cycles)
		op.Address = base + uint16(cpu.y)
	default:
		err = ErrModeInvalid
	}

	return
}

// value returns the data byte an operand refers to.
func (cpu *Cpu) value(op Operand, mem *memory.Memory, cycles *int) (value uint8, err error) {
	switch op.Mode {
	case MODE_IMPLIED:
		err = ErrModeInvalid
	case MODE_IMMEDIATE:
		value = op.Value
	default:
		value, err = cpu.read(mem, op.Address, ACCESS_READ, cycles)
	}
	return
}
