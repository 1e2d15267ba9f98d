package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/m6502/memory"
)

// Status register bit layout.
const (
	FLAG_CARRY     = uint8(1 << 0) // C
	FLAG_ZERO      = uint8(1 << 1) // Z
	FLAG_INTERRUPT = uint8(1 << 2) // I
	FLAG_DECIMAL   = uint8(1 << 3) // D
	FLAG_BREAK     = uint8(1 << 4) // B
	FLAG_UNUSED    = uint8(1 << 5) // Always set when read.
	FLAG_OVERFLOW  = uint8(1 << 6) // V
	FLAG_NEGATIVE  = uint8(1 << 7) // N
)

// Register values after Reset.
const (
	RESET_PC = memory.RESET_VECTOR // Placeholder; the vector is not read.
	RESET_SP = 0x0100
)

// Flags holds the processor status bits.
type Flags struct {
	Carry            bool
	Zero             bool
	InterruptDisable bool
	Decimal          bool
	Break            bool
	Overflow         bool
	Negative         bool
}

// setZN derives Zero and Negative from a result value.
func (fl *Flags) setZN(value uint8) {
	fl.Zero = value == 0
	fl.Negative = (value & 0x80) != 0
}

// flag returns the named flag.
func (fl *Flags) flag(name string) (ptr *bool, err error) {
	switch strings.ToLower(name) {
	case "c", "carry":
		ptr = &fl.Carry
	case "z", "zero":
		ptr = &fl.Zero
	case "i", "interrupt":
		ptr = &fl.InterruptDisable
	case "d", "decimal":
		ptr = &fl.Decimal
	case "b", "break":
		ptr = &fl.Break
	case "v", "overflow":
		ptr = &fl.Overflow
	case "n", "negative":
		ptr = &fl.Negative
	default:
		err = ErrFlagInvalid
	}
	return
}

// Flag returns the state of the named flag (c, z, i, d, b, v, n).
func (fl *Flags) Flag(name string) (set bool, err error) {
	ptr, err := fl.flag(name)
	if err != nil {
		return
	}

	set = *ptr
	return
}

// SetFlag sets the state of the named flag.
func (fl *Flags) SetFlag(name string, set bool) (err error) {
	ptr, err := fl.flag(name)
	if err != nil {
		return
	}

	*ptr = set
	return
}

// Registers is the register file of the CPU.
type Registers struct {
	Flags

	pc uint16 // program counter
	sp uint16 // stack pointer, offset into the stack page
	a  uint8  // accumulator
	x  uint8  // index register
	y  uint8  // index register
}

// Reset sets PC and SP to their reset values and clears everything else.
func (r *Registers) Reset() {
	*r = Registers{
		pc: RESET_PC,
		sp: RESET_SP,
	}
}

func (r *Registers) PC() uint16 {
	return r.pc
}

func (r *Registers) SetPC(value uint16) {
	r.pc = value
}

func (r *Registers) SP() uint16 {
	return r.sp
}

func (r *Registers) SetSP(value uint16) {
	r.sp = value
}

func (r *Registers) A() uint8 {
	return r.a
}

// SetA sets the accumulator, and derives Zero and Negative from it.
func (r *Registers) SetA(value uint8) {
	r.a = value
	r.setZN(value)
}

func (r *Registers) X() uint8 {
	return r.x
}

// SetX sets the X register, and derives Zero and Negative from it.
func (r *Registers) SetX(value uint8) {
	r.x = value
	r.setZN(value)
}

func (r *Registers) Y() uint8 {
	return r.y
}

// SetY sets the Y register, and derives Zero and Negative from it.
func (r *Registers) SetY(value uint8) {
	r.y = value
	r.setZN(value)
}

// Status packs the flags into the status byte. The unused bit is always set.
func (r *Registers) Status() (status uint8) {
	bits := []struct {
		set  bool
		mask uint8
	}{
		{r.Carry, FLAG_CARRY},
		{r.Zero, FLAG_ZERO},
		{r.InterruptDisable, FLAG_INTERRUPT},
		{r.Decimal, FLAG_DECIMAL},
		{r.Break, FLAG_BREAK},
		{true, FLAG_UNUSED},
		{r.Overflow, FLAG_OVERFLOW},
		{r.Negative, FLAG_NEGATIVE},
	}

	for _, bit := range bits {
		if bit.set {
			status |= bit.mask
		}
	}

	return
}

// SetStatus unpacks the status byte into the flags. The unused bit is ignored.
func (r *Registers) SetStatus(status uint8) {
	r.Carry = (status & FLAG_CARRY) != 0
	r.Zero = (status & FLAG_ZERO) != 0
	r.InterruptDisable = (status & FLAG_INTERRUPT) != 0
	r.Decimal = (status & FLAG_DECIMAL) != 0
	r.Break = (status & FLAG_BREAK) != 0
	r.Overflow = (status & FLAG_OVERFLOW) != 0
	r.Negative = (status & FLAG_NEGATIVE) != 0
}

// Register returns the named register (pc, sp, a, x, y, p).
func (r *Registers) Register(name string) (value uint16, err error) {
	switch strings.ToLower(name) {
	case "pc":
		value = r.pc
	case "sp":
		value = r.sp
	case "a":
		value = uint16(r.a)
	case "x":
		value = uint16(r.x)
	case "y":
		value = uint16(r.y)
	case "p":
		value = uint16(r.Status())
	default:
		err = ErrRegisterInvalid
	}
	return
}

// SetRegister sets the named register through its setter.
func (r *Registers) SetRegister(name string, value uint16) (err error) {
	name = strings.ToLower(name)
	switch name {
	case "pc":
		r.pc = value
		return
	case "sp":
		r.sp = value
		return
	case "a", "x", "y", "p":
		// 8-bit registers.
	default:
		err = ErrRegisterInvalid
		return
	}

	if value > 0xff {
		err = ErrRegisterValue
		return
	}

	switch name {
	case "a":
		r.SetA(uint8(value))
	case "x":
		r.SetX(uint8(value))
	case "y":
		r.SetY(uint8(value))
	case "p":
		r.SetStatus(uint8(value))
	}
	return
}

// statusString renders the status byte as NV-BDIZC, lowercase when clear.
func (r *Registers) statusString() string {
	status := r.Status()
	letters := "nv-bdizc"

	var sb strings.Builder
	for n := range 8 {
		ch := letters[n]
		if ch != '-' && status&(0x80>>n) != 0 {
			ch -= 'a' - 'A'
		}
		sb.WriteByte(ch)
	}

	return sb.String()
}

// String returns the register file as text.
func (r *Registers) String() (text string) {
	regs := []string{"pc", "sp", "a", "x", "y", "p"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04x", r.pc)
		case "sp":
			strval = fmt.Sprintf("%04x", r.sp)
		case "a":
			strval = fmt.Sprintf("%02x", r.a)
		case "x":
			strval = fmt.Sprintf("%02x", r.x)
		case "y":
			strval = fmt.Sprintf("%02x", r.y)
		case "p":
			strval = fmt.Sprintf("%02x %v", r.Status(), r.statusString())
		}
		text += fmt.Sprintf("%5s: %v\n", reg, strval)
	}

	return
}
