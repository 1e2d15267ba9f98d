package cpu

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/m6502/internal"
)

// Action is the semantic action of an instruction family.
type Action int

//go:generate go tool stringer -linecomment -type=Action
const (
	ACTION_NOP    = Action(0) // nop
	ACTION_LOAD   = Action(1) // ld
	ACTION_STORE  = Action(2) // st
	ACTION_AND    = Action(3) // and
	ACTION_ORA    = Action(4) // ora
	ACTION_EOR    = Action(5) // eor
	ACTION_PUSH   = Action(6) // ph
	ACTION_PULL   = Action(7) // pl
	ACTION_CALL   = Action(8) // jsr
	ACTION_RETURN = Action(9) // rts
)

// Target is the register operand of an action.
type Target int

//go:generate go tool stringer -linecomment -type=Target
const (
	TARGET_NONE = Target(0) // -
	TARGET_A    = Target(1) // a
	TARGET_X    = Target(2) // x
	TARGET_Y    = Target(3) // y
	TARGET_P    = Target(4) // p
)

// Instruction describes a single opcode.
type Instruction struct {
	Opcode uint8  // The opcode byte.
	Name   string // Mnemonic.
	Mode   Mode   // Addressing mode.
	Action Action // Semantic action.
	Target Target // Register read or written by the action.
	Cycles int    // Worst-case cost; always covers what the engine charges.
}

func (inst Instruction) String() string {
	return fmt.Sprintf("{%s, %v}", inst.Name, inst.Mode)
}

// Define returns the symbolic name of the opcode, ie LDA_IMM.
func (inst Instruction) Define() string {
	if inst.Mode == MODE_IMPLIED {
		return inst.Name
	}
	return inst.Name + "_" + strings.ToUpper(inst.Mode.String())
}

// 6502 instructions, in canonical encoding.
// https://www.nesdev.org/obelisk-6502-guide/reference.html
var Opcodes = []Instruction{
	// Loads
	{0xA9, "LDA", MODE_IMMEDIATE, ACTION_LOAD, TARGET_A, 2},
	{0xA5, "LDA", MODE_ZERO_PAGE, ACTION_LOAD, TARGET_A, 3},
	{0xB5, "LDA", MODE_ZERO_PAGE_X, ACTION_LOAD, TARGET_A, 4},
	{0xAD, "LDA", MODE_ABSOLUTE, ACTION_LOAD, TARGET_A, 4},
	{0xBD, "LDA", MODE_ABSOLUTE_X, ACTION_LOAD, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0xB9, "LDA", MODE_ABSOLUTE_Y, ACTION_LOAD, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0xA1, "LDA", MODE_INDIRECT_X, ACTION_LOAD, TARGET_A, 6},
	{0xB1, "LDA", MODE_INDIRECT_Y, ACTION_LOAD, TARGET_A, 6 /* 5, +1 if page crossed */},
	{0xA2, "LDX", MODE_IMMEDIATE, ACTION_LOAD, TARGET_X, 2},
	{0xA6, "LDX", MODE_ZERO_PAGE, ACTION_LOAD, TARGET_X, 3},
	{0xB6, "LDX", MODE_ZERO_PAGE_Y, ACTION_LOAD, TARGET_X, 4},
	{0xAE, "LDX", MODE_ABSOLUTE, ACTION_LOAD, TARGET_X, 4},
	{0xBE, "LDX", MODE_ABSOLUTE_Y, ACTION_LOAD, TARGET_X, 5 /* 4, +1 if page crossed */},
	{0xA0, "LDY", MODE_IMMEDIATE, ACTION_LOAD, TARGET_Y, 2},
	{0xA4, "LDY", MODE_ZERO_PAGE, ACTION_LOAD, TARGET_Y, 3},
	{0xB4, "LDY", MODE_ZERO_PAGE_X, ACTION_LOAD, TARGET_Y, 4},
	{0xAC, "LDY", MODE_ABSOLUTE, ACTION_LOAD, TARGET_Y, 4},
	{0xBC, "LDY", MODE_ABSOLUTE_X, ACTION_LOAD, TARGET_Y, 5 /* 4, +1 if page crossed */},

	// Stores
	{0x85, "STA", MODE_ZERO_PAGE, ACTION_STORE, TARGET_A, 3},
	{0x95, "STA", MODE_ZERO_PAGE_X, ACTION_STORE, TARGET_A, 4},
	{0x8D, "STA", MODE_ABSOLUTE, ACTION_STORE, TARGET_A, 4},
	{0x9D, "STA", MODE_ABSOLUTE_X, ACTION_STORE, TARGET_A, 5},
	{0x99, "STA", MODE_ABSOLUTE_Y, ACTION_STORE, TARGET_A, 5},
	{0x81, "STA", MODE_INDIRECT_X, ACTION_STORE, TARGET_A, 6},
	{0x91, "STA", MODE_INDIRECT_Y, ACTION_STORE, TARGET_A, 6},
	{0x86, "STX", MODE_ZERO_PAGE, ACTION_STORE, TARGET_X, 3},
	{0x96, "STX", MODE_ZERO_PAGE_Y, ACTION_STORE, TARGET_X, 4},
	{0x8E, "STX", MODE_ABSOLUTE, ACTION_STORE, TARGET_X, 4},
	{0x84, "STY", MODE_ZERO_PAGE, ACTION_STORE, TARGET_Y, 3},
	{0x94, "STY", MODE_ZERO_PAGE_X, ACTION_STORE, TARGET_Y, 4},
	{0x8C, "STY", MODE_ABSOLUTE, ACTION_STORE, TARGET_Y, 4},

	// Logical
	{0x29, "AND", MODE_IMMEDIATE, ACTION_AND, TARGET_A, 2},
	{0x25, "AND", MODE_ZERO_PAGE, ACTION_AND, TARGET_A, 3},
	{0x35, "AND", MODE_ZERO_PAGE_X, ACTION_AND, TARGET_A, 4},
	{0x2D, "AND", MODE_ABSOLUTE, ACTION_AND, TARGET_A, 4},
	{0x3D, "AND", MODE_ABSOLUTE_X, ACTION_AND, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x39, "AND", MODE_ABSOLUTE_Y, ACTION_AND, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x21, "AND", MODE_INDIRECT_X, ACTION_AND, TARGET_A, 6},
	{0x31, "AND", MODE_INDIRECT_Y, ACTION_AND, TARGET_A, 6 /* 5, +1 if page crossed */},
	{0x09, "ORA", MODE_IMMEDIATE, ACTION_ORA, TARGET_A, 2},
	{0x05, "ORA", MODE_ZERO_PAGE, ACTION_ORA, TARGET_A, 3},
	{0x15, "ORA", MODE_ZERO_PAGE_X, ACTION_ORA, TARGET_A, 4},
	{0x0D, "ORA", MODE_ABSOLUTE, ACTION_ORA, TARGET_A, 4},
	{0x1D, "ORA", MODE_ABSOLUTE_X, ACTION_ORA, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x19, "ORA", MODE_ABSOLUTE_Y, ACTION_ORA, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x01, "ORA", MODE_INDIRECT_X, ACTION_ORA, TARGET_A, 6},
	{0x11, "ORA", MODE_INDIRECT_Y, ACTION_ORA, TARGET_A, 6 /* 5, +1 if page crossed */},
	{0x49, "EOR", MODE_IMMEDIATE, ACTION_EOR, TARGET_A, 2},
	{0x45, "EOR", MODE_ZERO_PAGE, ACTION_EOR, TARGET_A, 3},
	{0x55, "EOR", MODE_ZERO_PAGE_X, ACTION_EOR, TARGET_A, 4},
	{0x4D, "EOR", MODE_ABSOLUTE, ACTION_EOR, TARGET_A, 4},
	{0x5D, "EOR", MODE_ABSOLUTE_X, ACTION_EOR, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x59, "EOR", MODE_ABSOLUTE_Y, ACTION_EOR, TARGET_A, 5 /* 4, +1 if page crossed */},
	{0x41, "EOR", MODE_INDIRECT_X, ACTION_EOR, TARGET_A, 6},
	{0x51, "EOR", MODE_INDIRECT_Y, ACTION_EOR, TARGET_A, 6 /* 5, +1 if page crossed */},

	// Stack
	{0x48, "PHA", MODE_IMPLIED, ACTION_PUSH, TARGET_A, 3},
	{0x08, "PHP", MODE_IMPLIED, ACTION_PUSH, TARGET_P, 3},
	{0x68, "PLA", MODE_IMPLIED, ACTION_PULL, TARGET_A, 4},
	{0x28, "PLP", MODE_IMPLIED, ACTION_PULL, TARGET_P, 4},

	// Subroutines
	{0x20, "JSR", MODE_ABSOLUTE, ACTION_CALL, TARGET_NONE, 6},
	{0x60, "RTS", MODE_IMPLIED, ACTION_RETURN, TARGET_NONE, 6},

	{0xEA, "NOP", MODE_IMPLIED, ACTION_NOP, TARGET_NONE, 2},
}

// InstructionSet maps opcode bytes to instructions.
type InstructionSet struct {
	table [256]*Instruction
}

// NewInstructionSet builds an instruction set. Opcodes must be unique.
func NewInstructionSet(insts ...Instruction) (set *InstructionSet, err error) {
	set = &InstructionSet{}

	for n := range insts {
		inst := insts[n]
		if set.table[inst.Opcode] != nil {
			err = errors.Join(ErrOpcode(inst.Opcode), ErrOpcodeDuplicate)
			set = nil
			return
		}
		set.table[inst.Opcode] = &inst
	}

	return
}

var defaultSet *InstructionSet

func init() {
	var err error
	defaultSet, err = NewInstructionSet(Opcodes...)
	if err != nil {
		panic(err)
	}
}

// DefaultInstructionSet returns the instruction set built from Opcodes.
func DefaultInstructionSet() *InstructionSet {
	return defaultSet
}

// Lookup returns the instruction for an opcode byte.
func (set *InstructionSet) Lookup(opcode uint8) (inst *Instruction, ok bool) {
	inst = set.table[opcode]
	ok = inst != nil
	return
}

// All returns an iterator over the instructions, in opcode order.
func (set *InstructionSet) All() iter.Seq[*Instruction] {
	return func(yield func(inst *Instruction) bool) {
		for _, inst := range set.table {
			if inst == nil {
				continue
			}
			if !yield(inst) {
				return
			}
		}
	}
}

// Defines returns the symbolic opcode names, ie LDA_IMM = 0xa9.
func (set *InstructionSet) Defines() iter.Seq2[string, string] {
	defines := map[string]string{}
	for inst := range set.All() {
		defines[inst.Define()] = fmt.Sprintf("0x%02x", inst.Opcode)
	}

	return internal.SortedSeq2(defines)
}
