package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/m6502/memory"
)

// Cpu is the simulation context for a 6502 style CPU.
//
// Memory is not owned by the CPU; it is passed to every operation that needs
// it, and must not be mutated by anyone else during Execute or Step.
type Cpu struct {
	Verbose  bool // Set to enable verbose logging.
	Strict   bool // Set to stop on unhandled opcodes, rather than skipping them.
	Precheck bool // Set to refuse instructions the remaining budget cannot cover.
	Tracing  bool // Set to record every memory access into Trace.

	Registers // Register file.

	Ticks  int      // Cycles consumed since reset.
	Steps  int      // Instructions started since reset.
	LastPc uint16   // Address of the most recently started instruction.
	Trace  []Access // Recorded memory accesses, when Tracing.

	set *InstructionSet
}

// NewCpu creates a new CPU decoding through an instruction set.
// A nil set selects DefaultInstructionSet().
func NewCpu(set *InstructionSet) (cpu *Cpu) {
	if set == nil {
		set = DefaultInstructionSet()
	}

	cpu = &Cpu{
		set: set,
	}

	return
}

// InstructionSet returns the instruction set the CPU decodes with.
func (cpu *Cpu) InstructionSet() *InstructionSet {
	return cpu.set
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return cpu.set.Defines()
}

// Reset the CPU state.
// - Sets PC to the reset vector location, and SP to the stack start.
// - Clears the general registers and all flags.
// - Zeros statistics counters, and the trace.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Registers.Reset()
	cpu.Ticks = 0
	cpu.Steps = 0
	cpu.LastPc = 0
	cpu.Trace = nil
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Registers.String()
	text += fmt.Sprintf("%5s: %d\n", "ticks", cpu.Ticks)
	text += fmt.Sprintf("%5s: %d\n", "steps", cpu.Steps)
	return
}

// Execute runs instructions until the cycle budget is exhausted.
//
// The budget is checked only between instructions. By default an
// instruction that starts always completes, which may leave the budget
// negative. With Precheck set, an instruction whose declared cost exceeds
// the remaining budget is not started, and the budget is left as is.
func (cpu *Cpu) Execute(cycles *int, mem *memory.Memory) (err error) {
	for *cycles > 0 {
		if cpu.Precheck {
			var ok bool
			ok, err = cpu.affordable(*cycles, mem)
			if err != nil || !ok {
				return
			}
		}

		err = cpu.Step(cycles, mem)
		if err != nil {
			return
		}
	}

	return
}

// affordable reports whether the instruction at PC fits in the budget.
func (cpu *Cpu) affordable(budget int, mem *memory.Memory) (ok bool, err error) {
	opcode, err := mem.Read(uint32(cpu.pc))
	if err != nil {
		return
	}

	cost := 1
	inst, found := cpu.set.Lookup(opcode)
	if found {
		cost = inst.Cycles
	}

	ok = budget >= cost
	if !ok && cpu.Verbose {
		log.Printf("cpu: %04x: %d cycles left, 0x%02x needs %d", cpu.pc, budget, opcode, cost)
	}

	return
}

// Step executes a single instruction, regardless of the budget.
//
// An unhandled opcode is logged and skipped without consuming any operand
// bytes, unless Strict is set, in which case it is returned as an error.
func (cpu *Cpu) Step(cycles *int, mem *memory.Memory) (err error) {
	cpu.LastPc = cpu.pc

	opcode, err := cpu.fetchByte(mem, cycles)
	if err != nil {
		return
	}

	cpu.Steps++

	inst, ok := cpu.set.Lookup(opcode)
	if !ok {
		if cpu.Strict {
			err = errors.Join(ErrOpcode(opcode), ErrOpcodeUnknown)
			return
		}
		// Following bytes will be decoded as opcodes.
		log.Printf("cpu: %04x: unhandled opcode 0x%02x", cpu.LastPc, opcode)
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(opcode), err)
		}
	}()

	operand, err := cpu.Resolve(inst.Mode, mem, cycles)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %04x: %v %v", cpu.LastPc, inst.Name, operand)
	}

	err = cpu.perform(inst, operand, mem, cycles)
	return
}

// perform carries out the action of a decoded instruction.
func (cpu *Cpu) perform(inst *Instruction, op Operand, mem *memory.Memory, cycles *int) (err error) {
	var value uint8

	switch inst.Action {
	case ACTION_NOP:
		// pass
	case ACTION_LOAD:
		value, err = cpu.value(op, mem, cycles)
		if err != nil {
			return
		}
		err = cpu.setTarget(inst.Target, value)
		if err != nil {
			return
		}
		cpu.setZN(value)
	case ACTION_STORE:
		if op.Immediate() || op.Mode == MODE_IMPLIED {
			err = ErrModeInvalid
			return
		}
		value, err = cpu.target(inst.Target)
		if err != nil {
			return
		}
		err = cpu.write(mem, op.Address, value, cycles)
	case ACTION_AND, ACTION_ORA, ACTION_EOR:
		value, err = cpu.value(op, mem, cycles)
		if err != nil {
			return
		}
		cpu.a = doLogic(inst.Action, cpu.a, value)
		cpu.setZN(cpu.a)
	case ACTION_PUSH:
		value, err = cpu.target(inst.Target)
		if err != nil {
			return
		}
		if inst.Target == TARGET_P {
			value |= FLAG_BREAK
		}
		err = cpu.Push(mem, value, cycles)
	case ACTION_PULL:
		value, err = cpu.Pull(mem, cycles)
		if err != nil {
			return
		}
		err = cpu.setTarget(inst.Target, value)
		if err != nil {
			return
		}
		if inst.Target != TARGET_P {
			cpu.setZN(value)
		}
	case ACTION_CALL:
		// PC is past the operand; push the address of its last byte.
		err = cpu.PushWord(mem, cpu.pc-1, cycles)
		if err != nil {
			return
		}
		cpu.pc = op.Address
	case ACTION_RETURN:
		var ret uint16
		ret, err = cpu.PullWord(mem, cycles)
		if err != nil {
			return
		}
		cpu.pc = ret + 1
	default:
		err = ErrActionInvalid
	}

	return
}

// target reads a register operand, without side effects.
func (cpu *Cpu) target(target Target) (value uint8, err error) {
	switch target {
	case TARGET_A:
		value = cpu.a
	case TARGET_X:
		value = cpu.x
	case TARGET_Y:
		value = cpu.y
	case TARGET_P:
		value = cpu.Status()
	default:
		err = ErrTargetInvalid
	}
	return
}

// setTarget writes a register operand. Flags are the caller's concern,
// except for the status register itself.
func (cpu *Cpu) setTarget(target Target, value uint8) (err error) {
	switch target {
	case TARGET_A:
		cpu.a = value
	case TARGET_X:
		cpu.x = value
	case TARGET_Y:
		cpu.y = value
	case TARGET_P:
		cpu.SetStatus(value)
	default:
		err = ErrTargetInvalid
	}
	return
}

// doLogic performs the requested logical action, and returns the output value.
func doLogic(action Action, input uint8, value uint8) (output uint8) {
	switch action {
	case ACTION_AND:
		output = input & value
	case ACTION_ORA:
		output = input | value
	case ACTION_EOR:
		output = input ^ value
	}

	return
}
