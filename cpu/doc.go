// Package cpu implements the execution engine of a 6502 style microprocessor.
//
// The CPU consists of a 16-bit program counter, a stack pointer into the
// stack page at 0x0100, an accumulator, two index registers, and seven status
// flags. Instructions are decoded through an InstructionSet, a table keyed by
// opcode byte that names the addressing mode, action, and register operand of
// each instruction.
//
// Execution is driven by a caller owned cycle budget. Every memory access the
// engine performs (opcode fetch, operand fetch, pointer dereference, data
// read or write) costs one cycle. The budget is only checked between
// instructions, so an instruction that starts always completes, and the
// budget may end below zero. Setting Cpu.Precheck instead refuses to start an
// instruction whose declared cost exceeds the remaining budget.
package cpu
