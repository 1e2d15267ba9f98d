// Package monitor is an interactive command line for the emulator.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/script"
)

const (
	PROMPT      = "m6502> " // Prompt for interactive input.
	DUMP_LENGTH = 64        // Default length for the 'm' command.
)

var _help = []string{
	"r                 registers",
	"m addr [len]      dump memory",
	"w addr byte...    write memory",
	"s [n]             step n instructions",
	"g [cycles]        run for a cycle budget",
	"x                 reset memory and registers",
	"b                 boot from the reset vector",
	"set name value    set a register or flag",
	"o                 list opcodes",
	"q                 quit",
}

// Monitor executes commands against an emulator.
type Monitor struct {
	Emu    *emulator.Emulator // Emulator to control.
	Budget int                // Default budget for 'g'; DEFAULT_BUDGET if zero.
}

// number evaluates an argument; emulator defines may be used by name.
func (mon *Monitor) number(arg string, limit int64) (value int64, err error) {
	value, err = script.Eval(mon.Emu, arg)
	if err != nil {
		return
	}

	if value < 0 || value > limit {
		err = ErrArgumentRange
		return
	}

	return
}

// Exec runs a single command line, writing any output to out.
func (mon *Monitor) Exec(line string, out io.Writer) (quit bool, err error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	cmd, args := words[0], words[1:]
	defer func() {
		if err != nil {
			err = &ErrCommand{Command: cmd, Err: err}
		}
	}()

	emu := mon.Emu

	argc := func(least, most int) (err error) {
		if len(args) < least || len(args) > most {
			err = ErrArgumentCount
		}
		return
	}

	switch cmd {
	case "q":
		quit = true
	case "h", "?":
		for _, text := range _help {
			fmt.Fprintln(out, text)
		}
	case "r":
		if err = argc(0, 0); err != nil {
			return
		}
		fmt.Fprint(out, emu.Cpu.String())
	case "x":
		if err = argc(0, 0); err != nil {
			return
		}
		emu.Reset()
	case "b":
		if err = argc(0, 0); err != nil {
			return
		}
		if err = emu.Boot(); err != nil {
			return
		}
		fmt.Fprintf(out, "pc: %04x\n", emu.Pc())
	case "m":
		if err = argc(1, 2); err != nil {
			return
		}
		var addr, length int64
		length = DUMP_LENGTH
		if addr, err = mon.number(args[0], 0xffff); err != nil {
			return
		}
		if len(args) > 1 {
			if length, err = mon.number(args[1], 0x10000); err != nil {
				return
			}
		}
		err = emu.Memory.Dump(out, uint32(addr), int(length))
	case "w":
		if err = argc(2, 256); err != nil {
			return
		}
		var addr int64
		if addr, err = mon.number(args[0], 0xffff); err != nil {
			return
		}
		data := make([]uint8, len(args)-1)
		for n, arg := range args[1:] {
			var value int64
			if value, err = mon.number(arg, 0xff); err != nil {
				return
			}
			data[n] = uint8(value)
		}
		err = emu.Load(uint32(addr), data)
	case "s":
		if err = argc(0, 1); err != nil {
			return
		}
		count := int64(1)
		if len(args) > 0 {
			if count, err = mon.number(args[0], 1<<20); err != nil {
				return
			}
		}
		for range count {
			pc := emu.Pc()
			var cycles int
			if cycles, err = emu.Step(); err != nil {
				return
			}
			fmt.Fprintf(out, "%04x: %d cycles\n", pc, cycles)
		}
		fmt.Fprint(out, emu.Cpu.String())
	case "g":
		if err = argc(0, 1); err != nil {
			return
		}
		budget := int64(mon.Budget)
		if budget == 0 {
			budget = emulator.DEFAULT_BUDGET
		}
		if len(args) > 0 {
			if budget, err = mon.number(args[0], 1<<30); err != nil {
				return
			}
		}
		var remaining int
		if remaining, err = emu.Run(int(budget)); err != nil {
			return
		}
		fmt.Fprintf(out, "remaining: %d\n", remaining)
	case "o":
		if err = argc(0, 0); err != nil {
			return
		}
		for inst := range emu.Cpu.InstructionSet().All() {
			fmt.Fprintf(out, "%02x %-8s %-4v %d\n", inst.Opcode, inst.Define(), inst.Mode, inst.Cycles)
		}
	case "set":
		if err = argc(2, 2); err != nil {
			return
		}
		var value int64
		if value, err = mon.number(args[1], 0xffff); err != nil {
			return
		}
		err = emu.Cpu.SetRegister(args[0], uint16(value))
		if errors.Is(err, cpu.ErrRegisterInvalid) {
			err = emu.Cpu.SetFlag(args[0], value != 0)
		}
	default:
		err = ErrCommandUnknown
	}

	return
}

// Run reads commands from in until 'q' or end of input. Command errors are
// reported to out, and do not stop the monitor.
func (mon *Monitor) Run(in io.Reader, out io.Writer) (err error) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, cmd_err := mon.Exec(scanner.Text(), out)
		if cmd_err != nil {
			fmt.Fprintf(out, "* %v\n", cmd_err)
		}
		if quit {
			return
		}
	}

	err = scanner.Err()
	return
}

// RunTerminal is Run with line editing and history, for use on a terminal
// in raw mode.
func (mon *Monitor) RunTerminal(rw io.ReadWriter) (err error) {
	terminal := term.NewTerminal(rw, PROMPT)
	for {
		var line string
		line, err = terminal.ReadLine()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			return
		}

		quit, cmd_err := mon.Exec(line, terminal)
		if cmd_err != nil {
			fmt.Fprintf(terminal, "* %v\n", cmd_err)
		}
		if quit {
			return
		}
	}
}
