// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script drives an emulator from Starlark scenarios.
//
// A scenario sets up memory and registers, runs the CPU for a cycle
// budget, and inspects the results:
//
//	reset()
//	load(RESET_VECTOR, [LDA_IMM, 0x42])
//	left = run(2)
//	if reg("a") != 0x42:
//	    fail("a = %x" % reg("a"))
//
// All emulator defines (opcode names such as LDA_IMM, and memory constants
// such as STACK_PAGE) are predeclared as integers.
package script

import (
	"io"
	"iter"
	"log"
	"os"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/m6502/emulator"
)

// Script is a named Starlark scenario.
type Script struct {
	Name   string    // Name used in error messages.
	Source string    // Starlark source text.
	Output io.Writer // Destination of print(); os.Stdout if nil.
}

// predeclared converts defines into Starlark integers.
// Non-integer defines are skipped.
func predeclared(defines iter.Seq2[string, string], verbose bool) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, str := range defines {
		value, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			if verbose {
				log.Printf("script: %v = %q: not an integer, skipped", key, str)
			}
			continue
		}
		pred[key] = starlark.MakeInt64(value)
	}

	return
}

// Run executes the script against an emulator.
func (sc *Script) Run(emu *emulator.Emulator) (err error) {
	defer func() {
		if err != nil {
			err = &ErrScript{Name: sc.Name, Err: err}
		}
	}()

	output := sc.Output
	if output == nil {
		output = os.Stdout
	}

	thread := &starlark.Thread{
		Name: sc.Name,
		Print: func(_ *starlark.Thread, msg string) {
			io.WriteString(output, msg+"\n")
		},
	}

	pred := predeclared(emu.Defines(), emu.Verbose)
	for name, fn := range builtins(emu) {
		pred[name] = starlark.NewBuiltin(name, fn)
	}

	opts := syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
	}
	_, err = starlark.ExecFileOptions(&opts, thread, sc.Name, sc.Source, pred)
	return
}

// Eval evaluates a single expression, with the emulator defines in scope.
func Eval(emu *emulator.Emulator, expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared(emu.Defines(), emu.Verbose))
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrExpression
		return
	}

	return
}
