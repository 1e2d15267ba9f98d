// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/memory"
	"github.com/ezrec/m6502/monitor"
	"github.com/ezrec/m6502/script"
	"github.com/ezrec/m6502/statsview"
)

// parseDump parses an addr:len dump request.
func parseDump(emu *emulator.Emulator, text string) (address uint32, length int, err error) {
	addr_str, len_str, found := strings.Cut(text, ":")
	if !found {
		len_str = "256"
	}

	addr, err := script.Eval(emu, addr_str)
	if err != nil {
		return
	}
	size, err := script.Eval(emu, len_str)
	if err != nil {
		return
	}

	if address, err = memory.Address(addr); err != nil {
		return
	}
	if size < 0 || size > memory.MEM_SIZE {
		err = memory.ErrLengthInvalid
		return
	}

	length = int(size)
	return
}

func main() {
	var image string
	var load_addr string
	var cycles int
	var scenario string
	var interactive bool
	var strict bool
	var precheck bool
	var vector bool
	var trace bool
	var dump string
	var verbose bool
	var stats bool

	flag.StringVar(&image, "l", "", "Binary image to load")
	flag.StringVar(&load_addr, "a", "0x0200", "Image load address")
	flag.IntVar(&cycles, "c", emulator.DEFAULT_BUDGET, "Cycle budget")
	flag.StringVar(&scenario, "s", "", "Starlark scenario to run")
	flag.BoolVar(&interactive, "i", false, "Interactive monitor")
	flag.BoolVar(&strict, "strict", false, "Stop on unhandled opcodes")
	flag.BoolVar(&precheck, "precheck", false, "Do not start instructions the budget cannot cover")
	flag.BoolVar(&vector, "vector", false, "Boot from the word at the reset vector")
	flag.BoolVar(&trace, "trace", false, "Print memory accesses after the run")
	flag.StringVar(&dump, "d", "", "Memory to dump after the run, as addr:len")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&stats, "statsview", false, "Report run throughput, and launch the statistics server")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			log.Printf("%v: statsview server not built in", os.Args[0])
		}
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Vectored = vector
	emu.Cpu.Strict = strict
	emu.Cpu.Precheck = precheck

	emu.Reset()

	if len(image) != 0 {
		data, err := os.ReadFile(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}

		addr, err := script.Eval(emu, load_addr)
		if err != nil {
			log.Fatalf("-a %v: %v", load_addr, err)
		}

		address, err := memory.Address(addr)
		if err != nil {
			log.Fatalf("-a %v: %v", load_addr, err)
		}

		err = emu.Load(address, data)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	err := emu.Boot()
	if err != nil {
		log.Fatal(err)
	}
	emu.Cpu.Tracing = trace

	start := time.Now()

	switch {
	case len(scenario) != 0:
		src, err := os.ReadFile(scenario)
		if err != nil {
			log.Fatalf("%v: %v", scenario, err)
		}

		sc := &script.Script{
			Name:   scenario,
			Source: string(src),
			Output: os.Stdout,
		}
		err = sc.Run(emu)
		if err != nil {
			log.Fatal(err)
		}
	case interactive:
		mon := &monitor.Monitor{
			Emu:    emu,
			Budget: cycles,
		}

		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			old_state, err := term.MakeRaw(fd)
			if err != nil {
				log.Fatal(err)
			}
			err = mon.RunTerminal(struct {
				io.Reader
				io.Writer
			}{os.Stdin, os.Stdout})
			term.Restore(fd, old_state)
			if err != nil {
				log.Fatal(err)
			}
		} else {
			err = mon.Run(os.Stdin, os.Stdout)
			if err != nil {
				log.Fatal(err)
			}
		}
	default:
		remaining, err := emu.Run(cycles)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(emu.Cpu.String())
		fmt.Printf("%5s: %d\n", "left", remaining)
	}

	if stats {
		err = statsview.Report(os.Stderr, emu, time.Since(start))
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, access := range emu.Cpu.Trace {
		fmt.Println(access)
	}

	if len(dump) != 0 {
		address, length, err := parseDump(emu, dump)
		if err != nil {
			log.Fatalf("-d %v: %v", dump, err)
		}
		err = emu.Memory.Dump(os.Stdout, address, length)
		if err != nil {
			log.Fatalf("-d %v: %v", dump, err)
		}
	}
}
