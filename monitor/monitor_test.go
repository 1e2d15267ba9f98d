package monitor

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/emulator"
)

func newMonitor() (mon *Monitor) {
	mon = &Monitor{
		Emu: emulator.NewEmulator(),
	}
	mon.Emu.Reset()
	return
}

func TestMonitor_Exec(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	out := &bytes.Buffer{}

	table := [](struct {
		line   string
		output string
	}){
		{"", ""},
		{"w 0x0200 LDA_IMM 0x42 STA_ZP 0x10", ""},
		{"set pc 0x0200", ""},
		{"g 5", "remaining: 0\n"},
		{"m 0x10 1", "0010: 42                                               |B|\n"},
		{"set c 1", ""},
		{"b", "pc: fffc\n"},
	}

	for _, entry := range table {
		out.Reset()
		quit, err := mon.Exec(entry.line, out)
		assert.NoError(err, entry.line)
		assert.False(quit, entry.line)
		assert.Equal(entry.output, out.String(), entry.line)
	}

	quit, err := mon.Exec("q", out)
	assert.NoError(err)
	assert.True(quit)
}

func TestMonitor_Step(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	out := &bytes.Buffer{}

	_, err := mon.Exec("w RESET_VECTOR 0xa2 0x01 0xa0 0x02", out)
	assert.NoError(err)

	out.Reset()
	_, err = mon.Exec("s 2", out)
	assert.NoError(err)

	text := out.String()
	assert.True(strings.HasPrefix(text, "fffc: 2 cycles\nfffe: 2 cycles\n"), text)
	assert.Contains(text, "    x: 01\n")
	assert.Contains(text, "    y: 02\n")
}

func TestMonitor_Opcodes(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	out := &bytes.Buffer{}

	_, err := mon.Exec("o", out)
	assert.NoError(err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	count := 0
	for range mon.Emu.Cpu.InstructionSet().All() {
		count++
	}
	assert.Equal(count, len(lines))
	assert.Contains(lines, "a9 LDA_IMM  imm  2")
	assert.Contains(lines, "08 PHP      impl 3")

	_, err = mon.Exec("o 1", out)
	assert.ErrorIs(err, ErrArgumentCount)
}

func TestMonitor_Errors(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	out := &bytes.Buffer{}

	table := [](struct {
		line string
		err  error
	}){
		{"z", ErrCommandUnknown},
		{"r 1", ErrArgumentCount},
		{"m", ErrArgumentCount},
		{"w 0x10000 1", ErrArgumentRange},
		{"w 0 256", ErrArgumentRange},
		{"set a 0x100", nil},
		{"set q 1", nil},
		{"m nowhere", nil},
	}

	for _, entry := range table {
		_, err := mon.Exec(entry.line, out)
		if !assert.Error(err, entry.line) {
			continue
		}

		var ce *ErrCommand
		if assert.ErrorAs(err, &ce, entry.line) {
			assert.Equal(strings.Fields(entry.line)[0], ce.Command)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.line)
		}
	}
}

func TestMonitor_Run(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()
	in := strings.NewReader("w 0 0x99\nbogus\nm 0 1\nq\nm 0 1\n")
	out := &bytes.Buffer{}

	err := mon.Run(in, out)
	assert.NoError(err)

	lines := strings.Split(out.String(), "\n")
	assert.Equal(3, len(lines))
	assert.Equal("* bogus: command unknown", lines[0])
	assert.True(strings.HasPrefix(lines[1], "0000: 99"), lines[1])
	assert.Equal("", lines[2])
}

func TestMonitor_RunTerminal(t *testing.T) {
	assert := assert.New(t)

	mon := newMonitor()

	out := &bytes.Buffer{}
	rw := struct {
		io.Reader
		io.Writer
	}{
		strings.NewReader("w 0x0300 0x55\rx\rm 0x0300 1\r"),
		out,
	}

	err := mon.RunTerminal(rw)
	assert.NoError(err)
	assert.Contains(out.String(), "0300: 00")
}
