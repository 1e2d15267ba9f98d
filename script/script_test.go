package script

import (
	"bytes"
	"errors"
	"log"
	"maps"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/memory"
)

func doScript(t *testing.T, lines ...string) (emu *emulator.Emulator, output string, err error) {
	emu = emulator.NewEmulator()

	out := &bytes.Buffer{}
	sc := &Script{
		Name:   t.Name(),
		Source: strings.Join(lines, "\n") + "\n",
		Output: out,
	}
	err = sc.Run(emu)
	output = out.String()
	return
}

func TestScript_LoadImmediate(t *testing.T) {
	assert := assert.New(t)

	emu, output, err := doScript(t,
		"reset()",
		"load(RESET_VECTOR, [LDA_IMM, 0x80])",
		"left = run(2)",
		"print(left, reg('a'), reg('pc'), flag('z'), flag('n'))",
	)
	assert.NoError(err)
	assert.Equal("0 128 65534 False True\n", output)
	assert.Equal(uint8(0x80), emu.Cpu.A())
}

func TestScript_Store(t *testing.T) {
	assert := assert.New(t)

	emu, output, err := doScript(t,
		"reset()",
		"set_reg('pc', 0x0200)",
		"set_reg('a', 0x37)",
		"set_status(0xc3)",
		"poke(0x0200, STA_ZP)",
		"poke(0x0201, 0x10)",
		"before = status()",
		"print(step())",
		"print(peek(0x10), status() == before)",
	)
	assert.NoError(err)
	assert.Equal("3\n55 True\n", output)

	value, err := emu.Memory.Read(0x10)
	assert.NoError(err)
	assert.Equal(uint8(0x37), value)
}

func TestScript_Trace(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doScript(t,
		"reset()",
		"load(0x0300, [LDX_ZP, 0x40])",
		"poke(0x40, 0x01)",
		"set_reg('pc', 0x0300)",
		"trace()",
		"run(3)",
		"for kind, addr, value in accesses():",
		"    print(kind, addr, value)",
	)
	assert.NoError(err)
	assert.Equal("fetch 768 166\nfetch 769 64\nread 64 1\n", output)
}

func TestScript_Boot(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doScript(t,
		"reset()",
		"load(RESET_VECTOR, [0x00, 0x04])",
		"print(boot(), boot(vectored=True))",
		"set_flag('c', True)",
		"print(flag('carry'), status() & 0x21)",
	)
	assert.NoError(err)
	assert.Equal("65532 1024\nTrue 33\n", output)
}

func TestScript_Dump(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doScript(t,
		"load(0x0200, [0x41, 0x42, 0x43])",
		"text = dump(0x0200, 4)",
		"print(text.startswith('0200: 41 42 43 00'))",
	)
	assert.NoError(err)
	assert.Equal("True\n", output)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		err    error
	}){
		{"peek_range", "peek(MEM_SIZE)", memory.ErrAddressRange(0)},
		{"poke_value", "poke(0, 256)", ErrByteRange},
		{"load_range", "load(0xffff, [1, 2])", memory.ErrAddressRange(0)},
		{"peek_wide", "peek(0x100000000)", memory.ErrAddressRange(0)},
		{"poke_wide", "poke(0x100000000, 0x5a)", memory.ErrAddressRange(0)},
		{"poke_negative", "poke(-1, 0x5a)", memory.ErrAddressRange(0)},
		{"load_wide", "load(0x100000000, [1])", memory.ErrAddressRange(0)},
		{"dump_wide", "dump(0x100000010)", memory.ErrAddressRange(0)},
		{"reg_name", "reg('q')", cpu.ErrRegisterInvalid},
		{"set_reg_value", "set_reg('a', 0x100)", cpu.ErrRegisterValue},
		{"flag_name", "flag('q')", cpu.ErrFlagInvalid},
		{"fail", "fail('nope')", nil},
	}

	for _, entry := range table {
		_, _, err := doScript(t, entry.source)
		if !assert.Error(err, entry.name) {
			continue
		}

		var se *ErrScript
		if assert.True(errors.As(err, &se), entry.name) {
			assert.Equal(t.Name(), se.Name)
		}
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
		}
	}
}

func TestScript_WideAddress(t *testing.T) {
	assert := assert.New(t)

	emu, _, err := doScript(t, "poke(0x100000000, 0x5a)")
	assert.ErrorIs(err, memory.ErrAddressRange(0))

	value, err := emu.Memory.Read(0)
	assert.NoError(err)
	assert.Equal(uint8(0), value)
}

func TestScript_Strict(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	emu.Cpu.Strict = true
	sc := &Script{
		Name:   "strict",
		Source: "set_reg('pc', 0x0200)\npoke(0x0200, 0x02)\nrun(1)\n",
		Output: &bytes.Buffer{},
	}
	err := sc.Run(emu)
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)

	var rt *emulator.ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(uint16(0x0200), rt.Pc)
	}
}

func TestPredeclared(t *testing.T) {
	assert := assert.New(t)

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	defines := map[string]string{
		"ONE":  "1",
		"PAGE": "0x0100",
		"NAME": "m6502",
	}

	pred := predeclared(maps.All(defines), false)
	assert.Equal(2, len(pred))
	assert.Contains(pred, "PAGE")
	assert.NotContains(pred, "NAME")
	assert.Equal("", logged.String())

	pred = predeclared(maps.All(defines), true)
	assert.Equal(2, len(pred))
	assert.Contains(logged.String(), `script: NAME = "m6502": not an integer, skipped`)
}

func TestEval(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()

	table := [](struct {
		expr  string
		value int64
		ok    bool
	}){
		{"0x10", 0x10, true},
		{"STACK_PAGE + 0xff", 0x01ff, true},
		{"LDA_IMM", 0xa9, true},
		{"'text'", 0, false},
		{"UNDEFINED", 0, false},
	}

	for _, entry := range table {
		value, err := Eval(emu, entry.expr)
		if entry.ok {
			assert.NoError(err, entry.expr)
			assert.Equal(entry.value, value, entry.expr)
		} else {
			assert.Error(err, entry.expr)
		}
	}
}
