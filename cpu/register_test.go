package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_Reset(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	r.SetA(0x12)
	r.SetX(0x34)
	r.SetY(0x56)
	r.SetStatus(0xff)
	r.SetPC(0x1234)

	r.Reset()

	assert.Equal(uint16(0xfffc), r.PC())
	assert.Equal(uint16(0x0100), r.SP())
	assert.Equal(uint8(0), r.A())
	assert.Equal(uint8(0), r.X())
	assert.Equal(uint8(0), r.Y())
	assert.Equal(Flags{}, r.Flags)
	assert.Equal(FLAG_UNUSED, r.Status())
}

func TestRegisters_FlagDerivation(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	setters := map[string]func(uint8){
		"a": r.SetA,
		"x": r.SetX,
		"y": r.SetY,
	}

	for name, set := range setters {
		for v := range 256 {
			value := uint8(v)
			set(value)
			assert.Equal(value == 0, r.Zero, "%s=0x%02x", name, value)
			assert.Equal((value&0x80) != 0, r.Negative, "%s=0x%02x", name, value)
		}
	}
}

func TestRegisters_StatusRoundTrip(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	for b := range 256 {
		status := uint8(b)
		r.SetStatus(status)
		assert.Equal(status|FLAG_UNUSED, r.Status(), "0x%02x", status)
	}
}

func TestRegisters_StatusLayout(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		flag   string
		status uint8
	}){
		{"c", 0x21},
		{"z", 0x22},
		{"i", 0x24},
		{"d", 0x28},
		{"b", 0x30},
		{"v", 0x60},
		{"n", 0xa0},
	}

	for _, entry := range table {
		r := &Registers{}
		err := r.SetFlag(entry.flag, true)
		assert.NoError(err, entry.flag)
		assert.Equal(entry.status, r.Status(), entry.flag)

		set, err := r.Flag(entry.flag)
		assert.NoError(err)
		assert.True(set, entry.flag)
	}
}

func TestRegisters_Flag(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	assert.NoError(r.SetFlag("Carry", true))
	assert.True(r.Carry)
	assert.NoError(r.SetFlag("interrupt", true))
	assert.True(r.InterruptDisable)

	_, err := r.Flag("q")
	assert.ErrorIs(err, ErrFlagInvalid)
	assert.ErrorIs(r.SetFlag("unused", true), ErrFlagInvalid)
}

func TestRegisters_Register(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	r.Reset()

	table := [](struct {
		name  string
		value uint16
		err   error
	}){
		{"pc", 0x1234, nil},
		{"sp", 0x01fd, nil},
		{"A", 0x80, nil},
		{"x", 0x00, nil},
		{"y", 0x7f, nil},
		{"p", 0xe3, nil},
		{"a", 0x100, ErrRegisterValue},
		{"q", 0x00, ErrRegisterInvalid},
	}

	for _, entry := range table {
		err := r.SetRegister(entry.name, entry.value)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.name)
			continue
		}
		assert.NoError(err, entry.name)

		value, err := r.Register(entry.name)
		assert.NoError(err, entry.name)
		assert.Equal(entry.value, value, entry.name)
	}

	// The setters derive flags.
	assert.NoError(r.SetRegister("x", 0))
	assert.True(r.Zero)
	assert.False(r.Negative)
}

func TestRegisters_String(t *testing.T) {
	assert := assert.New(t)

	r := &Registers{}
	r.Reset()
	r.SetA(0x80)
	r.Carry = true

	text := r.String()
	assert.True(strings.Contains(text, "   pc: fffc\n"), text)
	assert.True(strings.Contains(text, "    a: 80\n"), text)
	assert.True(strings.Contains(text, "    p: a1 Nv-bdizC\n"), text)
}
