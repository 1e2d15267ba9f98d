package cpu

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeUnknown   = errors.New(f("opcode unknown"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrModeInvalid     = errors.New(f("addressing mode invalid"))
	ErrActionInvalid   = errors.New(f("action invalid"))
	ErrTargetInvalid   = errors.New(f("target invalid"))

	// Register file errors
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrRegisterValue   = errors.New(f("register value out of range"))
	ErrFlagInvalid     = errors.New(f("flag invalid"))
)

// ErrOpcode identifies the opcode byte an error occurred on.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
