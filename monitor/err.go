package monitor

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	ErrCommandUnknown = errors.New(f("command unknown"))
	ErrArgumentCount  = errors.New(f("wrong number of arguments"))
	ErrArgumentRange  = errors.New(f("argument out of range"))
)

// ErrCommand indicates the command that failed.
type ErrCommand struct {
	Command string
	Err     error
}

func (err *ErrCommand) Error() string {
	return f("%v: %v", err.Command, err.Err)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}
