package script

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	ErrExpression = errors.New(f("expression does not evaluate to an integer"))
	ErrByteRange  = errors.New(f("byte value out of range"))
)

// ErrScript indicates the script a failure occurred in.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
