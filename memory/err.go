package memory

import (
	"errors"

	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	ErrLengthInvalid = errors.New(f("length invalid"))
)

// ErrAddressRange is returned for any access at or beyond MEM_SIZE.
type ErrAddressRange int64

func (ea ErrAddressRange) Error() string {
	return f("address 0x%x out of range", int64(ea))
}

// Is matches any ErrAddressRange, regardless of address.
func (ea ErrAddressRange) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressRange)
	return
}
