//go:build !statsview

package statsview

import (
	"io"
)

const Address = ""

// Launch is a no-op without the statsview tag.
func Launch(output io.Writer) {
}

// Available is true when the chart server is built in.
func Available() bool {
	return false
}
