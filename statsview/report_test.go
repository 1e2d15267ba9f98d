package statsview

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/memory"
)

func TestReport(t *testing.T) {
	assert := assert.New(t)

	emu := emulator.NewEmulator()
	emu.Reset()

	// LDA #$37; STA $10
	assert.NoError(emu.Load(memory.RESET_VECTOR, []uint8{0xa9, 0x37, 0x85, 0x10}))
	_, err := emu.Run(5)
	assert.NoError(err)

	out := &bytes.Buffer{}
	err = Report(out, emu, 0)
	assert.NoError(err)
	assert.Equal("  cycles: 5\n   insns: 2\n", out.String())

	out.Reset()
	err = Report(out, emu, time.Second)
	assert.NoError(err)
	assert.Equal("  cycles: 5\n   insns: 2\n    rate: 5 cycles/s, 2 insns/s\n", out.String())
}
