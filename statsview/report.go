package statsview

import (
	"fmt"
	"io"
	"time"
)

// Counters are the execution totals of an emulator.
type Counters interface {
	Ticks() int
	Instructions() int
}

// Report writes the totals of a run, and its throughput over elapsed.
func Report(output io.Writer, counters Counters, elapsed time.Duration) (err error) {
	ticks := counters.Ticks()
	steps := counters.Instructions()

	_, err = fmt.Fprintf(output, "%8s: %d\n%8s: %d\n", "cycles", ticks, "insns", steps)
	if err != nil {
		return
	}

	if elapsed <= 0 {
		return
	}

	seconds := elapsed.Seconds()
	_, err = fmt.Fprintf(output, "%8s: %.0f cycles/s, %.0f insns/s\n", "rate",
		float64(ticks)/seconds, float64(steps)/seconds)
	return
}
