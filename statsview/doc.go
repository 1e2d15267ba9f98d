// Package statsview reports emulator performance.
//
// Report prints the cycle and instruction throughput of a finished run,
// and is always available.
//
// When built with the statsview tag, Launch also starts a background HTTP
// server (from github.com/go-echarts/statsview) charting the process
// heap, GC and goroutines at
//
//	http://localhost:16502/debug/statsview
package statsview
