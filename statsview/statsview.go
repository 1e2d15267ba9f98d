//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const (
	Address  = "localhost:16502" // Listen address of the chart server.
	INTERVAL = 500               // Chart refresh, in milliseconds.
)

// Launch starts the chart server in the background.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(INTERVAL),
	)

	manager := statsview.New()
	go manager.Start()

	fmt.Fprintf(output, "statsview: http://%s/debug/statsview\n", Address)
}

// Available is true when the chart server is built in.
func Available() bool {
	return true
}
