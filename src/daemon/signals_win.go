//go:build windows

package daemon

import "os"

// StopSignals contains all the signals which will make the server stop gracefully
// and remove its pidfile.
var StopSignals = []os.Signal{
	os.Interrupt,
}
