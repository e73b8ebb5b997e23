// Package daemon deals with the life cycle of the MelodyHub process.
package daemon

import (
	"context"
	"os/signal"
)

// StopContext returns a context which is cancelled once the process receives
// any of the StopSignals. Calling the returned function stops listening for them.
func StopContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, StopSignals...)
}
