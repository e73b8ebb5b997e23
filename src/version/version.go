/*
Package version provides version information and utilities.
*/
package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version stores the current version of MelodyHub. It is set during building.
var Version = "dev-unreleased"

// Print writes a plain text version information in out.
func Print(out io.Writer) {
	fmt.Fprintf(out, "MelodyHub API %s\n", Version)
	fmt.Fprintf(out, "Build with %s\n", runtime.Version())
}

// UserAgent returns the User-Agent MelodyHub uses when calling remote services.
func UserAgent() string {
	return fmt.Sprintf(
		"MelodyHub/%s (+https://github.com/ironsmile/melodyhub)",
		Version,
	)
}
