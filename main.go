// MelodyHub serves a catalog of music genres, artists, albums and songs over HTTP.
//
// This file is only here to make installing with go install easier. All of the
// source lives in the src directory.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ironsmile/melodyhub/src"
)

// htmlTemplatesFS is the directory with HTML templates. If the embedded directory
// name changes, remember to change it in main() too.
//
//go:embed templates
var htmlTemplatesFS embed.FS

func main() {
	tpls, err := fs.Sub(htmlTemplatesFS, "templates")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading templates subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(tpls)
}
