// Regenerates ScintillaImpl.hpp from Scintilla.iface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

func main() {
	root := NewRootCmd(afero.NewOsFs())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
