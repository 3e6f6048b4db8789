package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbprep [flags] <input.ipynb> <output.ipynb>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preprocess a Jupyter notebook for publishing: rewrite tagged markdown")
	fmt.Fprintln(w, "cells into styled panels, normalize metadata, and strip outputs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input.ipynb     Notebook to process (nbformat v4)")
	fmt.Fprintln(w, "  output.ipynb    Destination path for the processed notebook")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
	fmt.Fprintln(w, "      --strip-input     Blank code-cell inputs (keep_input cells preserved)")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show processing details")
	fmt.Fprintln(w, "      --version         Show version and exit")
}
