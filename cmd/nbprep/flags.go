package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the nbprep CLI.
type cliFlags struct {
	config     string
	stripInput bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses CLI flags and returns the positional arguments
// (input path, output path).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("nbprep", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.stripInput, "strip-input", false, "blank code-cell inputs (cells tagged keep_input are preserved)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show processing details")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
