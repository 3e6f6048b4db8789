package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	nbprep "github.com/alnah/go-nbprep"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("nbprep %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		cfg, err = LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitCodeFor(err))
		}
	}

	svc := nbprep.New(serviceOptions(cfg, flags)...)

	if err := run(context.Background(), args, flags, svc, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
