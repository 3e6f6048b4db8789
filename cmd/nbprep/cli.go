package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	nbprep "github.com/alnah/go-nbprep"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs      = errors.New("usage: nbprep [flags] <input.ipynb> <output.ipynb>")
	ErrInvalidExtension = errors.New("input must have .ipynb extension")
)

// Number of required positional arguments: input path, output path.
const requiredArgs = 2

// Processor is the interface for the notebook processing service.
type Processor interface {
	ProcessFile(ctx context.Context, inputPath, outputPath string) error
}

// Compile-time interface implementation check.
var _ Processor = (*nbprep.Service)(nil)

// run validates arguments and delegates to the processing service.
func run(ctx context.Context, args []string, flags *cliFlags, proc Processor, stdout io.Writer) error {
	if len(args) != requiredArgs {
		return ErrInvalidArgs
	}

	inputPath := args[0]
	outputPath := args[1]

	if err := validateNotebookExtension(inputPath); err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(stdout, "Processing %s -> %s\n", inputPath, outputPath)
		if flags.stripInput {
			fmt.Fprintln(stdout, "Input stripping enabled (cells tagged keep_input preserved)")
		}
	}

	if err := proc.ProcessFile(ctx, inputPath, outputPath); err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Wrote %s\n", outputPath)
	}
	return nil
}

// validateNotebookExtension checks that the file has a .ipynb extension.
func validateNotebookExtension(path string) error {
	if ext := filepath.Ext(path); ext != ".ipynb" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// serviceOptions builds service options from config and flags. Flags win
// over config; config formats extend the built-in table.
func serviceOptions(cfg *Config, flags *cliFlags) []nbprep.Option {
	var opts []nbprep.Option

	if cfg.StripInput || flags.stripInput {
		opts = append(opts, nbprep.WithStripInput(true))
	}
	if cfg.Attribution != "" {
		opts = append(opts, nbprep.WithAttribution(cfg.Attribution))
	}
	for tag, fc := range cfg.Formats {
		opts = append(opts, nbprep.WithFormat(tag, nbprep.Format{
			PanelType: fc.Panel,
			IconType:  fc.Icon,
			Prolog:    fc.Prolog,
		}))
	}

	return opts
}
