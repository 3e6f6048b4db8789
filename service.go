package nbprep

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Service orchestrates the notebook preprocessing pipeline.
type Service struct {
	formats     map[string]Format
	stripInput  bool
	attribution string
	renderer    htmlRenderer
	model       documentModel
	diag        io.Writer
}

// Option customizes a Service.
type Option func(*Service)

// WithStripInput enables blanking of code-cell sources for cells lacking a
// keep_input tag.
func WithStripInput(strip bool) Option {
	return func(s *Service) { s.stripInput = strip }
}

// WithDiagnostics redirects non-fatal diagnostics (competing format tags,
// missing descriptors). Default is stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Service) { s.diag = w }
}

// WithAttribution overrides the license notice appended to notebooks that
// carry the attribution flag.
func WithAttribution(text string) Option {
	return func(s *Service) { s.attribution = text }
}

// WithFormat adds or replaces one tag's panel descriptor.
func WithFormat(tag string, format Format) Option {
	return func(s *Service) { s.formats[tag] = format }
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStripInput).
func New(opts ...Option) *Service {
	s := &Service{
		formats:     defaultFormats(),
		attribution: defaultAttribution,
		renderer:    newGoldmarkRenderer(),
		model:       jsonDocumentModel{},
		diag:        os.Stderr,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ProcessFile loads a notebook, runs the full pipeline, validates the result,
// and writes it to outputPath. Nothing is written when any stage fails; fatal
// errors propagate to the caller.
func (s *Service) ProcessFile(ctx context.Context, inputPath, outputPath string) error {
	nb, err := s.model.Read(inputPath)
	if err != nil {
		return err
	}

	if err := s.Process(ctx, nb); err != nil {
		return err
	}

	if err := s.model.Validate(nb); err != nil {
		return err
	}

	return s.model.Write(outputPath, nb)
}

// Process mutates the notebook in place through the fixed pipeline:
// metadata normalization, per-cell processing, attribution append, and
// output stripping. Validation and I/O are ProcessFile's concern.
func (s *Service) Process(ctx context.Context, nb *Notebook) error {
	normalizeNotebookMetadata(nb)

	for _, cell := range nb.Cells {
		if err := s.processCell(ctx, cell); err != nil {
			return err
		}
	}

	if wantsAttribution(nb) {
		cell := NewMarkdownCell(s.attribution)
		// Cell ids are required from nbformat 4.5 on and invalid before it.
		if nb.NBFormatMinor >= nbFormatMinorCellID {
			cell.ID = newCellID()
		}
		nb.Cells = append(nb.Cells, cell)
	}

	stripOutputs(nb)
	return nil
}

// processCell applies the per-cell stages in fixed order: output repair,
// tagged-markdown rewrite, optional input stripping, metadata allow-listing.
// Input stripping must see the cell's tags, so it runs before the allow-list
// drops them.
func (s *Service) processCell(ctx context.Context, cell *Cell) error {
	repairOutputs(cell)

	if isTaggedCell(cell) {
		if err := processTaggedCell(ctx, cell, s.formats, s.renderer, s.diag); err != nil {
			return fmt.Errorf("processing tagged cell: %w", err)
		}
	}

	if s.stripInput {
		stripCellInput(cell)
	}

	allowlistCellMetadata(cell)

	return nil
}
