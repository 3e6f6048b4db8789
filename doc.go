// Package nbprep preprocesses Jupyter notebooks for publishing.
//
// # Quick Start
//
// Create a service and process a notebook file:
//
//	svc := nbprep.New()
//	if err := svc.ProcessFile(ctx, "lesson.ipynb", "out/lesson.ipynb"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Processing Pipeline
//
// Each notebook runs through a fixed sequence of stages:
//
//  1. Notebook metadata normalization (editor keys, kernelspec canonicalization)
//  2. Per-cell processing (output repair, tagged-cell panel rewrite,
//     metadata allow-listing, optional input stripping)
//  3. Attribution cell append (when the notebook requests it)
//  4. Output stripping (execution outputs and counts)
//  5. Validation and write (nbformat v4)
//
// Tagged markdown cells are rewritten into styled HTML panels: a cell tagged
// "challenge" becomes a bordered panel with an icon heading and the cell body
// rendered to HTML via Goldmark (fenced code blocks, syntax highlighting).
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := nbprep.New(
//	    nbprep.WithStripInput(true),
//	    nbprep.WithAttribution(customNotice),
//	)
//
// The document is never written when validation fails; fatal errors propagate
// to the caller with sentinel errors suitable for errors.Is checks.
package nbprep
