package nbprep

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// htmlRenderer abstracts Markdown to HTML conversion for cell bodies.
type htmlRenderer interface {
	RenderHTML(ctx context.Context, content string) (string, error)
}

// goldmarkRenderer converts Markdown to HTML fragments using goldmark.
type goldmarkRenderer struct {
	md goldmark.Markdown
}

// newGoldmarkRenderer creates a goldmarkRenderer with syntax highlighting.
// Fenced code blocks are part of CommonMark and need no extension.
func newGoldmarkRenderer() *goldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so lesson stylesheets control colors
				),
			),
		),
	)
	return &goldmarkRenderer{md: md}
}

// RenderHTML converts Markdown content to an HTML fragment. The output is a
// fragment, not a document: it is substituted into a panel body that lives
// inside a markdown cell. Supports context cancellation via goroutine +
// select pattern since Goldmark doesn't natively support context.
func (r *goldmarkRenderer) RenderHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLRender, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
