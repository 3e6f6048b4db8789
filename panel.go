package nbprep

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// panelTemplate is the cell source produced for a tagged markdown cell:
// a Bootstrap-style panel with an icon heading and an optional body region.
// Substitutions: tag, panel type, icon type, title, body.
const panelTemplate = `
<section class="%s panel panel-%s">
<div class="panel-heading">
<h2><span class="fa fa-%s"></span> %s</h2>
</div>
%s
</section>
`

// panelBodyTemplate wraps rendered cell content. Substitution: HTML fragment.
const panelBodyTemplate = `

<div class="panel-body">

%s

</div>
`

// isTaggedCell reports whether a cell qualifies for panel formatting:
// markdown type with at least one tag.
func isTaggedCell(cell *Cell) bool {
	return cell.Type == CellTypeMarkdown && len(cell.Tags()) > 0
}

// processTaggedCell rewrites a qualifying cell's source into a styled HTML
// panel. Cells whose tags match no format are left untouched. When several
// format tags compete, the first recognized tag in the cell's authored tag
// order wins and a diagnostic is written.
func processTaggedCell(ctx context.Context, cell *Cell, formats map[string]Format, renderer htmlRenderer, diag io.Writer) error {
	var recognized []string
	for _, t := range cell.Tags() {
		if _, ok := formats[t]; ok {
			recognized = append(recognized, t)
		}
	}
	if len(recognized) == 0 {
		return nil
	}
	if len(recognized) > 1 {
		fmt.Fprintf(diag, "two or more format tags found (%s), using %q\n",
			strings.Join(recognized, ", "), recognized[0])
	}
	tag := recognized[0]

	format, ok := formats[tag]
	if !ok {
		// Unreachable with ordered selection, kept as a guard.
		fmt.Fprintf(diag, "no format descriptor for %q\n", tag)
		return nil
	}

	source := format.Prolog + cell.Source.String()
	source, title := extractTitle(source)

	content, err := renderer.RenderHTML(ctx, source)
	if err != nil {
		return fmt.Errorf("rendering cell content: %w", err)
	}

	body := ""
	if strings.TrimSpace(source) != "" {
		body = fmt.Sprintf(panelBodyTemplate, content)
	}

	cell.Source.Set(fmt.Sprintf(panelTemplate, tag, format.PanelType, format.IconType, title, body))
	return nil
}

// extractTitle scans for the first line starting with "##", strips the hash
// markers and surrounding whitespace into a title, and removes the first line
// equal to it. Removal is by value, so an identical duplicate line earlier in
// the source would be removed instead; that edge case is accepted.
func extractTitle(source string) (remaining, title string) {
	lines := strings.Split(source, "\n")
	titleLine := ""
	found := false
	for _, line := range lines {
		if strings.HasPrefix(line, "##") {
			titleLine = line
			title = strings.TrimSpace(strings.ReplaceAll(line, "##", ""))
			found = true
			break
		}
	}
	if found {
		for i, line := range lines {
			if line == titleLine {
				lines = append(lines[:i], lines[i+1:]...)
				break
			}
		}
	}
	return strings.Join(lines, "\n"), title
}
