package nbprep

import "strings"

// PostProcess replaces literal <code> and </code> markers with backticks.
// It is an unused utility kept from the original workflow; the pipeline does
// not call it.
func PostProcess(content string) string {
	content = strings.ReplaceAll(content, "<code>", "`")
	content = strings.ReplaceAll(content, "</code>", "`")
	return content
}
