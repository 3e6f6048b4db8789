package nbprep

import "strings"

// celltoolbarKey is an editor-specific toolbar setting that must not travel
// with published notebooks.
const celltoolbarKey = "celltoolbar"

// canonicalPythonKernelspec is the kernel descriptor every Python variant is
// normalized to, so superficial kernel-version differences across authoring
// environments collapse into one form.
func canonicalPythonKernelspec() map[string]any {
	return map[string]any{
		"name":         "python3",
		"display_name": "Python 3",
		"language":     "python",
	}
}

// normalizeNotebookMetadata removes non-portable document metadata and
// canonicalizes Python kernelspecs.
func normalizeNotebookMetadata(nb *Notebook) {
	delete(nb.Metadata, celltoolbarKey)
	normalizeKernelspec(nb)
}

// normalizeKernelspec replaces the kernelspec with the canonical Python
// descriptor when the declared language is a Python variant (case-insensitive
// substring match, so "Python", "python2", "IPython" all qualify).
func normalizeKernelspec(nb *Notebook) {
	ks, ok := nb.Metadata["kernelspec"].(map[string]any)
	if !ok {
		return
	}
	language, _ := ks["language"].(string)
	if strings.Contains(strings.ToLower(language), "python") {
		nb.Metadata["kernelspec"] = canonicalPythonKernelspec()
	}
}

// allowlistCellMetadata drops every cell metadata key outside the fixed
// allow-list. Tags are consumed before this runs; they do not survive.
func allowlistCellMetadata(cell *Cell) {
	for key := range cell.Metadata {
		allowed := false
		for _, k := range allowedCellMetadataKeys {
			if key == k {
				allowed = true
				break
			}
		}
		if !allowed {
			delete(cell.Metadata, key)
		}
	}
}
