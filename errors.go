package nbprep

import "errors"

// Sentinel errors for library operations.
var (
	ErrNotebookParse      = errors.New("notebook parse failed")
	ErrNotebookValidate   = errors.New("notebook validation failed")
	ErrUnsupportedVersion = errors.New("unsupported notebook format version")
	ErrHTMLRender         = errors.New("HTML rendering failed")

	// Cell-level validation errors, wrapped into ErrNotebookValidate details.
	ErrUnknownCellType = errors.New("unknown cell type")
)
