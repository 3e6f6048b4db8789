package nbprep

import (
	"encoding/json"
	"fmt"
	"os"
)

// nbFormatMajor is the only notebook schema version this pipeline handles.
const nbFormatMajor = 4

// nbFormatMinorCellID is the minor version from which every cell must carry
// an id.
const nbFormatMinorCellID = 5

// File permission for written notebooks: rw-r--r--.
const notebookFilePermissions = 0o644

// documentModel abstracts notebook parse/validate/write so the transformation
// logic can be tested against an in-memory fake.
type documentModel interface {
	Read(path string) (*Notebook, error)
	Validate(nb *Notebook) error
	Write(path string, nb *Notebook) error
}

// jsonDocumentModel reads and writes nbformat v4 JSON files.
type jsonDocumentModel struct{}

// Read parses the file at path into a Notebook. Any parse failure is fatal
// and wrapped in ErrNotebookParse; a non-v4 document is rejected.
func (jsonDocumentModel) Read(path string) (*Notebook, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading notebook: %w", err)
	}

	var nb Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotebookParse, err)
	}
	if nb.NBFormat != nbFormatMajor {
		return nil, fmt.Errorf("%w: nbformat %d (want %d)", ErrUnsupportedVersion, nb.NBFormat, nbFormatMajor)
	}
	if nb.Metadata == nil {
		nb.Metadata = map[string]any{}
	}
	return &nb, nil
}

// Validate checks the document against the structural rules of nbformat v4.
// It is a lightweight conformance check, not a full JSON-Schema engine.
func (jsonDocumentModel) Validate(nb *Notebook) error {
	if nb == nil {
		return fmt.Errorf("%w: nil notebook", ErrNotebookValidate)
	}
	if nb.NBFormat != nbFormatMajor {
		return fmt.Errorf("%w: nbformat %d (want %d)", ErrNotebookValidate, nb.NBFormat, nbFormatMajor)
	}
	if nb.NBFormatMinor < 0 {
		return fmt.Errorf("%w: negative nbformat_minor", ErrNotebookValidate)
	}
	requireID := nb.NBFormatMinor >= nbFormatMinorCellID
	for i, cell := range nb.Cells {
		if err := validateCell(cell, requireID); err != nil {
			return fmt.Errorf("%w: cell %d: %v", ErrNotebookValidate, i, err)
		}
	}
	return nil
}

// validOutputTypes are the output_type values nbformat v4 defines.
var validOutputTypes = map[string]bool{
	"execute_result": true,
	"display_data":   true,
	"stream":         true,
	"error":          true,
}

func validateCell(cell *Cell, requireID bool) error {
	if cell == nil {
		return fmt.Errorf("nil cell")
	}
	if requireID && cell.ID == "" {
		return fmt.Errorf("missing cell id")
	}
	switch cell.Type {
	case CellTypeCode:
		for j, out := range cell.Outputs {
			ot, _ := out["output_type"].(string)
			if !validOutputTypes[ot] {
				return fmt.Errorf("output %d: invalid output_type %q", j, ot)
			}
		}
	case CellTypeMarkdown, CellTypeRaw:
		if len(cell.Outputs) > 0 {
			return fmt.Errorf("%s cell carries outputs", cell.Type)
		}
		if cell.ExecutionCount != nil {
			return fmt.Errorf("%s cell carries an execution count", cell.Type)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCellType, cell.Type)
	}
	if cell.Metadata == nil {
		return fmt.Errorf("nil metadata")
	}
	return nil
}

// Write serializes the notebook to path as indented JSON with a trailing
// newline, matching the layout notebook tooling produces.
func (jsonDocumentModel) Write(path string, nb *Notebook) error {
	data, err := json.MarshalIndent(nb, "", " ")
	if err != nil {
		return fmt.Errorf("encoding notebook: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, notebookFilePermissions); err != nil {
		return fmt.Errorf("writing notebook: %w", err)
	}
	return nil
}
