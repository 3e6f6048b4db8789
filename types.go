package nbprep

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Cell type constants (nbformat v4).
const (
	CellTypeMarkdown = "markdown"
	CellTypeCode     = "code"
	CellTypeRaw      = "raw"
)

// Cell metadata keys that survive processing; everything else is dropped.
var allowedCellMetadataKeys = []string{"source_hidden", "notebook_only"}

// Tag that protects a code cell's source from input stripping.
const keepInputTag = "keep_input"

// Notebook is an nbformat v4 document: ordered cells plus document metadata.
// It is a mutable tree with a single owner; the pipeline mutates it in place.
type Notebook struct {
	Cells         []*Cell        `json:"cells"`
	Metadata      map[string]any `json:"metadata"`
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
}

// Output is one entry in a code cell's outputs list. The notebook schema
// leaves output shapes open, so outputs are kept as raw key/value records.
type Output map[string]any

// Cell is one markdown, code, or raw unit within a notebook.
type Cell struct {
	Type           string
	ID             string
	Source         MultilineSource
	Metadata       map[string]any
	Attachments    map[string]any
	ExecutionCount *int
	Outputs        []Output
}

// cellJSON mirrors the nbformat v4 cell wire shape.
type cellJSON struct {
	Type           string          `json:"cell_type"`
	ID             string          `json:"id,omitempty"`
	Source         MultilineSource `json:"source"`
	Metadata       map[string]any  `json:"metadata"`
	Attachments    map[string]any  `json:"attachments,omitempty"`
	ExecutionCount *int            `json:"execution_count"`
	Outputs        []Output        `json:"outputs"`
}

// UnmarshalJSON decodes a cell, tolerating the fields that only code cells
// carry (execution_count, outputs) being absent on markdown and raw cells.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var cj cellJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	c.Type = cj.Type
	c.ID = cj.ID
	c.Source = cj.Source
	c.Metadata = cj.Metadata
	c.Attachments = cj.Attachments
	c.ExecutionCount = cj.ExecutionCount
	c.Outputs = cj.Outputs
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}
	return nil
}

// MarshalJSON encodes a cell in nbformat v4 shape. Code cells always carry
// execution_count and outputs keys (null/empty when cleared); markdown and
// raw cells never do.
func (c *Cell) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"cell_type": c.Type,
		"source":    c.Source,
		"metadata":  c.Metadata,
	}
	if c.ID != "" {
		m["id"] = c.ID
	}
	if c.Attachments != nil {
		m["attachments"] = c.Attachments
	}
	if c.Type == CellTypeCode {
		m["execution_count"] = c.ExecutionCount
		outputs := c.Outputs
		if outputs == nil {
			outputs = []Output{}
		}
		m["outputs"] = outputs
	}
	return json.Marshal(m)
}

// Tags returns the cell's tags in authored order. Returns nil when the cell
// has no tags or the tags entry is not a list of strings.
func (c *Cell) Tags() []string {
	raw, ok := c.Metadata["tags"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		tags := make([]string, 0, len(v))
		for _, t := range v {
			s, ok := t.(string)
			if !ok {
				return nil
			}
			tags = append(tags, s)
		}
		return tags
	}
	return nil
}

// HasTag reports whether the cell carries the given tag.
func (c *Cell) HasTag(tag string) bool {
	for _, t := range c.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

// NewMarkdownCell creates a markdown cell with the given source text and
// empty metadata. The cell has no id; callers targeting nbformat minor >= 5
// (where every cell requires one) assign it via newCellID.
func NewMarkdownCell(source string) *Cell {
	c := &Cell{
		Type:     CellTypeMarkdown,
		Metadata: map[string]any{},
	}
	c.Source.Set(source)
	return c
}

// newCellID generates a fresh cell id: 8 hex characters, the same shape
// nbformat's own cell constructors produce.
func newCellID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}

// MultilineSource holds cell source text. The notebook format stores source
// either as a single string or as a list of lines; both decode to the same
// text and the original wire shape is preserved on encode.
type MultilineSource struct {
	text   string
	asList bool
}

// String returns the source as one string.
func (s MultilineSource) String() string { return s.text }

// IsBlank reports whether the source is empty or whitespace-only.
func (s MultilineSource) IsBlank() bool { return strings.TrimSpace(s.text) == "" }

// Set replaces the source with a single string; it encodes as a string.
func (s *MultilineSource) Set(text string) {
	s.text = text
	s.asList = false
}

// Clear replaces the source with an empty line list; it encodes as [].
func (s *MultilineSource) Clear() {
	s.text = ""
	s.asList = true
}

// UnmarshalJSON accepts both a JSON string and a list of line strings.
func (s *MultilineSource) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.text = text
		s.asList = false
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("source must be a string or a list of strings: %w", err)
	}
	s.text = strings.Join(lines, "")
	s.asList = true
	return nil
}

// MarshalJSON encodes back to the shape the source was read (or set) with.
func (s MultilineSource) MarshalJSON() ([]byte, error) {
	if !s.asList {
		return json.Marshal(s.text)
	}
	if s.text == "" {
		return json.Marshal([]string{})
	}
	lines := strings.SplitAfter(s.text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return json.Marshal(lines)
}
