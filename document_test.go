package nbprep

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalNotebookJSON = `{
 "cells": [
  {
   "cell_type": "markdown",
   "id": "aa11bb22",
   "metadata": {},
   "source": ["# Hello\n", "world"]
  },
  {
   "cell_type": "code",
   "execution_count": 2,
   "id": "cc33dd44",
   "metadata": {"collapsed": true},
   "outputs": [{"output_type": "stream", "name": "stdout", "text": "hi"}],
   "source": "print('hi')"
  }
 ],
 "metadata": {
  "kernelspec": {"name": "python3", "display_name": "Python 3", "language": "python"},
  "custom_flag": 1
 },
 "nbformat": 4,
 "nbformat_minor": 5
}`

func writeTempNotebook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.ipynb")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestJSONDocumentModel_Read(t *testing.T) {
	t.Parallel()

	model := jsonDocumentModel{}

	t.Run("valid notebook", func(t *testing.T) {
		t.Parallel()

		nb, err := model.Read(writeTempNotebook(t, minimalNotebookJSON))
		if err != nil {
			t.Fatalf("Read() unexpected error: %v", err)
		}
		if len(nb.Cells) != 2 {
			t.Fatalf("cells = %d, want 2", len(nb.Cells))
		}
		if got := nb.Cells[0].Source.String(); got != "# Hello\nworld" {
			t.Errorf("source = %q, want %q", got, "# Hello\nworld")
		}
		if nb.Cells[1].ExecutionCount == nil || *nb.Cells[1].ExecutionCount != 2 {
			t.Errorf("execution count = %v, want 2", nb.Cells[1].ExecutionCount)
		}
	})

	t.Run("malformed JSON is ErrNotebookParse", func(t *testing.T) {
		t.Parallel()

		_, err := model.Read(writeTempNotebook(t, "{not json"))
		if !errors.Is(err, ErrNotebookParse) {
			t.Errorf("Read() error = %v, want ErrNotebookParse", err)
		}
	})

	t.Run("wrong nbformat is ErrUnsupportedVersion", func(t *testing.T) {
		t.Parallel()

		_, err := model.Read(writeTempNotebook(t, `{"cells":[],"metadata":{},"nbformat":3,"nbformat_minor":0}`))
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("Read() error = %v, want ErrUnsupportedVersion", err)
		}
	})

	t.Run("missing file surfaces os error", func(t *testing.T) {
		t.Parallel()

		_, err := model.Read(filepath.Join(t.TempDir(), "missing.ipynb"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Read() error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestJSONDocumentModel_Validate(t *testing.T) {
	t.Parallel()

	model := jsonDocumentModel{}

	valid := func() *Notebook {
		return &Notebook{
			NBFormat:      4,
			NBFormatMinor: 4,
			Metadata:      map[string]any{},
			Cells: []*Cell{
				mdCell("text"),
				codeCell("x = 1", nil, Output{"output_type": "execute_result"}),
			},
		}
	}

	withIDs := func(nb *Notebook) {
		for i, cell := range nb.Cells {
			cell.ID = string(rune('a'+i)) + "1b2c3d4"
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Notebook)
		wantErr bool
	}{
		{
			name:    "valid notebook passes",
			mutate:  func(*Notebook) {},
			wantErr: false,
		},
		{
			name:    "wrong major version",
			mutate:  func(nb *Notebook) { nb.NBFormat = 3 },
			wantErr: true,
		},
		{
			name:    "unknown cell type",
			mutate:  func(nb *Notebook) { nb.Cells[0].Type = "headline" },
			wantErr: true,
		},
		{
			name:    "markdown cell with outputs",
			mutate:  func(nb *Notebook) { nb.Cells[0].Outputs = []Output{{"output_type": "stream"}} },
			wantErr: true,
		},
		{
			name: "markdown cell with execution count",
			mutate: func(nb *Notebook) {
				one := 1
				nb.Cells[0].ExecutionCount = &one
			},
			wantErr: true,
		},
		{
			name:    "invalid output type",
			mutate:  func(nb *Notebook) { nb.Cells[1].Outputs[0]["output_type"] = "telemetry" },
			wantErr: true,
		},
		{
			name:    "nil cell metadata",
			mutate:  func(nb *Notebook) { nb.Cells[1].Metadata = nil },
			wantErr: true,
		},
		{
			name:    "minor 5 without cell ids",
			mutate:  func(nb *Notebook) { nb.NBFormatMinor = 5 },
			wantErr: true,
		},
		{
			name: "minor 5 with cell ids passes",
			mutate: func(nb *Notebook) {
				nb.NBFormatMinor = 5
				withIDs(nb)
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nb := valid()
			tt.mutate(nb)
			err := model.Validate(nb)
			if tt.wantErr {
				if !errors.Is(err, ErrNotebookValidate) {
					t.Errorf("Validate() error = %v, want ErrNotebookValidate", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestJSONDocumentModel_WriteRoundTrip(t *testing.T) {
	t.Parallel()

	model := jsonDocumentModel{}
	nb, err := model.Read(writeTempNotebook(t, minimalNotebookJSON))
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "out.ipynb")
	if err := model.Write(outPath, nb); err != nil {
		t.Fatalf("Write() unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Error("output does not end with a newline")
	}

	reread, err := model.Read(outPath)
	if err != nil {
		t.Fatalf("Read() of written file failed: %v", err)
	}
	if len(reread.Cells) != len(nb.Cells) {
		t.Errorf("cells = %d, want %d", len(reread.Cells), len(nb.Cells))
	}
	// Fields not mutated by the pipeline must round-trip.
	if reread.Metadata["custom_flag"] != float64(1) {
		t.Errorf("custom_flag = %v, want 1", reread.Metadata["custom_flag"])
	}
	if got := reread.Cells[0].Source.String(); got != "# Hello\nworld" {
		t.Errorf("source = %q, want %q", got, "# Hello\nworld")
	}
}
