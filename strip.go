package nbprep

// repairOutputs removes a spurious execution_count from a cell's second
// output record. The bash kernel's shell integration attaches an execution
// count to a non-primary output, which the notebook schema rejects.
func repairOutputs(cell *Cell) {
	if len(cell.Outputs) >= 2 {
		delete(cell.Outputs[1], "execution_count")
	}
}

// stripCellInput blanks a code cell's source unless the cell is tagged
// keep_input. Used to ship notebooks with worked solutions hidden from
// learners while preserving outputs.
func stripCellInput(cell *Cell) {
	if cell.Type == CellTypeCode && !cell.HasTag(keepInputTag) {
		cell.Source.Clear()
	}
}

// stripOutputs removes all captured execution outputs and execution counts
// from the document, so published notebooks carry no stale execution state.
func stripOutputs(nb *Notebook) {
	for _, cell := range nb.Cells {
		if cell.Type != CellTypeCode {
			continue
		}
		cell.Outputs = []Output{}
		cell.ExecutionCount = nil
	}
}
