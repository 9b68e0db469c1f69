package ascent

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/ascent/date"
)

// This file handles the goal import format: a CSV file with at minimum the
// columns GoalID, GoalName, DueDate and Frequency. Extra columns (including
// the legacy 'Completed') are ignored.

// ImportRow is one goal to import. Unlike CreateGoal, the id is taken
// verbatim from the input file.
type ImportRow struct {
	GoalID    string
	Name      string
	DueDate   date.Date
	Frequency Frequency
}

// ReadImport parses a batch of goals to import from 'r'.
//
// A missing required column or a malformed row fails the whole batch with
// ErrValidation: imports are all-or-nothing, there is no partial read.
func ReadImport(r io.Reader) ([]ImportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read import file: %v", ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: import file is empty", ErrValidation)
	}

	h := newHeader(records[0])
	for _, column := range []string{"GoalID", "GoalName", "DueDate", "Frequency"} {
		if !h.has(column) {
			return nil, fmt.Errorf("%w: import file must contain GoalID,GoalName,DueDate,Frequency columns (missing %q)", ErrValidation, column)
		}
	}

	rows := make([]ImportRow, 0, len(records)-1)
	for n, record := range records[1:] {
		row, err := readImportRow(h, record)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid import row %d: %v", ErrValidation, n+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readImportRow(h header, record []string) (ImportRow, error) {
	var row ImportRow
	var err error

	if row.GoalID, err = h.get(record, "GoalID"); err != nil {
		return row, err
	}
	if row.Name, err = h.get(record, "GoalName"); err != nil {
		return row, err
	}

	s, err := h.get(record, "DueDate")
	if err != nil {
		return row, err
	}
	if row.DueDate, err = date.Parse(s); err != nil {
		return row, err
	}

	if s, err = h.get(record, "Frequency"); err != nil {
		return row, err
	}
	if row.Frequency, err = ParseFrequency(s); err != nil {
		return row, err
	}
	return row, nil
}
