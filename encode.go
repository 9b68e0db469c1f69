package ascent

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/ascent/date"
	"github.com/shopspring/decimal"
)

// This file contains the CSV codecs for the two tables of record. The format
// should remain human readable, diffable, and loadable by a spreadsheet.
//
// Goals table columns:   GoalID,GoalName,DueDate,Frequency,Progress,DateAdded,Week
// History table columns: GoalID,GoalName,Date,Progress,Percentage,Change
//
// Two forms of schema drift are tolerated on read: a legacy 'Completed'
// column (or any unknown column) is dropped silently, and a missing 'Change'
// column is backfilled from 'Percentage' by the scoring rule.

// header indexes the columns of a CSV header row by name.
type header map[string]int

func newHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[name] = i
	}
	return h
}

// get returns the value of the named column in 'record', or an error if the
// column is absent from the header.
func (h header) get(record []string, column string) (string, error) {
	i, ok := h[column]
	if !ok {
		return "", fmt.Errorf("missing column %q", column)
	}
	if i >= len(record) {
		return "", fmt.Errorf("row too short for column %q", column)
	}
	return record[i], nil
}

// has reports whether the named column exists in the header.
func (h header) has(column string) bool { _, ok := h[column]; return ok }

// parseInt parses an integer that may have been serialized as a float
// (pandas-era files write "50.0" where we write "50").
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int(f), nil
}

// DecodeGoals decodes the goals table from CSV data.
func DecodeGoals(r io.Reader) ([]Goal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are validated per column, not per width

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read goals table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	h := newHeader(records[0])
	goals := make([]Goal, 0, len(records)-1)
	for n, record := range records[1:] {
		g, err := decodeGoal(h, record)
		if err != nil {
			return nil, fmt.Errorf("invalid goals row %d: %w", n+1, err)
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func decodeGoal(h header, record []string) (Goal, error) {
	var g Goal
	var err error

	if g.ID, err = h.get(record, "GoalID"); err != nil {
		return g, err
	}
	if g.Name, err = h.get(record, "GoalName"); err != nil {
		return g, err
	}

	s, err := h.get(record, "DueDate")
	if err != nil {
		return g, err
	}
	if g.DueDate, err = date.Parse(s); err != nil {
		return g, err
	}

	if s, err = h.get(record, "Frequency"); err != nil {
		return g, err
	}
	if g.Frequency, err = ParseFrequency(s); err != nil {
		return g, err
	}

	if s, err = h.get(record, "Progress"); err != nil {
		return g, err
	}
	if g.Progress, err = decimal.NewFromString(s); err != nil {
		return g, fmt.Errorf("invalid progress %q: %w", s, err)
	}

	if s, err = h.get(record, "DateAdded"); err != nil {
		return g, err
	}
	if g.DateAdded, err = date.Parse(s); err != nil {
		return g, err
	}

	if s, err = h.get(record, "Week"); err != nil {
		return g, err
	}
	if g.Week, err = parseInt(s); err != nil {
		return g, err
	}
	return g, nil
}

// EncodeGoals encodes the goals table as CSV in its canonical column order.
// Legacy columns dropped at decode time are not written back.
func EncodeGoals(w io.Writer, goals []Goal) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"GoalID", "GoalName", "DueDate", "Frequency", "Progress", "DateAdded", "Week"}); err != nil {
		return err
	}
	for _, g := range goals {
		record := []string{
			g.ID,
			g.Name,
			g.DueDate.String(),
			g.Frequency.String(),
			g.Progress.String(),
			g.DateAdded.String(),
			strconv.Itoa(g.Week),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeHistory decodes the history table from CSV data.
//
// Files written before the Change column existed are migrated on the fly:
// every change is re-derived from the reported percentage. The migration is
// all-or-nothing, it never mixes stored and derived changes.
func DecodeHistory(r io.Reader) ([]HistoryEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read history table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	h := newHeader(records[0])
	entries := make([]HistoryEntry, 0, len(records)-1)
	for n, record := range records[1:] {
		e, err := decodeEntry(h, record)
		if err != nil {
			return nil, fmt.Errorf("invalid history row %d: %w", n+1, err)
		}
		entries = append(entries, e)
	}
	if !h.has("Change") {
		entries = backfillChanges(entries)
	}
	return entries, nil
}

func decodeEntry(h header, record []string) (HistoryEntry, error) {
	var e HistoryEntry
	var err error

	if e.GoalID, err = h.get(record, "GoalID"); err != nil {
		return e, err
	}
	if e.GoalName, err = h.get(record, "GoalName"); err != nil {
		return e, err
	}

	s, err := h.get(record, "Date")
	if err != nil {
		return e, err
	}
	if e.Date, err = date.Parse(s); err != nil {
		return e, err
	}

	if s, err = h.get(record, "Progress"); err != nil {
		return e, err
	}
	if e.Progress, err = decimal.NewFromString(s); err != nil {
		return e, fmt.Errorf("invalid progress %q: %w", s, err)
	}

	if s, err = h.get(record, "Percentage"); err != nil {
		return e, err
	}
	if e.Percentage, err = parseInt(s); err != nil {
		return e, err
	}

	if h.has("Change") {
		if s, err = h.get(record, "Change"); err != nil {
			return e, err
		}
		if e.Change, err = decimal.NewFromString(s); err != nil {
			return e, fmt.Errorf("invalid change %q: %w", s, err)
		}
	}
	return e, nil
}

// backfillChanges is the migration for history files predating the Change
// column: it derives every change from the reported percentage.
//
// The rule maps percentage 0 to a skip, so legacy seed entries come out with
// a negative change. That is the documented rule, faithfully applied; only
// files written by the pre-Change version are affected.
func backfillChanges(entries []HistoryEntry) []HistoryEntry {
	migrated := make([]HistoryEntry, len(entries))
	for i, e := range entries {
		e.Change = deltaFor(e.Percentage)
		migrated[i] = e
	}
	return migrated
}

// EncodeHistory encodes the history table as CSV, Change column included.
func EncodeHistory(w io.Writer, entries []HistoryEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"GoalID", "GoalName", "Date", "Progress", "Percentage", "Change"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.GoalID,
			e.GoalName,
			e.Date.String(),
			e.Progress.String(),
			strconv.Itoa(e.Percentage),
			e.Change.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
