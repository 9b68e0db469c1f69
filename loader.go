package ascent

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// GoalsFile is the name of the persisted goals table.
const GoalsFile = "goals.csv"

// HistoryFile is the name of the persisted history table.
const HistoryFile = "history.csv"

// Load reconstructs the ledger from the two CSV files in 'path'.
//
// A missing file yields an empty table: a brand new data directory simply
// starts empty. An unreadable or corrupt file also yields an empty table,
// with a warning: an empty dashboard is preferred over a crash at startup.
func Load(path string) *Ledger {
	l := NewLedger()
	l.goals = loadTable(filepath.Join(path, GoalsFile), DecodeGoals)
	l.entries = loadTable(filepath.Join(path, HistoryFile), DecodeHistory)
	return l
}

// loadTable reads and decodes one table, falling back to an empty one.
func loadTable[T any](filename string, decode func(io.Reader) ([]T, error)) []T {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		log.Printf("warning: cannot open %q, starting with an empty table: %v", filename, err)
		return nil
	}
	defer f.Close()

	rows, err := decode(f)
	if err != nil {
		log.Printf("warning: cannot decode %q, starting with an empty table: %v", filename, err)
		return nil
	}
	return rows
}

// Save rewrites both CSV files in 'path' fully, creating the directory if
// needed. Every mutating command ends with a Save call; there is no write
// buffering, and no atomicity across the two files beyond being written in
// the same call.
func Save(path string, l *Ledger) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", path, err)
	}
	if err := saveTable(filepath.Join(path, GoalsFile), l.goals, EncodeGoals); err != nil {
		return err
	}
	return saveTable(filepath.Join(path, HistoryFile), l.entries, EncodeHistory)
}

func saveTable[T any](filename string, rows []T, encode func(io.Writer, []T) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not open %q for writing: %w", filename, err)
	}
	defer f.Close()

	if err := encode(f, rows); err != nil {
		return fmt.Errorf("could not write %q: %w", filename, err)
	}
	return nil
}
