package ascent

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/ascent/date"
)

func TestReadImport(t *testing.T) {
	in := strings.Join([]string{
		"GoalID,GoalName,DueDate,Frequency",
		"G10,Read 20 pages,2026-12-31,Daily",
		"G11,Swim,2026-10-01,Weekly",
	}, "\n")

	rows, err := ReadImport(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadImport: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ReadImport returned %d rows, want 2", len(rows))
	}
	want := ImportRow{GoalID: "G10", Name: "Read 20 pages", DueDate: date.MustParse("2026-12-31"), Frequency: Daily}
	if rows[0] != want {
		t.Errorf("ReadImport row 0 = %+v, want %+v", rows[0], want)
	}
}

func TestReadImport_ExtraColumnsIgnored(t *testing.T) {
	in := strings.Join([]string{
		"GoalID,GoalName,DueDate,Frequency,Completed",
		"G10,Read 20 pages,2026-12-31,Daily,False",
	}, "\n")

	rows, err := ReadImport(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadImport: %v", err)
	}
	if len(rows) != 1 || rows[0].GoalID != "G10" {
		t.Errorf("ReadImport with extra column = %+v", rows)
	}
}

func TestReadImport_MissingColumn(t *testing.T) {
	in := strings.Join([]string{
		"GoalID,GoalName,DueDate",
		"G10,Read 20 pages,2026-12-31",
	}, "\n")

	_, err := ReadImport(strings.NewReader(in))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("ReadImport without Frequency error = %v, want ErrValidation", err)
	}
}

// A single malformed row rejects the whole batch.
func TestReadImport_MalformedRow(t *testing.T) {
	in := strings.Join([]string{
		"GoalID,GoalName,DueDate,Frequency",
		"G10,Read 20 pages,2026-12-31,Daily",
		"G11,Swim,not-a-date,Weekly",
	}, "\n")

	_, err := ReadImport(strings.NewReader(in))
	if !errors.Is(err, ErrValidation) {
		t.Errorf("ReadImport with malformed row error = %v, want ErrValidation", err)
	}
}

func TestReadImport_Empty(t *testing.T) {
	if _, err := ReadImport(strings.NewReader("")); !errors.Is(err, ErrValidation) {
		t.Error("ReadImport of an empty file should have failed with ErrValidation")
	}
}
