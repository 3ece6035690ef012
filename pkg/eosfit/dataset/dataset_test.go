package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates a temp xlsx with the given header and cell values.
func writeWorkbook(t *testing.T, cells map[string]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for ref, v := range cells {
		if err := f.SetCellValue("Sheet1", ref, v); err != nil {
			t.Fatalf("SetCellValue(%s): %v", ref, err)
		}
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func pvWorkbook(t *testing.T) string {
	t.Helper()
	return writeWorkbook(t, map[string]interface{}{
		"A1": "P_GPa", "B1": "V_ang3",
		"A2": 0, "B2": 100,
		"A3": 2, "B3": 98,
		"A4": 5, "B4": 94,
		"A5": 10, "B5": 88,
	})
}

func TestPairs(t *testing.T) {
	f, err := Open(pvWorkbook(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	sets, err := Pairs(f, []string{"P_GPa"}, []string{"V_ang3"})
	if err != nil {
		t.Fatalf("Pairs: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}

	set := sets[0]
	if set.Label != "V_ang3" {
		t.Errorf("expected label V_ang3, got %q", set.Label)
	}
	if set.Len() != 4 {
		t.Fatalf("expected 4 points, got %d", set.Len())
	}
	if set.Pressures[3] != 10 || set.Volumes[3] != 88 {
		t.Errorf("unexpected last point: P=%g V=%g", set.Pressures[3], set.Volumes[3])
	}
}

func TestColumnNotFound(t *testing.T) {
	f, err := Open(pvWorkbook(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	_, err = Columns(f, []string{"P_GPa", "Nope"})
	if !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func TestMalformedData(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "P_GPa", "B1": "V_ang3",
		"A2": 0, "B2": 100,
		"A3": "oops", "B3": 98,
		"A4": 5, "B4": 94,
	})
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	_, err = Pairs(f, []string{"P_GPa"}, []string{"V_ang3"})
	if !errors.Is(err, ErrMalformedData) {
		t.Errorf("expected ErrMalformedData, got %v", err)
	}
}

func TestMismatchedColumnLengths(t *testing.T) {
	// V column is one row shorter than P; the pairing must be rejected.
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "P_GPa", "B1": "V_ang3",
		"A2": 0, "B2": 100,
		"A3": 2, "B3": 98,
		"A4": 5,
	})
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	_, err = Pairs(f, []string{"P_GPa"}, []string{"V_ang3"})
	if !errors.Is(err, ErrMalformedData) {
		t.Errorf("expected ErrMalformedData, got %v", err)
	}
}

func TestTrailingBlanksTrimmed(t *testing.T) {
	path := writeWorkbook(t, map[string]interface{}{
		"A1": "P_GPa", "B1": "V_ang3",
		"A2": 0, "B2": 100,
		"A3": 2, "B3": 98,
		"A4": 5, "B4": 94,
		"A5": 10, // B5 left blank
	})
	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	cols, err := Columns(f, []string{"V_ang3"})
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	if got := len(cols["V_ang3"]); got != 3 {
		t.Errorf("expected 3 values after trimming, got %d", got)
	}
}

func TestFileNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}
