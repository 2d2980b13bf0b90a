package tabular

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plant.csv", "timestamp,Energy,anomaly\n2024-01-01,100,0\n2024-01-02,120,1\n")

	tbl, err := NewLoader(dir).Load("plant.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if tbl.Rows[1]["Energy"] != "120" {
		t.Errorf("expected cell 120, got %q", tbl.Rows[1]["Energy"])
	}
	if header, ok := tbl.Resolve("energy"); !ok || header != "Energy" {
		t.Errorf("expected resolvable Energy column, got (%q, %v)", header, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	tbl, err := NewLoader(t.TempDir()).Load("absent.csv")
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("expected empty table, got %d rows", tbl.Len())
	}
}

func TestLoadRaggedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ragged.csv", "a,b,c\n1,2\n3,4,5,6\n")

	tbl, err := NewLoader(dir).Load("ragged.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.Len())
	}
	if got := tbl.Rows[0]["c"]; got != "" {
		t.Errorf("short row should leave cell empty, got %q", got)
	}
	if got := tbl.Rows[1]["c"]; got != "5" {
		t.Errorf("long row should keep known columns, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "")

	tbl, err := NewLoader(dir).Load("empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Len() != 0 {
		t.Errorf("expected empty table, got %d rows", tbl.Len())
	}
}
