package tabular

import "testing"

func table(headers []string, rows ...map[string]string) *Table {
	return NewTable(headers, rows)
}

func TestResolve(t *testing.T) {
	tbl := table([]string{"Timestamp", "Energy_kWh", "SEC"})

	header, ok := tbl.Resolve("energy", "energy_kwh")
	if !ok {
		t.Fatal("expected a match")
	}
	if header != "Energy_kWh" {
		t.Errorf("expected original header casing, got %q", header)
	}

	if _, ok := tbl.Resolve("anomaly", "is_anomaly"); ok {
		t.Error("expected no match for absent columns")
	}

	// First candidate wins even when a later one also matches
	header, _ = tbl.Resolve("sec", "timestamp")
	if header != "SEC" {
		t.Errorf("expected first candidate to win, got %q", header)
	}
}

func TestResolveEmptyTable(t *testing.T) {
	tbl := table(nil)
	if _, ok := tbl.Resolve("energy"); ok {
		t.Error("expected no match on an empty table")
	}
}

func TestFloat(t *testing.T) {
	cases := []struct {
		cell string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{" 3.14 ", 3.14, true},
		{"-1e3", -1000, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}

	for _, c := range cases {
		got, ok := Float(c.cell)
		if ok != c.ok || got != c.want {
			t.Errorf("Float(%q) = (%v, %v), want (%v, %v)", c.cell, got, ok, c.want, c.ok)
		}
	}
}

func TestTruthy(t *testing.T) {
	for _, cell := range []string{"1", "0.5", "-1", "true", "TRUE", "yes", "y"} {
		if !Truthy(cell) {
			t.Errorf("expected %q to be truthy", cell)
		}
	}
	for _, cell := range []string{"0", "0.0", "false", "no", "", "garbage"} {
		if Truthy(cell) {
			t.Errorf("expected %q to be falsy", cell)
		}
	}
}

func TestAggregates(t *testing.T) {
	tbl := table(
		[]string{"energy", "flag"},
		map[string]string{"energy": "10", "flag": "0"},
		map[string]string{"energy": "20", "flag": "1"},
		map[string]string{"energy": "junk", "flag": "0"},
		map[string]string{"energy": "30", "flag": "1"},
	)

	if total, n := tbl.Sum("energy"); total != 60 || n != 3 {
		t.Errorf("Sum = (%v, %d), want (60, 3)", total, n)
	}
	if mean, n := tbl.Mean("energy"); mean != 20 || n != 3 {
		t.Errorf("Mean = (%v, %d), want (20, 3)", mean, n)
	}
	if got := tbl.CountTruthy("flag"); got != 2 {
		t.Errorf("CountTruthy = %d, want 2", got)
	}
}

func TestAggregatesNothingParseable(t *testing.T) {
	tbl := table(
		[]string{"energy"},
		map[string]string{"energy": "n/a"},
		map[string]string{"energy": ""},
	)

	if _, n := tbl.Sum("energy"); n != 0 {
		t.Errorf("expected zero parsed cells, got %d", n)
	}
	if _, n := tbl.Mean("energy"); n != 0 {
		t.Errorf("expected zero parsed cells, got %d", n)
	}
}
