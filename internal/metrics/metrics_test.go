package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"lunch-planner/internal/weekly"
)

func TestObserveView(t *testing.T) {
	before := testutil.ToFloat64(viewDiagnostics.WithLabelValues(KindOrphaned))
	beforeViews := testutil.ToFloat64(viewsBuilt)

	ObserveView(weekly.Diagnostics{
		Warnings: []error{&weekly.AmbiguousMatchError{OptionID: "x", Matches: 2}},
		Orphaned: []*weekly.OrphanedSelectionError{{SelectionID: "s1"}, {SelectionID: "s2"}},
	})

	if got := testutil.ToFloat64(viewDiagnostics.WithLabelValues(KindOrphaned)) - before; got != 2 {
		t.Errorf("Expected 2 orphaned selections counted, got %v", got)
	}
	if got := testutil.ToFloat64(viewsBuilt) - beforeViews; got != 1 {
		t.Errorf("Expected 1 view counted, got %v", got)
	}
}

func TestDiagnosticKind(t *testing.T) {
	cases := map[string]error{
		KindMalformed: &weekly.MalformedRecordError{Record: "option"},
		KindAmbiguous: &weekly.AmbiguousMatchError{},
		KindOrphaned:  &weekly.OrphanedSelectionError{},
		KindOther:     os.ErrNotExist,
	}
	for want, err := range cases {
		if got := DiagnosticKind(err); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

func TestGetSysHealth(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lunches.db")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	health := GetSysHealth(path)
	if health.DataSize != "2.0 KB" {
		t.Errorf("Expected data size '2.0 KB', got '%s'", health.DataSize)
	}
	if health.Goroutines < 1 {
		t.Errorf("Expected at least one goroutine, got %d", health.Goroutines)
	}
}
