package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
	"github.com/pfrederiksen/mlb-gamedata/internal/storage"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"games.csv", FormatCSV, false},
		{"/tmp/out/GAMES.CSV", FormatCSV, false},
		{"games.txt", "", true},
		{"games.json", "", true},
		{"games", "", true},
		{"games.csv.bak", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFor(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("FormatFor(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFor(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("FormatFor(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteCSVEmptyWritesOnlyHeader(t *testing.T) {
	var buf bytes.Buffer
	columns := gameday.AllowList()

	if err := WriteCSV(&buf, nil, columns); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := strings.Join(columns, ",") + "\r\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVMapsByColumn(t *testing.T) {
	var buf bytes.Buffer
	records := []gameday.Record{
		{"status": "Final", "game_pk": "1"},
		{"game_pk": "2", "venue": "Field, \"North\"\nStand"},
	}

	if err := WriteCSV(&buf, records, []string{"game_pk", "status", "venue"}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	want := [][]string{
		{"game_pk", "status", "venue"},
		{"1", "Final", ""},
		{"2", "", "Field, \"North\"\nStand"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %q, want %q", i, rows[i], want[i])
		}
	}
}

func TestExporterWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.csv")
	s, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}

	var diag bytes.Buffer
	e := New([]string{"game_pk", "status"}, &diag)

	written, err := e.WriteFile(s, []gameday.Record{{"game_pk": "1", "status": "Final"}})
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if !written {
		t.Error("WriteFile() should report the file as written")
	}
	if diag.Len() != 0 {
		t.Errorf("unexpected diagnostic: %q", diag.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "game_pk,status\r\n1,Final\r\n" {
		t.Errorf("output = %q", data)
	}
}

// An unsupported extension is silently skipped rather than treated as a
// failure, so callers exit successfully without any output file.
func TestExporterWriteFileUnsupportedIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.txt")
	s, err := storage.New(path)
	if err != nil {
		t.Fatal(err)
	}

	var diag bytes.Buffer
	e := New(gameday.AllowList(), &diag)

	written, err := e.WriteFile(s, []gameday.Record{{"game_pk": "1"}})
	if err != nil {
		t.Fatalf("WriteFile() error = %v, want nil", err)
	}
	if written {
		t.Error("WriteFile() should not report a write")
	}
	if !strings.Contains(diag.String(), UnsupportedMessage) {
		t.Errorf("diagnostic = %q, want %q", diag.String(), UnsupportedMessage)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("no file should be created, stat err = %v", err)
	}
}

func exportCounter(name string) int64 {
	counters, _ := logger.GetMetricsSnapshot()["counters"].(map[string]int64)
	return counters[name]
}

func TestExporterWriteFileCountsOutcome(t *testing.T) {
	dir := t.TempDir()
	e := New([]string{"game_pk"}, &bytes.Buffer{})
	records := []gameday.Record{{"game_pk": "1"}}

	skipped := exportCounter("export.unsupported_format")
	s, err := storage.New(filepath.Join(dir, "games.xlsx"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.WriteFile(s, records); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got := exportCounter("export.unsupported_format"); got != skipped+1 {
		t.Errorf("export.unsupported_format = %d, want %d", got, skipped+1)
	}

	written := exportCounter("export.files_written")
	s, err = storage.New(filepath.Join(dir, "games.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.WriteFile(s, records); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if got := exportCounter("export.files_written"); got != written+1 {
		t.Errorf("export.files_written = %d, want %d", got, written+1)
	}
	if got := exportCounter("export.unsupported_format"); got != skipped+1 {
		t.Errorf("csv export changed export.unsupported_format to %d", got)
	}
}

func TestNewNilDiagnostics(t *testing.T) {
	s, err := storage.New(filepath.Join(t.TempDir(), "games.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(nil, nil).WriteFile(s, nil); err != nil {
		t.Errorf("WriteFile() error = %v", err)
	}
}
