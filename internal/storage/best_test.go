package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestBestFile(t *testing.T) (*BestFile, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	b, err := NewBestFile(filepath.Join(t.TempDir(), "nested", "best.json"), logger)
	if err != nil {
		t.Fatalf("NewBestFile: %v", err)
	}
	b.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return b, &buf
}

func TestBestFileMissingLoadsZero(t *testing.T) {
	b, _ := newTestBestFile(t)
	if got := b.Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
}

func TestBestFileSaveAndLoad(t *testing.T) {
	b, _ := newTestBestFile(t)

	b.Save(2048)
	if got := b.Load(); got != 2048 {
		t.Errorf("Load() = %d, want 2048", got)
	}

	rec, err := b.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rec.Best != 2048 {
		t.Errorf("Best = %d, want 2048", rec.Best)
	}
	if !rec.UpdatedAt.Equal(b.now()) {
		t.Errorf("UpdatedAt = %v, want %v", rec.UpdatedAt, b.now())
	}

	data, err := os.ReadFile(b.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"updated_at":"2026-01-02T03:04:05Z"`) {
		t.Errorf("file content = %s, want RFC3339 updated_at", data)
	}

	// Overwrite leaves no temp files behind.
	b.Save(4096)
	entries, err := os.ReadDir(filepath.Dir(b.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the best file", len(entries))
	}
	if got := b.Load(); got != 4096 {
		t.Errorf("Load() after overwrite = %d, want 4096", got)
	}
}

func TestBestFileCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "garbage"},
		{"negative", `{"best": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, logs := newTestBestFile(t)
			if err := os.MkdirAll(filepath.Dir(b.Path()), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(b.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			if got := b.Load(); got != 0 {
				t.Errorf("Load() = %d, want 0", got)
			}
			if _, err := b.Read(); err == nil {
				t.Error("Read() should report a corrupt file")
			}
			if !strings.Contains(logs.String(), "best score unavailable") {
				t.Errorf("expected a warning in the log, got %q", logs.String())
			}
		})
	}
}

func TestBestFileBadTimestampKeepsScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not rfc3339", `{"best": 1536, "updated_at": "yesterday"}`},
		{"wrong type", `{"best": 1536, "updated_at": 12345}`},
		{"missing", `{"best": 1536}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBestFile(t)
			if err := os.MkdirAll(filepath.Dir(b.Path()), 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(b.Path(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			rec, err := b.Read()
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if rec.Best != 1536 {
				t.Errorf("Best = %d, want 1536", rec.Best)
			}
			if !rec.UpdatedAt.IsZero() {
				t.Errorf("UpdatedAt = %v, want zero", rec.UpdatedAt)
			}
			if got := b.Load(); got != 1536 {
				t.Errorf("Load() = %d, want 1536", got)
			}
		})
	}
}

func TestBestFileSaveFailureIsSwallowed(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	b, err := NewBestFile(filepath.Join(blocker, "best.json"), log.New(&buf))
	if err != nil {
		t.Fatal(err)
	}

	b.Save(100) // parent is a regular file; must not panic
	if !strings.Contains(buf.String(), "cannot save best score") {
		t.Errorf("expected save failure in log, got %q", buf.String())
	}
}

func TestBestFileReset(t *testing.T) {
	b, _ := newTestBestFile(t)

	if err := b.Reset(); err != nil {
		t.Errorf("Reset() on missing file = %v, want nil", err)
	}

	b.Save(512)
	if err := b.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := b.Load(); got != 0 {
		t.Errorf("Load() after reset = %d, want 0", got)
	}
}
