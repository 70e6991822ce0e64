package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// BestRecord is the on-disk best-score record.
type BestRecord struct {
	Best      int       `json:"best"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BestFile keeps the best score in a small JSON file. It satisfies the
// game's best keeper: failures are logged and never reach the caller.
type BestFile struct {
	path   string
	logger *log.Logger
	now    func() time.Time
}

// NewBestFile returns a best-score file at path. A leading ~ is expanded.
// A nil logger discards messages.
func NewBestFile(path string, logger *log.Logger) (*BestFile, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestFile{path: expanded, logger: logger, now: time.Now}, nil
}

// Path returns the expanded file path.
func (b *BestFile) Path() string { return b.path }

// Read returns the stored record. A missing file yields a zero record.
func (b *BestFile) Read() (BestRecord, error) {
	var rec BestRecord

	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("storage: cannot read best file: %w", err)
	}

	// The timestamp is informational; a bad one must not cost the score.
	var raw struct {
		Best      int             `json:"best"`
		UpdatedAt json.RawMessage `json:"updated_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return BestRecord{}, fmt.Errorf("storage: corrupt best file %s: %w", b.path, err)
	}
	if raw.Best < 0 {
		return BestRecord{}, fmt.Errorf("storage: corrupt best file %s: negative best %d", b.path, raw.Best)
	}

	rec.Best = raw.Best
	if len(raw.UpdatedAt) > 0 {
		if err := json.Unmarshal(raw.UpdatedAt, &rec.UpdatedAt); err != nil {
			b.logger.Debug("ignoring bad best score timestamp", "path", b.path, "error", err)
			rec.UpdatedAt = time.Time{}
		}
	}
	return rec, nil
}

// Load returns the stored best score, or 0 if it cannot be read.
func (b *BestFile) Load() int {
	rec, err := b.Read()
	if err != nil {
		b.logger.Warn("best score unavailable, starting from 0", "path", b.path, "error", err)
		return 0
	}
	b.logger.Debug("best score loaded", "best", rec.Best)
	return rec.Best
}

// Save writes best to disk. The file is replaced atomically so a crash
// never leaves a half-written record.
func (b *BestFile) Save(best int) {
	if err := b.write(BestRecord{Best: best, UpdatedAt: b.now().UTC()}); err != nil {
		b.logger.Warn("cannot save best score", "best", best, "error", err)
		return
	}
	b.logger.Debug("best score saved", "best", best)
}

// Reset removes the stored record.
func (b *BestFile) Reset() error {
	err := os.Remove(b.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset best file: %w", err)
	}
	return nil
}

func (b *BestFile) write(rec BestRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("storage: cannot encode best record: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".best-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write best file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write best file: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("storage: cannot replace best file: %w", err)
	}
	return nil
}
