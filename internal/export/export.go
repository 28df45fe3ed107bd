// Package export saves series observations to local JSON files.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/fritzprix/fred-mcp/internal/fred"
)

// ErrPathNotAllowed means the destination path matched none of the configured
// export.allow globs. MCP clients choose the path, so writes are fenced in.
var ErrPathNotAllowed = errors.New("path is not allowed by export.allow patterns")

// Record is one exported data point.
type Record struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// Writer saves observation sets under an allowlist of glob patterns.
type Writer struct {
	fs    afero.Fs
	allow []string
}

// NewWriter creates a Writer over fs. allow holds doublestar patterns; an
// empty list permits nothing.
func NewWriter(fs afero.Fs, allow []string) *Writer {
	return &Writer{fs: fs, allow: allow}
}

// Allowed reports whether path matches at least one allow pattern.
func (w *Writer) Allowed(path string) bool {
	p := filepath.ToSlash(path)
	for _, pattern := range w.allow {
		ok, err := doublestar.Match(pattern, p)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// SaveObservations writes the full observation set to path as pretty-printed
// JSON records, creating parent directories as needed.
func (w *Writer) SaveObservations(path string, obs []fred.Observation) error {
	if !w.Allowed(path) {
		return fmt.Errorf("%w: %s", ErrPathNotAllowed, path)
	}

	records := make([]Record, 0, len(obs))
	for _, o := range obs {
		records = append(records, Record{Date: o.Date, Value: o.Value})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling observations: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := afero.WriteFile(w.fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
