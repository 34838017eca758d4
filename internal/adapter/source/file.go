package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/incident-report-analysis/internal/domain"
)

// FileSource reads the dataset CSV from a local path, for offline runs and
// fixtures produced by cmd/genfixture.
// It implements analysis.Fetcher.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a local-file dataset reader.
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Fetch reads and decodes the dataset file.
func (s *FileSource) Fetch(_ context.Context) ([]domain.RawIncidentRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := decodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", s.path, err)
	}

	s.logger.Debug("dataset read", "path", s.path, "rows", len(records))
	return records, nil
}
