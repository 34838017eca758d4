package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/incident-report-analysis/internal/domain"
)

// HTTPSource downloads the dataset CSV from a public URL.
// It implements analysis.Fetcher.
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSource creates a dataset downloader with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration, logger *slog.Logger) *HTTPSource {
	return &HTTPSource{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch downloads and decodes the dataset.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RawIncidentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("dataset source error: status %d: %s", resp.StatusCode, body)
	}

	records, err := decodeCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	s.logger.Debug("dataset downloaded", "url", s.url, "rows", len(records))
	return records, nil
}
