package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/incident-report-analysis/internal/domain"
)

// decodeCSV reads a header-first CSV stream into raw records. Column order is
// irrelevant; columns are matched by header name, case-insensitively. Unknown
// columns are ignored and missing ones come through as blanks, so schema
// drift in the published extract degrades to dropped fields, not a hard fail.
func decodeCSV(r io.Reader) ([]domain.RawIncidentRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // published extracts sometimes have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read csv: empty input")
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]domain.RawIncidentRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.RawIncidentRecord{
			ID:         field(row, "incident_id"),
			Date:       field(row, "date"),
			State:      field(row, "state"),
			Category:   field(row, "category"),
			AgeBracket: field(row, "age_bracket"),
			Injuries:   field(row, "injuries"),
			Fatalities: field(row, "fatalities"),
			Narrative:  field(row, "narrative"),
		})
	}
	return records, nil
}
