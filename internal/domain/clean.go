package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// CleanRecord converts a raw CSV row into a typed Incident.
// It fails on a missing or unparseable date and on negative injury or
// fatality counts; blank counts parse as zero, and an unknown age bracket
// is kept but flagged so the regression can skip it.
func CleanRecord(raw RawIncidentRecord) (Incident, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(raw.Date))
	if err != nil {
		return Incident{}, fmt.Errorf("clean record: parse date %q: %w", raw.Date, err)
	}

	injuries, err := parseCount(raw.Injuries)
	if err != nil {
		return Incident{}, fmt.Errorf("clean record: injuries: %w", err)
	}
	fatalities, err := parseCount(raw.Fatalities)
	if err != nil {
		return Incident{}, fmt.Errorf("clean record: fatalities: %w", err)
	}

	bracket := strings.TrimSpace(raw.AgeBracket)
	midpoint, hasMidpoint := AgeMidpoint(bracket)

	inc := Incident{
		ID:          strings.TrimSpace(raw.ID),
		Date:        date,
		Month:       MonthKey(date),
		State:       strings.TrimSpace(raw.State),
		Category:    strings.ToLower(strings.TrimSpace(raw.Category)),
		AgeBracket:  bracket,
		AgeMidpoint: midpoint,
		HasMidpoint: hasMidpoint,
		Injuries:    injuries,
		Fatalities:  fatalities,
	}
	if inc.ID == "" {
		inc.ID = generateID(inc)
	}
	return inc, nil
}

// CleanRecords cleans every row, dropping the ones that fail and reporting
// how many were dropped.
func CleanRecords(raws []RawIncidentRecord) ([]Incident, int) {
	incidents := make([]Incident, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		inc, err := CleanRecord(raw)
		if err != nil {
			dropped++
			continue
		}
		incidents = append(incidents, inc)
	}
	return incidents, dropped
}

// parseCount parses a non-negative integer field. Blank means zero.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse count %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}

// generateID produces a deterministic ID from the incident's key fields.
// Rows without a source ID get the same ID on every run, so repeated
// analyses of the same dataset stay comparable.
func generateID(inc Incident) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%d|%d",
		inc.Date.Format(dateLayout), inc.State, inc.Category, inc.AgeBracket, inc.Injuries, inc.Fatalities)
	hash := sha256.Sum256([]byte(input))
	short := hex.EncodeToString(hash[:8])
	if inc.Category == "" {
		return short
	}
	return inc.Category + "-" + short
}
