// Package tabular parses and encodes the CSV shapes at the core boundary.
//
// Ingestion is tolerant at the value level and strict at the schema level:
// a source missing a required column aborts the whole batch, while a
// malformed cell is recovered locally with the rubric's neutral default or
// clamped into the value domain.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/rubric"
)

// NameColumn is the canonical company name header. NameColumnShort is the
// legacy single-word header accepted on input.
const (
	NameColumn      = "Company Name"
	NameColumnShort = "Company"
)

// ReadRecords decodes records from CSV input. The header must contain the
// company name column plus every criterion key of the rubric; otherwise
// ErrMissingColumns is returned and nothing is loaded. Rows are decoded
// per-cell with default/clamp recovery and never abort the batch.
func ReadRecords(r io.Reader, ru *rubric.Rubric) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows shorter than the header default per-cell

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrMissingColumns)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	nameIdx, ok := colIndex[NameColumn]
	if !ok {
		nameIdx, ok = colIndex[NameColumnShort]
	}
	missing := make([]string, 0)
	if !ok {
		missing = append(missing, NameColumn)
	}
	keyIdx := make(map[string]int, ru.Len())
	for _, key := range ru.Keys() {
		idx, found := colIndex[key]
		if !found {
			missing = append(missing, key)
			continue
		}
		keyIdx[key] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var records []model.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if nameIdx >= len(row) {
			continue
		}
		rec := model.Record{
			Name:   strings.TrimSpace(row[nameIdx]),
			Values: make(map[string]int, ru.Len()),
		}
		for key, idx := range keyIdx {
			cell := ""
			if idx < len(row) {
				cell = row[idx]
			}
			rec.Values[key] = parseValue(cell, ru)
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseValue decodes one cell into the rubric's value domain. Malformed
// cells fall back to the neutral default; numeric cells are clamped.
func parseValue(cell string, ru *rubric.Rubric) int {
	cell = strings.TrimSpace(cell)
	if ru.Shape() == rubric.ShapeBoolean {
		switch strings.ToLower(cell) {
		case "yes", "y", "true", "1":
			return 1
		default:
			return 0
		}
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(f) {
		return ru.Neutral()
	}
	return ru.Clamp(int(math.Round(f)))
}
