package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/scorecard/internal/domain/rubric"
	"github.com/okian/scorecard/internal/domain/types"
)

// Header returns the stable export column order: the company name, one
// column per criterion in declared order, then score and rank.
func Header(ru *rubric.Rubric) []string {
	header := make([]string, 0, ru.Len()+3)
	header = append(header, NameColumn)
	header = append(header, ru.Keys()...)
	header = append(header, "Score", "Rank")
	return header
}

// WriteRows encodes the ranked projection as CSV suitable for download or
// spreadsheet import.
func WriteRows(w io.Writer, ru *rubric.Rubric, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(ru)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	keys := ru.Keys()
	for _, row := range rows {
		record := make([]string, 0, len(keys)+3)
		record = append(record, row.Name)
		for _, key := range keys {
			record = append(record, formatValue(row.Values[key], ru))
		}
		record = append(record, formatScore(row.Score, ru), strconv.Itoa(row.Rank))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatValue(v int, ru *rubric.Rubric) string {
	if ru.Shape() == rubric.ShapeBoolean {
		if v == 1 {
			return "Yes"
		}
		return "No"
	}
	return strconv.Itoa(v)
}

func formatScore(score float64, ru *rubric.Rubric) string {
	if ru.Shape() == rubric.ShapeBoolean {
		return strconv.Itoa(int(score))
	}
	return strconv.FormatFloat(score, 'f', 2, 64)
}
