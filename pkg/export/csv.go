package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"passfort-hq/passfort/pkg/batch"
)

// CSVExporter exports batch reports as CSV, one row per password.
// Nested structures are flattened: the pattern list becomes a single
// comma-separated cell.
type CSVExporter struct {
	// IncludeHeader writes a column name row first.
	IncludeHeader bool
}

var csvHeader = []string{
	"index",
	"password_length",
	"strength_level",
	"total_score",
	"percentage",
	"entropy",
	"is_common",
	"patterns_found",
	"analyzed_at",
}

// Export writes the report to w.
func (e *CSVExporter) Export(report *batch.Report, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		if err := writer.Write(csvHeader); err != nil {
			return &Error{Format: FormatCSV, Records: len(report.Results), Err: err}
		}
	}

	for _, item := range report.Results {
		if err := writer.Write(itemRow(item)); err != nil {
			return &Error{Format: FormatCSV, Records: len(report.Results), Err: err}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return &Error{Format: FormatCSV, Records: len(report.Results), Err: err}
	}
	return nil
}

func itemRow(item batch.Item) []string {
	result := item.Result
	patterns := "None"
	if len(result.Patterns) > 0 {
		patterns = strings.Join(result.Patterns, ", ")
	}
	percentage := result.TotalScore / float64(result.MaxScore) * 100
	return []string{
		strconv.Itoa(item.Index),
		strconv.Itoa(result.Length),
		string(result.Strength),
		fmt.Sprintf("%.1f", result.TotalScore),
		fmt.Sprintf("%.1f", percentage),
		fmt.Sprintf("%.1f", result.EntropyBits),
		strconv.FormatBool(result.IsCommon),
		patterns,
		item.AnalyzedAt.Format(time.RFC3339),
	}
}
