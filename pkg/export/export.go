package export

import (
	"fmt"
	"io"

	"passfort-hq/passfort/pkg/batch"
)

// FormatVersion identifies the export schema. Bump when the envelope or
// column layout changes incompatibly.
const FormatVersion = "1.0.0"

// Format names accepted by NewExporter.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Error wraps a failure to serialize or write a report.
type Error struct {
	Format  string
	Records int
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to export %d records as %s: %v", e.Records, e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Exporter writes a batch report to an output stream.
type Exporter interface {
	Export(report *batch.Report, w io.Writer) error
}

// NewExporter returns the exporter for the named format.
func NewExporter(format string, pretty bool) (Exporter, error) {
	switch format {
	case FormatJSON:
		return &JSONExporter{Pretty: pretty}, nil
	case FormatCSV:
		return &CSVExporter{IncludeHeader: true}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want %s or %s)", format, FormatJSON, FormatCSV)
	}
}
