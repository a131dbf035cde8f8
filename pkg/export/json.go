package export

import (
	"encoding/json"
	"io"
	"time"

	"passfort-hq/passfort/pkg/batch"
)

// JSONExporter exports batch reports as JSON.
type JSONExporter struct {
	// Pretty enables indented output.
	Pretty bool
}

// Metadata describes an export.
type Metadata struct {
	Version        string    `json:"version"`
	ExportTime     time.Time `json:"export_time"`
	TotalPasswords int       `json:"total_passwords"`
}

// Envelope is the JSON document layout: metadata, aggregate statistics,
// then the per-password results.
type Envelope struct {
	Metadata   Metadata          `json:"metadata"`
	Statistics *batch.Statistics `json:"statistics"`
	Results    []batch.Item      `json:"results"`
}

// Export writes the report to w. Every Result field survives the round
// trip, including the ordered feedback and recommendation lists.
func (e *JSONExporter) Export(report *batch.Report, w io.Writer) error {
	envelope := Envelope{
		Metadata: Metadata{
			Version:        FormatVersion,
			ExportTime:     time.Now().UTC(),
			TotalPasswords: len(report.Results),
		},
		Statistics: report.Stats,
		Results:    report.Results,
	}

	encoder := json.NewEncoder(w)
	if e.Pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(envelope); err != nil {
		return &Error{Format: FormatJSON, Records: len(report.Results), Err: err}
	}
	return nil
}
