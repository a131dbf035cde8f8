package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/batch"
)

func testReport(t *testing.T) *batch.Report {
	t.Helper()
	runner := batch.NewRunner(analyzer.New(), 2, nil)
	report, err := runner.Run(context.Background(), []string{"password123", "X9$mK#nP2@vL8*qR"})
	if err != nil {
		t.Fatalf("building test report: %v", err)
	}
	return report
}

func TestJSONExportRoundTrip(t *testing.T) {
	report := testReport(t)

	var buf bytes.Buffer
	if err := (&JSONExporter{Pretty: true}).Export(report, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if envelope.Metadata.Version != FormatVersion {
		t.Errorf("metadata version = %q, want %q", envelope.Metadata.Version, FormatVersion)
	}
	if envelope.Metadata.TotalPasswords != 2 {
		t.Errorf("total_passwords = %d, want 2", envelope.Metadata.TotalPasswords)
	}
	if len(envelope.Results) != 2 {
		t.Fatalf("results = %d, want 2", len(envelope.Results))
	}

	first := envelope.Results[0].Result
	want := report.Results[0].Result
	if first.Strength != want.Strength || first.TotalScore != want.TotalScore {
		t.Errorf("result 0 strength/score = %s/%.1f, want %s/%.1f",
			first.Strength, first.TotalScore, want.Strength, want.TotalScore)
	}
	if len(first.Feedback) != len(want.Feedback) {
		t.Errorf("feedback lost in round trip: %d != %d", len(first.Feedback), len(want.Feedback))
	}
	for i := range want.Recommendations {
		if first.Recommendations[i] != want.Recommendations[i] {
			t.Errorf("recommendation order not preserved at %d", i)
		}
	}
	if envelope.Statistics.TotalAnalyzed != 2 {
		t.Errorf("statistics total = %d, want 2", envelope.Statistics.TotalAnalyzed)
	}
}

func TestNewExporter(t *testing.T) {
	if _, err := NewExporter("json", true); err != nil {
		t.Errorf("json: %v", err)
	}
	if _, err := NewExporter("csv", false); err != nil {
		t.Errorf("csv: %v", err)
	}
	if _, err := NewExporter("xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}
