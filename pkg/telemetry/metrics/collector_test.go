package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/config"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector(config.MetricsConfig{Namespace: "passfort"})

	c.RecordAnalysis(analyzer.StrengthStrong, "cli")
	c.RecordAnalysis(analyzer.StrengthStrong, "cli")
	c.RecordAnalysis(analyzer.StrengthWeak, "server")
	c.RecordGeneration("password")
	c.RecordDictionaryReload(58)

	if got := testutil.ToFloat64(c.analysesTotal.WithLabelValues("STRONG", "cli")); got != 2 {
		t.Errorf("analyses STRONG/cli = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.analysesTotal.WithLabelValues("WEAK", "server")); got != 1 {
		t.Errorf("analyses WEAK/server = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.generationsTotal.WithLabelValues("password")); got != 1 {
		t.Errorf("generations password = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.dictionaryEntries); got != 58 {
		t.Errorf("dictionary entries = %v, want 58", got)
	}
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector(config.MetricsConfig{})
	c.RecordAnalysis(analyzer.StrengthExcellent, "server")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "passfort_analyses_total") {
		t.Errorf("exposition missing passfort_analyses_total:\n%s", body)
	}
}
