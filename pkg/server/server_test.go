package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/config"
	"passfort-hq/passfort/pkg/telemetry/metrics"
)

func testServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := config.DefaultConfig().Server
	return NewServer(&cfg, opts)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	s := testServer(t, Options{})
	handler := s.routes()

	rec := postJSON(t, handler, "/v1/analyze", AnalyzeRequest{Password: "password123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result analyzer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.IsCommon {
		t.Error("password123 should be flagged as common")
	}
	if result.Length != 11 {
		t.Errorf("Length = %d, want 11", result.Length)
	}
	if result.TotalScore < 0 || result.TotalScore > analyzer.MaxTotalScore {
		t.Errorf("TotalScore = %v out of range", result.TotalScore)
	}
}

func TestHandleAnalyzeBadBody(t *testing.T) {
	s := testServer(t, Options{})
	handler := s.routes()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleGenerate(t *testing.T) {
	s := testServer(t, Options{})
	handler := s.routes()

	rec := postJSON(t, handler, "/v1/generate", GenerateRequest{Length: 20, Count: 3})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Credentials) != 3 {
		t.Fatalf("credentials = %d, want 3", len(resp.Credentials))
	}
	for _, c := range resp.Credentials {
		if len(c.Value) != 20 {
			t.Errorf("generated length = %d, want 20", len(c.Value))
		}
		if c.Analysis == nil {
			t.Error("missing analysis")
		}
	}
}

func TestHandleGenerateInvalidConfig(t *testing.T) {
	s := testServer(t, Options{})
	handler := s.routes()

	off := false
	rec := postJSON(t, handler, "/v1/generate", GenerateRequest{
		Length: 16, Lower: &off, Upper: &off, Digits: &off, Symbols: &off,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected an error message")
	}
}

func TestHandlePassphrase(t *testing.T) {
	s := testServer(t, Options{Words: []string{"alpha", "bravo", "charlie", "delta"}})
	handler := s.routes()

	sep := "."
	rec := postJSON(t, handler, "/v1/passphrase", PassphraseRequest{Words: 3, Separator: &sep})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp GenerateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Credentials) != 1 {
		t.Fatalf("credentials = %d, want 1", len(resp.Credentials))
	}
	parts := strings.Split(resp.Credentials[0].Value, ".")
	if len(parts) != 3 {
		t.Fatalf("words = %d, want 3 (%q)", len(parts), resp.Credentials[0].Value)
	}
	allowed := map[string]bool{"alpha": true, "bravo": true, "charlie": true, "delta": true}
	for _, p := range parts {
		if !allowed[p] {
			t.Errorf("unexpected word %q", p)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer(t, Options{})
	handler := s.routes()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	collector := metrics.NewCollector(config.DefaultConfig().Telemetry.Metrics)
	s := testServer(t, Options{Collector: collector})
	handler := s.routes()

	postJSON(t, handler, "/v1/analyze", AnalyzeRequest{Password: "hunter2"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "passfort_analyses_total") {
		t.Error("expected analysis counter in exposition output")
	}
}

func TestRequestLogNeverContainsPassword(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := testServer(t, Options{Logger: logger})
	handler := s.routes()

	const secret = "Hunter2SuperSecret!"
	postJSON(t, handler, "/v1/analyze", AnalyzeRequest{Password: secret})

	if strings.Contains(logBuf.String(), secret) {
		t.Fatal("request log leaked the submitted password")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	s := testServer(t, Options{})
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := s.withRecovery(panicking)

	req := httptest.NewRequest(http.MethodGet, "/v1/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestSwapAnalyzer(t *testing.T) {
	s := testServer(t, Options{})

	if s.Analyzer().Dictionary().Contains("zebra-pattern") {
		t.Fatal("default dictionary should not contain the test entry")
	}

	dict := analyzer.NewDictionary([]string{"zebra-pattern"})
	s.SwapAnalyzer(analyzer.NewWithDictionary(dict))

	if !s.Analyzer().Dictionary().Contains("zebra-pattern") {
		t.Error("swap did not take effect")
	}

	s.SwapAnalyzer(nil)
	if s.Analyzer() == nil {
		t.Error("nil swap should be ignored")
	}
}

func TestDictionaryWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "common.txt")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := testServer(t, Options{Logger: logger})

	dw, err := NewDictionaryWatcher(path, s, nil, logger)
	if err != nil {
		t.Fatalf("NewDictionaryWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watchDone := make(chan error, 1)
	go func() { watchDone <- dw.Watch(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("first\nreloaded-entry\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.Analyzer().Dictionary().Contains("reloaded-entry") {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}
	if !s.Analyzer().Dictionary().Contains("reloaded-entry") {
		t.Fatal("dictionary was not reloaded after file change")
	}

	cancel()
	select {
	case err := <-watchDone:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestNewDictionaryWatcherEmptyPath(t *testing.T) {
	if _, err := NewDictionaryWatcher("", nil, nil, nil); err == nil {
		t.Error("expected error for empty path")
	}
}
