package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/generator"
	"passfort-hq/passfort/pkg/history"
)

// maxRequestBody bounds request bodies; passwords are short.
const maxRequestBody = 64 << 10

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// GenerateRequest is the body of POST /v1/generate. Class flags default
// to true when the body omits them.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Count            int   `json:"count"`
	Lower            *bool `json:"lower"`
	Upper            *bool `json:"upper"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
}

// PassphraseRequest is the body of POST /v1/passphrase.
type PassphraseRequest struct {
	Words     int     `json:"words"`
	Count     int     `json:"count"`
	Separator *string `json:"separator"`
}

// GeneratedCredential pairs a generated value with its analysis.
type GeneratedCredential struct {
	Value    string           `json:"value"`
	Analysis *analyzer.Result `json:"analysis"`
}

// GenerateResponse is the reply to the generation endpoints.
type GenerateResponse struct {
	Credentials []GeneratedCredential `json:"credentials"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}

	result := s.Analyzer().Analyze(req.Password)
	if s.collector != nil {
		s.collector.RecordAnalysis(result.Strength, "server")
	}
	s.record(r.Context(), result)
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !s.decode(w, r, &req) {
		return
	}

	cfg := generator.DefaultConfig()
	if req.Length > 0 {
		cfg.Length = req.Length
	}
	cfg.Lower = boolOr(req.Lower, true)
	cfg.Upper = boolOr(req.Upper, true)
	cfg.Digits = boolOr(req.Digits, true)
	cfg.Symbols = boolOr(req.Symbols, true)
	cfg.ExcludeAmbiguous = req.ExcludeAmbiguous

	count := req.Count
	if count <= 0 {
		count = 1
	}

	passwords, err := generator.GenerateMultiple(cfg, count)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}
	if s.collector != nil {
		for range passwords {
			s.collector.RecordGeneration("password")
		}
	}
	s.writeJSON(w, http.StatusOK, s.credentials(passwords))
}

func (s *Server) handlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req PassphraseRequest
	if !s.decode(w, r, &req) {
		return
	}

	cfg := generator.DefaultConfig()
	if req.Words > 0 {
		cfg.WordCount = req.Words
	}
	if req.Separator != nil {
		cfg.Separator = *req.Separator
	}

	count := req.Count
	if count <= 0 {
		count = 1
	}

	words := s.words
	passphrases := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var (
			passphrase string
			err        error
		)
		if len(words) > 0 {
			passphrase, err = generator.GeneratePassphraseFromList(cfg, words)
		} else {
			passphrase, err = generator.GeneratePassphrase(cfg)
		}
		if err != nil {
			s.writeGenerateError(w, err)
			return
		}
		passphrases = append(passphrases, passphrase)
	}
	if s.collector != nil {
		for range passphrases {
			s.collector.RecordGeneration("passphrase")
		}
	}
	s.writeJSON(w, http.StatusOK, s.credentials(passphrases))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// credentials analyzes each generated value for the response. Generated
// credentials are not recorded in history.
func (s *Server) credentials(values []string) GenerateResponse {
	resp := GenerateResponse{Credentials: make([]GeneratedCredential, 0, len(values))}
	for _, v := range values {
		resp.Credentials = append(resp.Credentials, GeneratedCredential{
			Value:    v,
			Analysis: s.Analyzer().Analyze(v),
		})
	}
	return resp
}

// record stores analysis metadata when history is enabled.
func (s *Server) record(ctx context.Context, result *analyzer.Result) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, history.NewRecord(result, "server")); err != nil {
		s.logger.Warn("failed to record analysis history", "error", err)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// writeGenerateError maps configuration errors to 400 and everything
// else (e.g. a failing random source) to 500.
func (s *Server) writeGenerateError(w http.ResponseWriter, err error) {
	var cfgErr *generator.ConfigError
	if errors.As(err, &cfgErr) {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: cfgErr.Error()})
		return
	}
	s.logger.Error("generation failed", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "generation failed"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
