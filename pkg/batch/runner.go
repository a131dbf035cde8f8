package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"passfort-hq/passfort/pkg/analyzer"
)

// Item is one analyzed password within a batch report.
type Item struct {
	// Index is the zero-based position of the password in the input.
	Index int `json:"index"`

	// Result is the full analysis.
	Result *analyzer.Result `json:"result"`

	// AnalyzedAt records when the analysis completed.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Report is the outcome of a batch run.
type Report struct {
	// ID uniquely identifies this batch run.
	ID string `json:"id"`

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Results holds one item per input password, in input order.
	Results []Item `json:"results"`

	// Stats aggregates the results.
	Stats *Statistics `json:"statistics"`
}

// Runner analyzes batches of passwords concurrently.
type Runner struct {
	analyzer *analyzer.Analyzer
	workers  int
	logger   *slog.Logger
}

// NewRunner creates a batch runner. workers <= 0 defaults to the number
// of CPUs.
func NewRunner(a *analyzer.Analyzer, workers int, logger *slog.Logger) *Runner {
	if a == nil {
		a = analyzer.New()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{analyzer: a, workers: workers, logger: logger}
}

// Run analyzes every password and returns an ordered report with
// aggregate statistics. The run stops early if ctx is canceled.
func (r *Runner) Run(ctx context.Context, passwords []string) (*Report, error) {
	started := time.Now()
	results := make([]Item, len(passwords))

	workers := r.workers
	if workers > len(passwords) {
		workers = len(passwords)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Item{
					Index:      i,
					Result:     r.analyzer.Analyze(passwords[i]),
					AnalyzedAt: time.Now().UTC(),
				}
			}
		}()
	}

	var ctxErr error
feed:
	for i := range passwords {
		select {
		case jobs <- i:
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, fmt.Errorf("batch analysis canceled: %w", ctxErr)
	}

	// Statistics are folded sequentially over the ordered results so
	// the running averages are deterministic.
	stats := NewStatistics()
	for i := range results {
		stats.Add(results[i].Result)
	}

	report := &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Results:     results,
		Stats:       stats,
	}

	r.logger.Info("batch analysis complete",
		"batch_id", report.ID,
		"passwords", len(passwords),
		"workers", workers,
		"duration", time.Since(started),
	)
	return report, nil
}
