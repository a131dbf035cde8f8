package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"passfort-hq/passfort/pkg/analyzer"
	"passfort-hq/passfort/pkg/telemetry/metrics"
)

// defaultDebounceInterval is the quiet period after a file event before
// the dictionary is reloaded. Editors often emit several events per
// save.
const defaultDebounceInterval = 250 * time.Millisecond

// DictionaryWatcher reloads the common-password dictionary when its
// file changes and swaps the rebuilt engine into the server.
type DictionaryWatcher struct {
	path      string
	server    *Server
	collector *metrics.Collector
	watcher   *fsnotify.Watcher
	debounce  *debouncer
	logger    *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewDictionaryWatcher creates a watcher for the dictionary file at
// path. The collector may be nil.
func NewDictionaryWatcher(path string, srv *Server, collector *metrics.Collector, logger *slog.Logger) (*DictionaryWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("dictionary watch path is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &DictionaryWatcher{
		path:      path,
		server:    srv,
		collector: collector,
		watcher:   fsw,
		debounce:  newDebouncer(defaultDebounceInterval),
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Watch blocks processing file events until ctx is canceled or Stop is
// called. The containing directory is watched rather than the file
// itself so atomic rename-based saves keep working.
func (dw *DictionaryWatcher) Watch(ctx context.Context) error {
	dw.mu.Lock()
	if dw.running {
		dw.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	dw.running = true
	dw.mu.Unlock()

	defer func() {
		dw.mu.Lock()
		dw.running = false
		dw.mu.Unlock()
		close(dw.doneCh)
	}()

	dir := filepath.Dir(dw.path)
	if err := dw.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", dir, err)
	}

	dw.logger.Info("dictionary watcher started",
		"path", dw.path,
		"debounce_ms", defaultDebounceInterval.Milliseconds(),
	)

	for {
		select {
		case <-ctx.Done():
			dw.logger.Info("dictionary watcher stopped")
			return nil

		case <-dw.stopCh:
			dw.logger.Info("dictionary watcher stopped")
			return nil

		case event, ok := <-dw.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !dw.shouldProcessEvent(event) {
				continue
			}
			dw.logger.Debug("dictionary file event", "path", event.Name, "op", event.Op.String())
			dw.debounce.trigger(dw.reload)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			dw.logger.Error("dictionary watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and waits for Watch to return.
func (dw *DictionaryWatcher) Stop() error {
	dw.mu.Lock()
	if !dw.running {
		dw.mu.Unlock()
		return nil
	}
	dw.mu.Unlock()

	close(dw.stopCh)
	<-dw.doneCh
	dw.debounce.stop()

	if err := dw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}
	return nil
}

func (dw *DictionaryWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(dw.path)
}

func (dw *DictionaryWatcher) reload() {
	dict, err := analyzer.LoadDictionaryFile(dw.path)
	if err != nil {
		dw.logger.Error("dictionary reload failed", "path", dw.path, "error", err)
		return
	}

	dw.server.SwapAnalyzer(analyzer.NewWithDictionary(dict))
	if dw.collector != nil {
		dw.collector.RecordDictionaryReload(dict.Len())
	}
	dw.logger.Info("dictionary reloaded", "path", dw.path, "entries", dict.Len())
}

// debouncer collapses rapid file events into a single reload after a
// quiet period.
type debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		cb := d.callback
		stopped := d.stopped
		d.mu.Unlock()
		if cb != nil && !stopped {
			cb()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
