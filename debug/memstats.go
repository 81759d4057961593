package debug

// Memory logging enabled when config.Debug is true. Rasterized pages are
// large bitmaps, so heap and RSS are logged after each render and on a timer
// to spot retained pages.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// LogMemStats logs Go heap statistics, goroutine count and process RSS.
// reason identifies the trigger (e.g. "rasterized").
func LogMemStats(logger *slog.Logger, reason string, attrs ...any) {
	if logger == nil {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	args := []any{
		slog.String("reason", reason),
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("heap_sys", ms.HeapSys),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
		slog.String("heap_alloc_human", humanize.IBytes(ms.HeapAlloc)),
	}
	if rss, err := residentSetSize(); err == nil {
		args = append(args, slog.Uint64("rss", rss), slog.String("rss_human", humanize.IBytes(rss)))
	} else {
		args = append(args, slog.String("rss_err", err.Error()))
	}
	logger.Info("memstats", append(args, attrs...)...)
}

// StartMemLogger launches a goroutine that logs memory stats every interval
// until stop is closed.
func StartMemLogger(interval time.Duration, logger *slog.Logger, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				LogMemStats(logger, "interval")
			}
		}
	}()
}
