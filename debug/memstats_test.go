package debug

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestLogMemStats_WritesHeapFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	LogMemStats(logger, "rasterized", "doc", "a.pdf")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	if rec["msg"] != "memstats" || rec["reason"] != "rasterized" || rec["doc"] != "a.pdf" {
		t.Fatalf("unexpected record %v", rec)
	}
	for _, k := range []string{"heap_alloc", "heap_inuse", "goroutines"} {
		if _, ok := rec[k]; !ok {
			t.Fatalf("missing %s in %v", k, rec)
		}
	}
	_, hasRSS := rec["rss"]
	_, hasErr := rec["rss_err"]
	if !hasRSS && !hasErr {
		t.Fatalf("expected rss or rss_err in %v", rec)
	}
}

func TestLogMemStats_NilLogger(t *testing.T) {
	LogMemStats(nil, "noop") // must not panic
}

func TestStartMemLogger_StopsOnClose(t *testing.T) {
	stop := make(chan struct{})
	StartMemLogger(time.Hour, slog.New(slog.DiscardHandler), stop)
	close(stop)
}
