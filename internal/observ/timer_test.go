package observ

import (
	"testing"
	"time"
)

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * step)
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(2 * time.Millisecond)

	cfg := tm.Begin("config")
	tm.End(cfg, "")
	tok := tm.Begin("tokenize")
	tm.End(tok, "3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].DurationMS != 2 || r.Phases[1].DurationMS != 2 {
		t.Errorf("durations = %v, %v; want 2, 2", r.Phases[0].DurationMS, r.Phases[1].DurationMS)
	}
	if r.TotalMS != 4 {
		t.Errorf("total = %v, want 4", r.TotalMS)
	}

	want := "timings:\n" +
		"  config            2.00 ms\n" +
		"  tokenize          2.00 ms  // 3 files\n" +
		"  total             4.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Errorf("Summary mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestEmptyTimer(t *testing.T) {
	r := NewTimer().Report()
	if r.TotalMS != 0 || len(r.Phases) != 0 {
		t.Fatalf("empty report = %+v", r)
	}
}
