package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"loud", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v", tt.level, tt.scope, got)
		}
	}
	if !LevelError.Accepts(&Event{Kind: KindError}) {
		t.Error("error events must pass LevelError")
	}
	if LevelOff.Accepts(&Event{Kind: KindError}) {
		t.Error("LevelOff must drop everything")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	span := Begin(tr, ScopePass, "scan", 0)
	Begin(tr, ScopeFile, "a.decaf", span.ID()).WithInt("tokens", 3).End("")
	Begin(tr, ScopeToken, "ignored", span.ID()).End("")
	span.End("done")

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[pass] \u2192 scan") {
		t.Errorf("begin line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "tokens=3") {
		t.Errorf("end line misses extras: %q", lines[2])
	}
	if !strings.Contains(lines[3], "scan (done)") {
		t.Errorf("last line = %q", lines[3])
	}
	if strings.Contains(out, "ignored") {
		t.Error("token scope leaked at LevelDetail")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Error(tr, "load", errors.New("boom"), 0)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["kind"] != "error" || got["detail"] != "boom" || got["name"] != "load" {
		t.Errorf("event = %v", got)
	}
}

func TestRingTracerWraps(t *testing.T) {
	tr := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(tr, ScopeFile, name, "", 0)
	}
	snap := tr.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Errorf("snap[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}

	var buf bytes.Buffer
	if err := tr.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump = %q", buf.String())
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	a := NewRingTracer(8, LevelPhase)
	b := NewRingTracer(8, LevelPhase)
	m := NewMultiTracer(LevelPhase, a, b)
	Begin(m, ScopeDriver, "tokenize", 0).End("")
	if len(a.Snapshot()) != 2 || len(b.Snapshot()) != 2 {
		t.Errorf("a=%d b=%d", len(a.Snapshot()), len(b.Snapshot()))
	}
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("LevelOff tracer must be disabled")
	}
	if _, err := New(Config{Level: LevelPhase, Mode: 42}); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}

	ring := NewRingTracer(16, LevelDetail)
	ctx := WithTracer(context.Background(), ring)

	outer, ctx := StartSpan(ctx, ScopeDriver, "tokenize")
	inner, _ := StartSpan(ctx, ScopeFile, "a.decaf")
	inner.End("")
	outer.End("")

	snap := ring.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("events = %d", len(snap))
	}
	if snap[1].ParentID != outer.ID() {
		t.Errorf("inner parent = %d, want %d", snap[1].ParentID, outer.ID())
	}
}

func TestDisabledSpanKeepsParent(t *testing.T) {
	ring := NewRingTracer(4, LevelPhase)
	parent := Begin(ring, ScopePass, "scan", 0)
	child := Begin(ring, ScopeFile, "hidden", parent.ID())
	if child.ID() != parent.ID() {
		t.Errorf("disabled span ID = %d, want parent %d", child.ID(), parent.ID())
	}
	if d := child.End(""); d != 0 {
		t.Errorf("disabled span duration = %v", d)
	}
}
