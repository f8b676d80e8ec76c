package lookup

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestGetWithTraceRecordsHandlerDecisions(t *testing.T) {
	handlers := []Handler{
		NewHandler(func(any) bool { return false }, nil, Continue),
		NewHandler(func(any) bool { return true }, nil, Continue),
	}
	proxy, _ := newTestProxy(t, handlers)

	value, trace := proxy.GetWithTrace("test", "subtest", "subSubText")
	if value != "Hello World" {
		t.Fatalf("expected traced lookup to resolve, got %v", value)
	}
	if trace.LookupID == "" {
		t.Fatalf("expected a lookup ID")
	}
	if trace.Target != "test" || trace.Path != "subtest.subSubText" {
		t.Fatalf("unexpected trace identity: %+v", trace)
	}
	if len(trace.Handlers) != 2 {
		t.Fatalf("expected two handler decisions, got %d", len(trace.Handlers))
	}
	if trace.Handlers[0].Matched || !trace.Handlers[1].Matched {
		t.Fatalf("unexpected handler decisions: %+v", trace.Handlers)
	}
	if len(trace.Steps) != 2 || !trace.Steps[0].Found || !trace.Steps[1].Found {
		t.Fatalf("unexpected resolution steps: %+v", trace.Steps)
	}
	if trace.Halted || trace.Fallback {
		t.Fatalf("clean lookup must not flag halt or fallback: %+v", trace)
	}
}

func TestGetWithTraceMarksHalt(t *testing.T) {
	handlers := []Handler{
		NewHandler(func(any) bool { return true }, nil, Halt),
	}
	proxy, _ := newTestProxy(t, handlers)

	value, trace := proxy.GetWithTrace("test", "subtest")
	if value != nil {
		t.Fatalf("expected halted lookup to return nil, got %v", value)
	}
	if !trace.Halted {
		t.Fatalf("expected halt flag: %+v", trace)
	}
	if len(trace.Steps) != 0 {
		t.Fatalf("halted lookups must not record resolution steps: %+v", trace.Steps)
	}
}

func TestGetWithTraceMarksFallback(t *testing.T) {
	proxy := New(WithLogger(zerolog.Nop()))
	proxy.Init(map[string]any{}, nil)

	value, trace := proxy.GetWithTrace("ghost")
	if value != nil {
		t.Fatalf("expected fallback to nil, got %v", value)
	}
	if !trace.Fallback {
		t.Fatalf("expected fallback flag: %+v", trace)
	}
}

func TestTraceJSONRoundTrip(t *testing.T) {
	proxy, _ := newTestProxy(t, []Handler{
		NewHandler(func(any) bool { return true }, nil, Continue),
	})

	_, trace := proxy.GetWithTrace("test", "subtest", "subSubText")
	payload, err := trace.ToJSON()
	if err != nil {
		t.Fatalf("marshal trace: %v", err)
	}

	decoded, err := TraceFromJSON(payload)
	if err != nil {
		t.Fatalf("unmarshal trace: %v", err)
	}
	if decoded.LookupID != trace.LookupID {
		t.Fatalf("expected lookup ID to round-trip, got %q want %q", decoded.LookupID, trace.LookupID)
	}
	if decoded.Target != trace.Target || decoded.Path != trace.Path {
		t.Fatalf("expected identity fields to round-trip: %+v", decoded)
	}
	if len(decoded.Handlers) != len(trace.Handlers) || len(decoded.Steps) != len(trace.Steps) {
		t.Fatalf("expected decisions and steps to round-trip: %+v", decoded)
	}
}

func TestTraceFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TraceFromJSON([]byte("{not json")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}
