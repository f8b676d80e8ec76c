package lookup

import (
	"errors"
	"testing"
)

func TestNewHandlerNilPredicateNeverMatches(t *testing.T) {
	handler := NewHandler(nil, func() { t.Fatal("callback must not run") }, Continue)
	if handler.Matches(map[string]any{"x": 1}) {
		t.Fatalf("nil predicate should never match")
	}
}

func TestNewHandlerNilCallbackIsNoop(t *testing.T) {
	handler := NewHandler(func(any) bool { return true }, nil, Halt)
	if !handler.Matches(nil) {
		t.Fatalf("expected predicate match")
	}
	if got := handler.Run(); got != Halt {
		t.Fatalf("expected Halt disposition, got %v", got)
	}
}

func TestDispositionString(t *testing.T) {
	if Continue.String() != "continue" || Halt.String() != "halt" {
		t.Fatalf("unexpected disposition names: %v %v", Continue, Halt)
	}
}

func TestExprHandlerMatchesOnTruthyResult(t *testing.T) {
	evaluator := NewExprEvaluator()
	ran := false
	handler := NewExprHandler(evaluator, "enabled && count > 1", func() { ran = true }, Continue)

	if !handler.Matches(map[string]any{"enabled": true, "count": 2}) {
		t.Fatalf("expected expression match")
	}
	if handler.Matches(map[string]any{"enabled": true, "count": 0}) {
		t.Fatalf("expected expression miss")
	}
	if handler.Run() != Continue {
		t.Fatalf("expected Continue disposition")
	}
	if !ran {
		t.Fatalf("expected callback to run")
	}
}

func TestExprHandlerDegradesErrorsToNoMatch(t *testing.T) {
	evaluator := NewExprEvaluator()
	var captured error
	handler := NewExprHandler(
		evaluator,
		"1 +",
		func() { t.Fatal("callback must not run on error") },
		Continue,
		ExprHandlerWithErrorSink(func(err error) { captured = err }),
	)

	if handler.Matches(map[string]any{}) {
		t.Fatalf("evaluation errors must not match")
	}
	if captured == nil {
		t.Fatalf("expected error sink to receive the failure")
	}
	var evalErr *EvaluationError
	if !errors.As(captured, &evalErr) {
		t.Fatalf("expected EvaluationError in sink, got %T", captured)
	}
}

func TestExprHandlerWithoutEvaluatorNeverMatches(t *testing.T) {
	handler := NewExprHandler(nil, "true", nil, Continue)
	if handler.Matches(map[string]any{}) {
		t.Fatalf("missing evaluator should never match")
	}
}

func TestExprHandlerInsideProxyLookup(t *testing.T) {
	evaluator := NewExprEvaluator()
	matched := 0
	handlers := []Handler{
		NewExprHandler(evaluator, `subtest != nil`, func() { matched++ }, Continue),
	}
	proxy, _ := newTestProxy(t, handlers)

	if got := proxy.Get("test", "subtest", "subSubText"); got != "Hello World" {
		t.Fatalf("expected lookup to resolve alongside expression handlers, got %v", got)
	}
	if matched != 1 {
		t.Fatalf("expected expression handler to match once, got %d", matched)
	}
}
