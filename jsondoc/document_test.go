package jsondoc

import (
	"testing"
)

const samplePayload = `{
	"test": {
		"subtest": {
			"subSubText": "Hello World"
		}
	},
	"feature": {
		"enabled": true,
		"count": 0
	}
}`

func TestNewRejectsInvalidPayloads(t *testing.T) {
	if _, err := New([]byte("{oops")); err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
	if _, err := New([]byte(`[1, 2, 3]`)); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}

func TestGetResolvesDottedPaths(t *testing.T) {
	doc, err := New([]byte(samplePayload))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := doc.Get("test.subtest.subSubText"); got != "Hello World" {
		t.Fatalf("expected nested value, got %v", got)
	}
	if got := doc.Get("test.missing.x"); got != nil {
		t.Fatalf("expected nil for missing path, got %v", got)
	}

	value, ok := doc.Lookup("feature.count")
	if !ok {
		t.Fatalf("expected existing path to be found")
	}
	if value != float64(0) {
		t.Fatalf("expected numeric zero, got %v (%T)", value, value)
	}
	if _, ok := doc.Lookup("feature.absent"); ok {
		t.Fatalf("expected missing path to report not found")
	}
}

func TestSetAndDelete(t *testing.T) {
	doc, err := New([]byte(samplePayload))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := doc.Set("feature.limits.daily", 10); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := doc.Get("feature.limits.daily"); got != float64(10) {
		t.Fatalf("expected written value, got %v", got)
	}

	if err := doc.Delete("feature.count"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := doc.Lookup("feature.count"); ok {
		t.Fatalf("expected deleted path to be gone")
	}
}

func TestRegistryDecodesTopLevelEntries(t *testing.T) {
	objects, err := Registry([]byte(samplePayload))
	if err != nil {
		t.Fatalf("registry: %v", err)
	}

	entry, ok := objects["test"].(map[string]any)
	if !ok {
		t.Fatalf("expected map entry, got %T", objects["test"])
	}
	subtest, ok := entry["subtest"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", entry["subtest"])
	}
	if subtest["subSubText"] != "Hello World" {
		t.Fatalf("unexpected nested value: %v", subtest["subSubText"])
	}
}

func TestRawReturnsDetachedCopy(t *testing.T) {
	doc, err := New([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	raw := doc.Raw()
	raw[0] = 'x'
	if got := doc.Get("a"); got != float64(1) {
		t.Fatalf("mutating the copy must not affect the document, got %v", got)
	}
}
