// Package jsondoc builds lookup registries from raw JSON documents. Reads
// resolve dotted paths via gjson, writes go through sjson so the underlying
// payload stays a plain byte slice.
package jsondoc

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document wraps a JSON payload with path-addressed accessors.
type Document struct {
	raw []byte
}

// New validates payload and wraps it. The payload must be a JSON object so
// its top-level keys can act as registry names.
func New(payload []byte) (*Document, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("jsondoc: invalid JSON payload")
	}
	if parsed := gjson.ParseBytes(payload); !parsed.IsObject() {
		return nil, fmt.Errorf("jsondoc: payload must be a JSON object")
	}
	doc := &Document{raw: make([]byte, len(payload))}
	copy(doc.raw, payload)
	return doc, nil
}

// Get resolves a dotted path and returns the decoded value, nil when the
// path is absent.
func (d *Document) Get(path string) any {
	if d == nil {
		return nil
	}
	return gjson.GetBytes(d.raw, path).Value()
}

// Lookup resolves a dotted path reporting whether it exists.
func (d *Document) Lookup(path string) (any, bool) {
	if d == nil {
		return nil, false
	}
	result := gjson.GetBytes(d.raw, path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// Set writes value at the dotted path, creating intermediate objects as
// needed.
func (d *Document) Set(path string, value any) error {
	if d == nil {
		return fmt.Errorf("jsondoc: document is nil")
	}
	updated, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		return fmt.Errorf("jsondoc: set %q: %w", path, err)
	}
	d.raw = updated
	return nil
}

// Delete removes the value at the dotted path. Missing paths are a no-op.
func (d *Document) Delete(path string) error {
	if d == nil {
		return fmt.Errorf("jsondoc: document is nil")
	}
	updated, err := sjson.DeleteBytes(d.raw, path)
	if err != nil {
		return fmt.Errorf("jsondoc: delete %q: %w", path, err)
	}
	d.raw = updated
	return nil
}

// Registry decodes the document into the map shape Proxy.Init expects.
func (d *Document) Registry() (map[string]any, error) {
	if d == nil {
		return nil, fmt.Errorf("jsondoc: document is nil")
	}
	var out map[string]any
	if err := json.Unmarshal(d.raw, &out); err != nil {
		return nil, fmt.Errorf("jsondoc: decode registry: %w", err)
	}
	return out, nil
}

// Raw returns a copy of the underlying payload.
func (d *Document) Raw() []byte {
	if d == nil {
		return nil
	}
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// Registry is a convenience for New followed by Document.Registry.
func Registry(payload []byte) (map[string]any, error) {
	doc, err := New(payload)
	if err != nil {
		return nil, err
	}
	return doc.Registry()
}
