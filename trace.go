package lookup

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Trace captures provenance information for a single lookup: which handlers
// matched, whether one halted the lookup, and how each path key resolved.
type Trace struct {
	LookupID string            `json:"lookup_id"`
	Target   string            `json:"target"`
	Path     string            `json:"path,omitempty"`
	Handlers []HandlerDecision `json:"handlers,omitempty"`
	Steps    []Step            `json:"steps,omitempty"`
	Halted   bool              `json:"halted,omitempty"`
	Fallback bool              `json:"fallback,omitempty"`
}

// HandlerDecision records the outcome of one handler during a lookup.
type HandlerDecision struct {
	Index   int  `json:"index"`
	Matched bool `json:"matched"`
	Halt    bool `json:"halt,omitempty"`
}

// Step details how a single path key resolved.
type Step struct {
	Key   string `json:"key"`
	Found bool   `json:"found"`
	Value any    `json:"value,omitempty"`
}

func newTrace(target string, path Path) Trace {
	return Trace{
		LookupID: uuid.NewString(),
		Target:   target,
		Path:     path.String(),
	}
}

func (t *Trace) recordHandler(index int, matched, halt bool) {
	if t == nil {
		return
	}
	t.Handlers = append(t.Handlers, HandlerDecision{
		Index:   index,
		Matched: matched,
		Halt:    halt,
	})
}

func (t *Trace) recordStep(key string, found bool, value any) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, Step{Key: key, Found: found, Value: value})
}

func (t *Trace) markHalted() {
	if t != nil {
		t.Halted = true
	}
}

func (t *Trace) markFallback() {
	if t != nil {
		t.Fallback = true
	}
}

// ToJSON serialises the trace into JSON for logging or transport helpers.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a JSON payload that was previously generated via
// ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}
