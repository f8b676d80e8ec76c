package lookup

import (
	"time"

	"github.com/rs/zerolog"
)

// Proxy owns a registry of named nested values plus the ordered handler
// sequence consulted on every lookup. Instances are independent; nothing is
// shared between proxies.
type Proxy struct {
	objects  map[string]any
	handlers []Handler
	cfg      proxyConfig
	log      zerolog.Logger
}

// New constructs an empty Proxy. Call Init to install a registry and
// handlers.
func New(opts ...Option) *Proxy {
	cfg := applyOptions(opts)
	p := &Proxy{cfg: cfg}
	if cfg.log != nil {
		p.log = *cfg.log
	} else {
		p.log = defaultLogger()
	}
	return p
}

// Init replaces the stored registry and handler sequence wholesale. Prior
// state is discarded; nothing is merged or validated.
func (p *Proxy) Init(objects map[string]any, handlers []Handler) {
	p.objects = objects
	p.handlers = handlers
}

// Get looks up target in the registry, running matching handlers first.
//
// Handlers run in registration order against the registry entry (nil when
// target is absent; predicates still see it). A matched handler that returns
// Halt aborts the lookup with nil. When the entry is falsy a warning is
// logged and the container-field fallback of Set is returned. Otherwise the
// entry is resolved along path, whole entry when no path is given.
func (p *Proxy) Get(target string, path ...string) any {
	value, _ := p.lookup(target, Path(path), nil)
	return value
}

// GetPath behaves like Get with a dotted path expression.
func (p *Proxy) GetPath(target, path string) any {
	value, _ := p.lookup(target, ParsePath(path), nil)
	return value
}

// GetWithTrace performs a lookup and records per-handler and per-key
// provenance for it.
func (p *Proxy) GetWithTrace(target string, path ...string) (any, Trace) {
	trace := newTrace(target, Path(path))
	value, _ := p.lookup(target, Path(path), &trace)
	return value, trace
}

// Set reads the named field off the storage container itself, not the
// registry: "objects" yields the registry map, "handlers" the handler
// sequence, anything else nil. This is the designed lookup fallback and is
// kept as-is even though registry keys typically miss here.
func (p *Proxy) Set(name string) any {
	switch name {
	case "objects":
		if p.objects == nil {
			return nil
		}
		return p.objects
	case "handlers":
		if p.handlers == nil {
			return nil
		}
		return p.handlers
	}
	return nil
}

func (p *Proxy) lookup(target string, path Path, trace *Trace) (any, bool) {
	start := time.Now()
	entry := p.objects[target]

	matched := 0
	for i, handler := range p.handlers {
		if handler == nil {
			continue
		}
		if !handler.Matches(entry) {
			trace.recordHandler(i, false, false)
			continue
		}
		matched++
		disposition := handler.Run()
		halted := disposition == Halt
		trace.recordHandler(i, true, halted)
		if halted {
			trace.markHalted()
			p.emit(target, path, matched, true, false, start)
			return nil, false
		}
	}

	if !Truthy(entry) {
		p.log.Warn().Str("target", target).Msg("lookup: no manageable object registered")
		trace.markFallback()
		p.emit(target, path, matched, false, true, start)
		return p.Set(target), false
	}

	value := entry
	for _, key := range path {
		if !Truthy(value) {
			value = nil
			trace.recordStep(key, false, nil)
			break
		}
		value = lookupKey(value, key)
		trace.recordStep(key, value != nil, value)
	}

	p.emit(target, path, matched, false, false, start)
	return value, true
}

func (p *Proxy) lookupLogger() LookupLogger {
	if p.cfg.lookupLogger != nil {
		return p.cfg.lookupLogger
	}
	return noopLookupLogger{}
}

func (p *Proxy) emit(target string, path Path, matched int, halted, fallback bool, start time.Time) {
	p.lookupLogger().LogLookup(LookupEvent{
		Target:   target,
		Path:     path,
		Matched:  matched,
		Halted:   halted,
		Fallback: fallback,
		Duration: time.Since(start),
	})
}
