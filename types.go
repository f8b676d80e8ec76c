package lookup

import (
	"time"

	"github.com/rs/zerolog"
)

// HandlerContext carries the inputs an expression predicate sees when it is
// evaluated against a registry entry.
type HandlerContext struct {
	Target   string
	Value    any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx HandlerContext) withDefaultNow() HandlerContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx HandlerContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx HandlerContext) withDefaultMaps() HandlerContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx HandlerContext) targetLabel() string {
	if ctx.Target == "" {
		return "unknown"
	}
	return ctx.Target
}

// Evaluator executes predicate expressions against a handler context.
type Evaluator interface {
	Evaluate(ctx HandlerContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx HandlerContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

type Option func(*proxyConfig)

type proxyConfig struct {
	log          *zerolog.Logger
	lookupLogger LookupLogger
}

func applyOptions(opts []Option) proxyConfig {
	cfg := proxyConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithLogger routes diagnostic warnings to the supplied zerolog logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *proxyConfig) {
		cfg.log = &logger
	}
}

// WithLookupLogger attaches a lookup event logger to the proxy.
func WithLookupLogger(logger LookupLogger) Option {
	return func(cfg *proxyConfig) {
		if logger == nil {
			cfg.lookupLogger = noopLookupLogger{}
			return
		}
		cfg.lookupLogger = logger
	}
}
