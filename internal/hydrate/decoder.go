package hydrate

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Context carries identifiers tied to a registry entry being decoded.
type Context struct {
	Target string
	Source string
}

// PreHook lets callers mutate or normalise the entry before decoding.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook lets callers adjust or validate the hydrated struct after
// decoding.
type PostHook[T any] func(Context, *T) error

// DecoderOption configures a Decoder instance.
type DecoderOption[T any] func(*Decoder[T])

// Decoder converts registry entries into strongly typed structs.
type Decoder[T any] struct {
	preHooks    []PreHook
	postHooks   []PostHook[T]
	tagName     string
	weakInput   bool
	errorUnused bool
	decodeHook  mapstructure.DecodeHookFunc
}

// WithPreHook applies hook prior to decoding.
func WithPreHook[T any](hook PreHook) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.preHooks = append(d.preHooks, hook)
	}
}

// WithPostHook applies hook after decoding completes.
func WithPostHook[T any](hook PostHook[T]) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.postHooks = append(d.postHooks, hook)
	}
}

// WithTagName overrides the struct tag consulted during decoding. The
// default is "json" so hydrated types share tags with their serialised form.
func WithTagName[T any](tag string) DecoderOption[T] {
	return func(d *Decoder[T]) {
		if tag != "" {
			d.tagName = tag
		}
	}
}

// WithWeaklyTypedInput enables lenient type coercion ("1" into 1, etc).
func WithWeaklyTypedInput[T any]() DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.weakInput = true
	}
}

// WithErrorUnused rejects entries carrying keys the target type does not
// declare.
func WithErrorUnused[T any]() DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.errorUnused = true
	}
}

// WithDecodeHook installs a mapstructure decode hook chain.
func WithDecodeHook[T any](hook mapstructure.DecodeHookFunc) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.decodeHook = hook
	}
}

func NewDecoder[T any](opts ...DecoderOption[T]) *Decoder[T] {
	d := &Decoder[T]{tagName: "json"}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode converts entry into the target struct T applying configured hooks.
func (d *Decoder[T]) Decode(ctx Context, entry map[string]any) (T, error) {
	var zero T

	if entry == nil {
		return zero, fmt.Errorf("hydrate: entry is nil for target %q", ctx.Target)
	}

	current := cloneEntry(entry)
	for _, hook := range d.preHooks {
		if hook == nil {
			continue
		}
		next, err := hook(ctx, current)
		if err != nil {
			return zero, fmt.Errorf("hydrate: pre-hook for target %q failed: %w", ctx.Target, err)
		}
		if next != nil {
			current = next
		}
	}

	var result T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &result,
		TagName:          d.tagName,
		WeaklyTypedInput: d.weakInput,
		ErrorUnused:      d.errorUnused,
		DecodeHook:       d.decodeHook,
	})
	if err != nil {
		return zero, fmt.Errorf("hydrate: build decoder for target %q: %w", ctx.Target, err)
	}
	if err := decoder.Decode(current); err != nil {
		return zero, fmt.Errorf("hydrate: decode target %q: %w", ctx.Target, err)
	}

	for _, hook := range d.postHooks {
		if hook == nil {
			continue
		}
		if err := hook(ctx, &result); err != nil {
			return zero, fmt.Errorf("hydrate: post-hook for target %q failed: %w", ctx.Target, err)
		}
	}

	return result, nil
}

func cloneEntry(entry map[string]any) map[string]any {
	out := make(map[string]any, len(entry))
	for key, value := range entry {
		out[key] = value
	}
	return out
}
