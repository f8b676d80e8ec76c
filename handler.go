package lookup

// Disposition tells the proxy whether handler iteration continues after a
// matched handler ran its callback.
type Disposition int

const (
	// Continue lets the lookup proceed to the next handler.
	Continue Disposition = iota
	// Halt stops handler iteration and aborts the lookup.
	Halt
)

// String returns the disposition name.
func (d Disposition) String() string {
	if d == Halt {
		return "halt"
	}
	return "continue"
}

// Handler pairs a predicate with a side-effecting callback. Handlers run in
// registration order during every lookup; Run is only invoked when Matches
// reported true for the registry entry under inspection.
type Handler interface {
	Matches(value any) bool
	Run() Disposition
}

type funcHandler struct {
	predicate   func(any) bool
	callback    func()
	disposition Disposition
}

// NewHandler builds a Handler from a predicate and callback pair. A nil
// predicate never matches; a nil callback is a no-op.
func NewHandler(predicate func(any) bool, callback func(), disposition Disposition) Handler {
	return &funcHandler{
		predicate:   predicate,
		callback:    callback,
		disposition: disposition,
	}
}

func (h *funcHandler) Matches(value any) bool {
	if h.predicate == nil {
		return false
	}
	return h.predicate(value)
}

func (h *funcHandler) Run() Disposition {
	if h.callback != nil {
		h.callback()
	}
	return h.disposition
}

// ExprHandlerOption configures an expression-backed handler.
type ExprHandlerOption func(*exprHandler)

// ExprHandlerWithErrorSink receives evaluation errors that otherwise degrade
// to a non-match.
func ExprHandlerWithErrorSink(sink func(error)) ExprHandlerOption {
	return func(h *exprHandler) {
		h.onError = sink
	}
}

// exprHandler adapts an expression evaluated against the registry entry into
// a Handler. A truthy evaluation result is a match; evaluation errors degrade
// to "no match" so lookups stay error-free.
type exprHandler struct {
	evaluator   Evaluator
	expression  string
	callback    func()
	disposition Disposition
	compiled    CompiledRule
	onError     func(error)
}

// NewExprHandler builds a Handler whose predicate is an expression run by
// evaluator. The expression sees the registry entry as `value` plus the usual
// evaluator bindings.
func NewExprHandler(evaluator Evaluator, expression string, callback func(), disposition Disposition, opts ...ExprHandlerOption) Handler {
	h := &exprHandler{
		evaluator:   evaluator,
		expression:  expression,
		callback:    callback,
		disposition: disposition,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

func (h *exprHandler) Matches(value any) bool {
	if h.evaluator == nil || h.expression == "" {
		return false
	}
	ctx := HandlerContext{Value: value}.withDefaultNow().withDefaultMaps()
	result, err := h.evaluate(ctx)
	if err != nil {
		h.report(err)
		return false
	}
	return Truthy(result)
}

func (h *exprHandler) Run() Disposition {
	if h.callback != nil {
		h.callback()
	}
	return h.disposition
}

func (h *exprHandler) evaluate(ctx HandlerContext) (any, error) {
	if h.compiled != nil {
		return h.compiled.Evaluate(ctx)
	}
	compiled, err := h.evaluator.Compile(h.expression)
	if err == nil && compiled != nil {
		h.compiled = compiled
		return compiled.Evaluate(ctx)
	}
	return h.evaluator.Evaluate(ctx, h.expression)
}

func (h *exprHandler) report(err error) {
	if h.onError != nil && err != nil {
		h.onError(err)
	}
}
