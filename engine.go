package validkit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Engine orchestrates validation passes. An Engine is stateless apart from
// its configuration and safe for concurrent use; all per-pass state lives in
// the Context and Errors created for that pass.
type Engine struct {
	registry *Registry
	fallback bool
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRegistry sets the alias registry used to resolve rule types. Defaults
// to DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithScenarioFallback makes unknown scenarios fall back to "all declared
// attributes active" instead of failing, even for models with an explicit
// scenario map.
func WithScenarioFallback() Option {
	return func(e *Engine) { e.fallback = true }
}

// WithLogger sets a logger for debug-level pass tracing. Logging is off by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns a configured Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		registry: DefaultRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine with default configuration.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Validate runs one pass with the default engine.
func Validate(ctx context.Context, m Model, scenario string) (*Errors, error) {
	return Default().Validate(ctx, m, scenario)
}

// Validate runs one validation pass of m under the given scenario.
//
// The returned *Errors holds the validation failures; it is empty on success.
// A non-nil error is a configuration or runtime fault — unknown scenario,
// unresolved rule type, conflicting filters, or a checker failing outright —
// and is never downgraded to a validation message.
//
// The pass is strictly sequential: rules run in declaration order, and within
// a rule attributes are processed in the rule's declared order. A validator
// never observes errors recorded by a later-declared validator. Re-running a
// pass is idempotent unless data-filtering validators mutate the model, which
// is their documented purpose.
func (e *Engine) Validate(ctx context.Context, m Model, scenario string) (*Errors, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	errs := NewErrors()

	// The pre-validation hook is the only way to skip a pass entirely.
	if h, ok := m.(BeforeValidator); ok && !h.BeforeValidate() {
		e.logger.DebugContext(ctx, "validation skipped by pre-validation hook", "scenario", scenario)
		return errs, nil
	}

	active, err := activeAttributes(m, scenario, e.fallback)
	if err != nil {
		return nil, err
	}
	validators, err := materialize(m.Rules(), e.registry, scenario)
	if err != nil {
		return nil, err
	}
	e.logger.DebugContext(ctx, "validation pass started",
		"scenario", scenario, "active_attributes", len(active), "validators", len(validators))

	vctx := &Context{ctx: ctx, model: m, scenario: scenario, errs: errs}

	for _, bv := range validators {
		targets := intersect(bv.attrs, active)
		if len(targets) == 0 {
			continue
		}
		if bv.when != nil && !bv.when(m) {
			continue
		}
		if bv.batch {
			if err := e.runBatch(vctx, bv, targets); err != nil {
				return nil, err
			}
			continue
		}
		if err := e.runPerAttribute(vctx, bv, targets); err != nil {
			return nil, err
		}
	}

	// The post-validation hook runs even when errors were recorded; its
	// return has no effect on the result.
	if h, ok := m.(AfterValidator); ok {
		h.AfterValidate()
	}
	e.logger.DebugContext(ctx, "validation pass finished", "scenario", scenario, "errors", errs.Len())
	return errs, nil
}

// runBatch invokes a batch validator once with its full target set. Skipping
// is all-or-nothing: if any target is empty (under skip-on-empty) or already
// carries an error (under skip-on-error), the validator does not run at all,
// since a joint check needs every participating attribute present.
func (e *Engine) runBatch(vctx *Context, bv *boundValidator, targets []string) error {
	for _, t := range targets {
		if bv.skipOnError && vctx.errs.Has(Attr(t)) {
			return nil
		}
		if bv.skipOnEmpty && bv.isEmpty(vctx.model.Get(t)) {
			return nil
		}
	}
	bound := vctx.bindBatch(targets)
	if bv.inline != nil {
		if err := bv.inline(bound); err != nil {
			return fmt.Errorf("%w: batch rule on %v: %v", ErrCheckFault, targets, err)
		}
		return nil
	}
	msgs, err := bv.checker.CheckValue(bound)
	if err != nil {
		return fmt.Errorf("%w: batch rule on %v: %v", ErrCheckFault, targets, err)
	}
	// A batch checker attributes its own errors; plain returned messages
	// have no single target and are recorded model-level.
	for _, msg := range msgs {
		vctx.errs.Add(ModelLevel(), msg)
	}
	return nil
}

// runPerAttribute invokes a validator once per target, evaluating the skip
// policies independently for each one.
func (e *Engine) runPerAttribute(vctx *Context, bv *boundValidator, targets []string) error {
	for _, t := range targets {
		if bv.skipOnError && vctx.errs.Has(Attr(t)) {
			continue
		}
		if bv.skipOnEmpty && bv.isEmpty(vctx.model.Get(t)) {
			continue
		}
		bound := vctx.bind(t)
		if bv.inline != nil {
			if err := bv.inline(bound); err != nil {
				return fmt.Errorf("%w: inline rule on %q: %v", ErrCheckFault, t, err)
			}
			continue
		}
		msgs, err := bv.checker.CheckValue(bound)
		if err != nil {
			return fmt.Errorf("%w: rule on %q: %v", ErrCheckFault, t, err)
		}
		for _, msg := range msgs {
			bound.AddError(t, msg)
		}
	}
	return nil
}

// IsRequired reports whether the attribute is made mandatory by an active,
// scenario-matching validator that marks attributes as required.
func (e *Engine) IsRequired(m Model, scenario, attr string) (bool, error) {
	if m == nil {
		return false, ErrNilModel
	}
	active, err := activeAttributes(m, scenario, e.fallback)
	if err != nil {
		return false, err
	}
	validators, err := materialize(m.Rules(), e.registry, scenario)
	if err != nil {
		return false, err
	}
	for _, bv := range validators {
		if !bv.marksRequired() {
			continue
		}
		for _, t := range intersect(bv.attrs, active) {
			if t == attr {
				return true, nil
			}
		}
	}
	return false, nil
}

// ClientForm produces the client-executable fragments for every active,
// scenario-matching validator whose checker declares the capability.
// Fragments are grouped per attribute in active-attribute order, and within
// one attribute in validator declaration order.
//
// Validators are omitted — degrading to remote or plain submission — when
// they carry no client capability, run in batch mode (a joint check needs
// values the client form does not bind together), or are gated by a When
// predicate that only the server can evaluate.
func (e *Engine) ClientForm(m Model, scenario string) ([]FieldFragments, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	active, err := activeAttributes(m, scenario, e.fallback)
	if err != nil {
		return nil, err
	}
	validators, err := materialize(m.Rules(), e.registry, scenario)
	if err != nil {
		return nil, err
	}

	vctx := &Context{model: m, scenario: scenario, errs: NewErrors()}
	byAttr := make(map[string][]Fragment, len(active))
	for _, bv := range validators {
		if bv.client == nil || bv.batch || bv.when != nil {
			continue
		}
		for _, t := range intersect(bv.attrs, active) {
			frag := bv.client.ClientFragment(vctx.bind(t))
			if frag == nil {
				continue
			}
			if frag.Attribute == "" {
				frag.Attribute = t
			}
			byAttr[t] = append(byAttr[t], *frag)
		}
	}

	out := make([]FieldFragments, 0, len(byAttr))
	for _, attr := range active {
		if frags, ok := byAttr[attr]; ok {
			out = append(out, FieldFragments{Attribute: attr, Fragments: frags})
		}
	}
	return out, nil
}
