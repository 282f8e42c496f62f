package validkit

import "fmt"

// Checker is the polymorphic unit implementing one check. CheckValue returns
// the failure messages for the bound attribute, or nil when the value passes.
// Returned messages may contain an {attribute} placeholder, which the engine
// expands with the attribute's label when recording the error.
//
// A non-nil error is a fatal fault — a broken checker or failing collaborator,
// not an invalid value — and aborts the whole pass.
//
// Batch checkers receive the full target set through the Context and are
// solely responsible for attributing their errors via ctx.AddError or
// ctx.AddModelError; any messages they return are recorded model-level.
type Checker interface {
	CheckValue(ctx *Context) ([]string, error)
}

// InlineFunc is a validator defined alongside the model as a bound method or
// closure. It reports failures through the Context and returns an error only
// for fatal faults.
type InlineFunc func(ctx *Context) error

// ClientCoder is implemented by checkers that can express their check as a
// client-executable fragment. Checkers without it are silently omitted from
// the client form and degrade to remote or plain submission.
type ClientCoder interface {
	// ClientFragment returns the fragment descriptor for the bound
	// attribute, or nil to opt out for this particular configuration. The
	// context carries the attribute binding but no value; values exist only
	// on the client.
	ClientFragment(ctx *Context) *Fragment
}

// SkipEmptyDefault lets a checker choose its default skip-on-empty policy.
// Checkers that do not implement it default to true. Required-style checkers
// return false so they still fire on empty input.
type SkipEmptyDefault interface {
	DefaultSkipOnEmpty() bool
}

// RequiredMarker is implemented by checkers that make an attribute mandatory.
// Engine.IsRequired uses it to answer scenario-aware "is this field required"
// queries without running a pass.
type RequiredMarker interface {
	MarksRequired() bool
}

// boundValidator is a rule materialized for one pass: validator reference
// resolved, skip policies defaulted, scenario filter already applied. Bound
// validators are created fresh for each pass and never reused across passes.
type boundValidator struct {
	attrs       []string
	when        func(Model) bool
	skipOnEmpty bool
	skipOnError bool
	batch       bool
	isEmpty     func(any) bool
	checker     Checker
	inline      InlineFunc
	client      ClientCoder
}

// materialize turns rule specifications into bound validators for the given
// scenario, in declaration order. Structural faults (conflicting filters,
// missing references, duplicate names, unknown aliases) are reported eagerly
// here, before any check runs.
func materialize(rules []Rule, reg *Registry, scenario string) ([]*boundValidator, error) {
	seen := make(map[string]struct{}, len(rules))
	out := make([]*boundValidator, 0, len(rules))

	for _, r := range rules {
		if r.Name != "" {
			if _, dup := seen[r.Name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateRuleName, r.Name)
			}
			seen[r.Name] = struct{}{}
		}
		if err := r.validate(); err != nil {
			return nil, err
		}
		if !r.appliesTo(scenario) {
			continue
		}

		bv := &boundValidator{
			attrs:       r.Attributes,
			when:        r.When,
			batch:       r.Batch,
			inline:      r.Inline,
			checker:     r.Checker,
			skipOnError: true,
			skipOnEmpty: true,
			isEmpty:     IsEmpty,
		}
		if r.Type != "" {
			c, err := reg.build(r.Type, r.Params)
			if err != nil {
				return nil, err
			}
			bv.checker = c
		}
		if bv.checker != nil {
			if d, ok := bv.checker.(SkipEmptyDefault); ok {
				bv.skipOnEmpty = d.DefaultSkipOnEmpty()
			}
			if cc, ok := bv.checker.(ClientCoder); ok {
				bv.client = cc
			}
		}
		if r.SkipOnEmpty != nil {
			bv.skipOnEmpty = *r.SkipOnEmpty
		}
		if r.SkipOnError != nil {
			bv.skipOnError = *r.SkipOnError
		}
		if r.IsEmpty != nil {
			bv.isEmpty = r.IsEmpty
		}
		out = append(out, bv)
	}
	return out, nil
}

// marksRequired reports whether the bound validator makes its attributes
// mandatory.
func (bv *boundValidator) marksRequired() bool {
	if bv.checker == nil {
		return false
	}
	m, ok := bv.checker.(RequiredMarker)
	return ok && m.MarksRequired()
}
