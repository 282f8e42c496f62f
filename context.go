package validkit

import "context"

// Context is the transient association of one model, one target attribute
// (or, for batch validators, the full target set) and the running pass. The
// engine creates one per validator invocation; checkers read the value under
// test from it and report failures into it.
type Context struct {
	ctx        context.Context
	model      Model
	scenario   string
	attribute  string
	attributes []string
	errs       *Errors
}

// Context returns the context.Context of the pass, for checkers that call out
// to external collaborators.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// Model returns the model under validation.
func (c *Context) Model() Model { return c.model }

// Scenario returns the scenario of the current pass.
func (c *Context) Scenario() string { return c.scenario }

// Attribute returns the bound attribute name. For batch invocations it is
// empty; use Attributes instead.
func (c *Context) Attribute() string { return c.attribute }

// Attributes returns the full target set for batch invocations, or nil for
// per-attribute ones.
func (c *Context) Attributes() []string { return c.attributes }

// Value returns the current value of the bound attribute.
func (c *Context) Value() any { return c.model.Get(c.attribute) }

// ValueOf returns the current value of any attribute, for cross-attribute
// and batch checks.
func (c *Context) ValueOf(attr string) any { return c.model.Get(attr) }

// SetValue replaces the bound attribute's value. Data-filtering validators
// use it; the mutation is deliberate and exempt from pass idempotence.
func (c *Context) SetValue(v any) { c.model.Set(c.attribute, v) }

// Label returns the display label of the bound attribute.
func (c *Context) Label() string { return c.LabelOf(c.attribute) }

// LabelOf returns the display label for an attribute, preferring the model's
// declared labels over the generated one.
func (c *Context) LabelOf(attr string) string {
	if l, ok := c.model.(Labeler); ok {
		if label, ok := l.AttributeLabels()[attr]; ok {
			return label
		}
	}
	return AttributeLabel(attr)
}

// Expand fills the {attribute} placeholder in a message with the bound
// attribute's label.
func (c *Context) Expand(msg string) string {
	return FormatMessage(msg, map[string]any{"attribute": c.Label()})
}

// AddError records a failure message for an attribute. The {attribute}
// placeholder is expanded with that attribute's label.
func (c *Context) AddError(attr, msg string) {
	c.errs.Add(Attr(attr), FormatMessage(msg, map[string]any{"attribute": c.LabelOf(attr)}))
}

// AddModelError records a failure message not tied to any attribute.
func (c *Context) AddModelError(msg string) {
	c.errs.Add(ModelLevel(), msg)
}

// Errors exposes the pass's error collection, e.g. for inline validators
// that need to inspect earlier results.
func (c *Context) Errors() *Errors { return c.errs }

// bind returns a copy of the context bound to a single attribute.
func (c *Context) bind(attr string) *Context {
	bound := *c
	bound.attribute = attr
	bound.attributes = nil
	return &bound
}

// bindBatch returns a copy of the context bound to a full target set.
func (c *Context) bindBatch(attrs []string) *Context {
	bound := *c
	bound.attribute = ""
	bound.attributes = attrs
	return &bound
}
