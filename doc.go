// Package validkit is a declarative, scenario-aware attribute validation
// engine for data-carrying models.
//
// A model declares its attributes and an ordered list of rules; each rule
// binds a validator to a set of attributes, optionally filtered to specific
// scenarios. A validation pass resolves the attributes active under the
// current scenario, materializes the rules that apply, runs them in
// declaration order with per-rule skip policies (skip on empty input, skip on
// prior error), and aggregates failures into an insertion-ordered,
// attribute-keyed error collection.
//
// Basic usage:
//
//	type SignupForm struct{ Name, Email string }
//
//	func (f *SignupForm) Attributes() []string { return []string{"name", "email"} }
//	func (f *SignupForm) Get(name string) any {
//		switch name {
//		case "name":
//			return f.Name
//		case "email":
//			return f.Email
//		}
//		return nil
//	}
//	func (f *SignupForm) Set(name string, v any) { /* symmetric */ }
//	func (f *SignupForm) Rules() []validkit.Rule {
//		return []validkit.Rule{
//			{Attributes: []string{"name", "email"}, Type: "required"},
//			{Attributes: []string{"email"}, Type: "email"},
//		}
//	}
//
//	errs, err := validkit.Validate(ctx, form, validkit.ScenarioDefault)
//	if err != nil {
//		// configuration fault: broken rules, unknown scenario, failing checker
//	}
//	if errs.HasAny() {
//		// validation failed; errs.Messages(validkit.Attr("email")) etc.
//	}
//
// Builtin validators live in the rules subpackage and register their aliases
// on import:
//
//	import _ "github.com/dmitrymomot/validkit/rules"
//
// # Failure tiers
//
// Validation failures are data: recorded as messages in *Errors, never
// halting the pass. Configuration and runtime faults — an unresolved rule
// type, conflicting On/Except filters, an unknown scenario, or a checker
// returning an error — are Go errors returned by Validate and are never
// silently converted into validation messages.
//
// # Scenarios
//
// Models may implement ScenarioModel to declare which attributes are active
// per scenario; an attribute outside the active set is never validated, even
// if rules reference it. Rules narrow themselves to scenarios with On or
// Except (mutually exclusive); a rule with neither applies everywhere.
//
// # Client and remote validation
//
// Engine.ClientForm emits data-oriented fragment descriptors for validators
// that can run client-side; the client package provides the execution
// contract, including the deferred-completion gate for asynchronous checks.
// The remote package exposes the same engine over HTTP for out-of-band
// re-validation, guaranteed to produce error content identical to an
// in-process pass.
package validkit
