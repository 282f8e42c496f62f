package validkit

import "errors"

// Configuration faults. These are developer errors detected while resolving
// scenarios or materializing rules, and are returned as Go errors — never
// recorded as validation messages. A failed check, by contrast, is data: it
// lands in *Errors and the pass keeps going.
var (
	// ErrNilModel is returned when a nil model is passed to the engine.
	ErrNilModel = errors.New("model is nil")

	// ErrUnknownScenario is returned when the model declares an explicit
	// scenario map that does not contain the requested scenario.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrConflictingScenarioFilter is returned when a rule sets both On and
	// Except; the two filters are mutually exclusive.
	ErrConflictingScenarioFilter = errors.New("rule sets both On and Except")

	// ErrMissingAttributes is returned when a rule declares no attributes.
	ErrMissingAttributes = errors.New("rule has no attributes")

	// ErrMissingValidator is returned when a rule declares neither a Type
	// alias, a Checker instance, nor an Inline function.
	ErrMissingValidator = errors.New("rule has no validator")

	// ErrAmbiguousValidator is returned when a rule declares more than one of
	// Type, Checker and Inline.
	ErrAmbiguousValidator = errors.New("rule declares more than one validator reference")

	// ErrUnknownRuleType is returned when a rule's Type alias is not present
	// in the registry.
	ErrUnknownRuleType = errors.New("unknown rule type")

	// ErrDuplicateRuleName is returned when two rules in one list share a
	// non-empty name. Overriding an inherited rule requires MergeRules.
	ErrDuplicateRuleName = errors.New("duplicate rule name")

	// ErrCheckFault wraps a checker's own runtime failure. It is distinct
	// from a validation failure and aborts the pass.
	ErrCheckFault = errors.New("validator check fault")
)
