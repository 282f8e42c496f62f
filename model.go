package validkit

// Model is a flat, attribute-addressed data carrier with declared validation
// rules. Attribute order as returned by Attributes is the declaration order
// and is preserved by the engine wherever ordering matters.
type Model interface {
	// Attributes returns the declared attribute names in declaration order.
	Attributes() []string

	// Get returns the current value of the named attribute.
	Get(name string) any

	// Set replaces the value of the named attribute. Data-filtering
	// validators and remote rehydration use it; a plain validation pass
	// never writes attributes on its own.
	Set(name string, value any)

	// Rules returns the declared rule specifications in declaration order.
	Rules() []Rule
}

// ScenarioModel is implemented by models with an explicit scenario map from
// scenario name to the ordered list of attributes active in that scenario.
// A nil map is treated as "not declared": every attribute is active in every
// scenario. With a non-nil map, an unknown scenario is a configuration fault
// unless the engine was built with WithScenarioFallback.
type ScenarioModel interface {
	Scenarios() map[string][]string
}

// BeforeValidator is invoked before a pass begins. Returning false skips the
// pass entirely: the engine reports success with no errors recorded. This is
// the only way to short-circuit validation.
type BeforeValidator interface {
	BeforeValidate() bool
}

// AfterValidator is invoked after a completed pass, whether or not errors
// were recorded. Its effects do not change the pass result.
type AfterValidator interface {
	AfterValidate()
}

// Labeler overrides the generated attribute labels used when expanding the
// {attribute} placeholder in messages. Missing entries fall back to
// AttributeLabel.
type Labeler interface {
	AttributeLabels() map[string]string
}
