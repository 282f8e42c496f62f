package validkit

// DynamicModel is a map-backed model assembled at run time: attributes,
// rules, scenarios and labels are all set programmatically. It backs the
// remote validation protocol, ad-hoc form validation, and tests that do not
// warrant a dedicated struct.
//
//	m := validkit.NewDynamic("name", "email").
//		WithRule(validkit.Rule{Attributes: []string{"name", "email"}, Type: "required"}).
//		WithRule(validkit.Rule{Attributes: []string{"email"}, Type: "email"})
//	m.Set("email", "bad")
//	errs, err := validkit.Validate(ctx, m, validkit.ScenarioDefault)
type DynamicModel struct {
	order     []string
	values    map[string]any
	rules     []Rule
	scenarios map[string][]string
	labels    map[string]string
}

// NewDynamic returns a model with the given attributes, all unset.
func NewDynamic(attributes ...string) *DynamicModel {
	m := &DynamicModel{
		order:  dedup(attributes),
		values: make(map[string]any, len(attributes)),
	}
	return m
}

// WithRule appends a rule specification and returns the model for chaining.
func (m *DynamicModel) WithRule(r Rule) *DynamicModel {
	m.rules = append(m.rules, r)
	return m
}

// WithScenarios sets an explicit scenario map.
func (m *DynamicModel) WithScenarios(scenarios map[string][]string) *DynamicModel {
	m.scenarios = scenarios
	return m
}

// WithLabels sets display labels for individual attributes.
func (m *DynamicModel) WithLabels(labels map[string]string) *DynamicModel {
	m.labels = labels
	return m
}

// Attributes implements Model.
func (m *DynamicModel) Attributes() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get implements Model. Undeclared attributes read as nil.
func (m *DynamicModel) Get(name string) any { return m.values[name] }

// Set implements Model. Setting an undeclared attribute also declares it.
func (m *DynamicModel) Set(name string, value any) {
	if _, ok := m.values[name]; !ok {
		declared := false
		for _, a := range m.order {
			if a == name {
				declared = true
				break
			}
		}
		if !declared {
			m.order = append(m.order, name)
		}
	}
	m.values[name] = value
}

// Rules implements Model.
func (m *DynamicModel) Rules() []Rule { return m.rules }

// Scenarios implements ScenarioModel. A model built without WithScenarios
// returns nil, activating every attribute in every scenario.
func (m *DynamicModel) Scenarios() map[string][]string { return m.scenarios }

// AttributeLabels implements Labeler.
func (m *DynamicModel) AttributeLabels() map[string]string { return m.labels }
