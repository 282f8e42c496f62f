package validkit

// Fragment is a data-oriented descriptor of one client-executable check. The
// engine never constructs executable code; it emits fragments and leaves
// rendering or interpretation to an external runtime (see the client
// package). A fragment is bound to one attribute and carries the operation
// kind, its parameters, and the failure message with the attribute label
// already expanded.
type Fragment struct {
	Attribute string         `json:"attribute"`
	Op        string         `json:"op"`
	Params    map[string]any `json:"params,omitempty"`
	Message   string         `json:"message"`
}

// FieldFragments groups the fragments of one attribute, in validator
// declaration order.
type FieldFragments struct {
	Attribute string     `json:"attribute"`
	Fragments []Fragment `json:"fragments"`
}
