package remote

import (
	"context"

	"github.com/dmitrymomot/validkit"
)

// ModelLevelKey is the reserved response key for errors not tied to a
// specific attribute. It can never collide with a real attribute because
// model-level errors are typed, not named, inside the engine.
const ModelLevelKey = "*"

// Request is the wire shape of one re-validation call.
type Request struct {
	Scenario   string         `json:"scenario"`
	Attributes map[string]any `json:"attributes"`
}

// Response maps attribute names to ordered error messages. Attributes with
// no errors are omitted; an empty response signals success.
type Response map[string][]string

// OK reports whether the response carries no errors.
func (r Response) OK() bool { return len(r) == 0 }

// Validate rehydrates a transient model from the request, assigns the
// submitted values, and runs a full engine pass. Values for attributes the
// model does not declare are ignored. The error return carries configuration
// faults only; validation failures land in the Response.
func Validate(ctx context.Context, e *validkit.Engine, newModel func() validkit.Model, req Request) (Response, error) {
	if newModel == nil {
		return nil, ErrNilModelFactory
	}
	m := newModel()
	if m == nil {
		return nil, validkit.ErrNilModel
	}

	declared := make(map[string]struct{})
	for _, a := range m.Attributes() {
		declared[a] = struct{}{}
	}
	for name, value := range req.Attributes {
		if _, ok := declared[name]; ok {
			m.Set(name, value)
		}
	}

	scenario := req.Scenario
	if scenario == "" {
		scenario = validkit.ScenarioDefault
	}
	errs, err := e.Validate(ctx, m, scenario)
	if err != nil {
		return nil, err
	}

	resp := make(Response, len(errs.Keys()))
	for _, k := range errs.Keys() {
		name := k.Attribute()
		if k.IsModelLevel() {
			name = ModelLevelKey
		}
		resp[name] = errs.Messages(k)
	}
	return resp, nil
}
