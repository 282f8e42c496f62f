// Package remote exposes a validkit engine over HTTP for out-of-band
// re-validation: a client posts the current attribute values and the target
// scenario, the server rehydrates a transient model, runs a full validation
// pass, and returns the attribute-keyed error messages.
//
// The protocol adds no validation logic of its own; given the same inputs it
// produces error content identical to an in-process Engine.Validate call.
//
// Wire contract:
//
//	POST <pattern>
//	Content-Type: application/json
//	{"scenario": "create", "attributes": {"email": "bad", "name": ""}}
//
//	200 OK
//	{"email": ["Email is not a valid email address."], "name": ["Name cannot be blank."]}
//
// Attributes without errors are omitted; an empty object signals success.
// Model-level errors appear under the reserved "*" key. Configuration faults
// are not validation results: they yield 500 and a logged request id.
//
// Mount the handler on a chi router:
//
//	r := chi.NewRouter()
//	remote.Mount(r, "/validate/signup", remote.Handler(func() validkit.Model { return NewSignupForm() }))
//
// Each request validates a freshly constructed model; no state is shared
// across requests.
package remote
